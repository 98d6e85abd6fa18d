package interp

import (
	"testing"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/host"
)

func TestWhileLoopCountsDown(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("ni"),
		ast.Assigns("ni", ast.Int(3)),
		ast.WhileStmt(ast.Bin(">", ast.Name("ni"), ast.Int(0)), []ast.Stmt{
			ast.CallExpr("print", ast.Name("ni")),
			ast.Assigns("ni", ast.Bin("-", ast.Name("ni"), ast.Int(1))),
		}),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{main}))
	want := "3\n2\n1\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestIfElseBranches(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.IfStmt(ast.Bin("<", ast.Int(1), ast.Int(2)),
			[]ast.Stmt{ast.CallExpr("print", ast.Str("then"))},
			[]ast.Stmt{ast.CallExpr("print", ast.Str("else"))}),
		ast.IfStmt(ast.Bool(false),
			[]ast.Stmt{ast.CallExpr("print", ast.Str("then"))},
			[]ast.Stmt{ast.CallExpr("print", ast.Str("else"))}),
		ast.IfStmt(ast.Bool(false),
			[]ast.Stmt{ast.CallExpr("print", ast.Str("unreached"))},
			nil),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{main}))
	want := "then\nelse\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.IfStmt(ast.Int(1), []ast.Stmt{ast.CallExpr("print", ast.Str("x"))}, nil),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog(nil, []*ast.FuncDef{main}))
}

// A return inside nested blocks unwinds the whole function, not just the
// innermost block.
func TestReturnUnwindsNestedBlocks(t *testing.T) {
	fi := ast.Func("fi", nil, []ast.Stmt{
		ast.WhileStmt(ast.Bool(true), []ast.Stmt{
			ast.IfStmt(ast.Bool(true), []ast.Stmt{ast.Ret(ast.Int(9))}, nil),
		}),
		ast.CallExpr("print", ast.Str("unreached")),
	})
	main := ast.Func("main", nil, []ast.Stmt{
		ast.CallExpr("print", ast.CallExpr("fi")),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{fi, main}))
	if got != "9\n" {
		t.Errorf("output = %q, want %q", got, "9\n")
	}
}

// A bare return and falling off the end both yield the function's declared
// default.
func TestReturnDefaults(t *testing.T) {
	barei := ast.Func("barei", nil, []ast.Stmt{ast.Ret(nil)})
	falls := ast.Func("falls", nil, nil)
	main := ast.Func("main", nil, []ast.Stmt{
		ast.CallExpr("print", ast.CallExpr("barei")),
		ast.CallExpr("print", ast.CallExpr("falls")),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{barei, falls, main}))
	want := "0\n\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// Var-defs land in the function's initial block, so a second vardef of the
// same name anywhere in the function collides; a bvardef only collides
// within its own block.
func TestVarDefDuplicateInFunction(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("xi"),
		ast.IfStmt(ast.Bool(true), []ast.Stmt{ast.Var("xi")}, nil),
	})
	runExpectingAbort(t, host.NameError, ast.Prog(nil, []*ast.FuncDef{main}))
}

func TestBlockVarShadowsFunctionLocal(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("xi"),
		ast.Assigns("xi", ast.Int(1)),
		ast.IfStmt(ast.Bool(true), []ast.Stmt{
			ast.BVar("xi"),
			ast.Assigns("xi", ast.Int(2)),
			ast.CallExpr("print", ast.Name("xi")),
		}, nil),
		ast.CallExpr("print", ast.Name("xi")),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{main}))
	want := "2\n1\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// Each loop iteration gets a fresh block, so a bvardef in a while body is
// not a redefinition on the second pass.
func TestBlockVarFreshPerIteration(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("ni"),
		ast.Assigns("ni", ast.Int(2)),
		ast.WhileStmt(ast.Bin(">", ast.Name("ni"), ast.Int(0)), []ast.Stmt{
			ast.BVar("ti"),
			ast.Assigns("ti", ast.Name("ni")),
			ast.CallExpr("print", ast.Name("ti")),
			ast.Assigns("ni", ast.Bin("-", ast.Name("ni"), ast.Int(1))),
		}),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{main}))
	want := "2\n1\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestVoidVariableDeclarationRejected(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("xv"),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog(nil, []*ast.FuncDef{main}))
}

// Return with an expression checks the value against the declared return
// type.
func TestReturnTypeMismatch(t *testing.T) {
	fi := ast.Func("fi", nil, []ast.Stmt{ast.Ret(ast.Str("x"))})
	main := ast.Func("main", nil, []ast.Stmt{
		ast.CallExpr("print", ast.CallExpr("fi")),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog(nil, []*ast.FuncDef{fi, main}))
}
