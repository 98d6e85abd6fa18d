package interp

import (
	"testing"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/host"
)

func runExpectingAbort(t *testing.T, kind host.ErrorKind, prog *ast.Program) {
	t.Helper()
	ip, _ := newTestInterpreter()
	err := ip.Run(prog)
	aborted, ok := err.(*host.Aborted)
	if !ok || aborted.Kind != kind {
		t.Errorf("err = %v, want a %s Aborted", err, kind)
	}
}

func TestQualifiedNameUndefinedBase(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.CallExpr("print", ast.Name("to.xi")),
	})
	runExpectingAbort(t, host.NameError, ast.Prog(nil, []*ast.FuncDef{main}))
}

func TestNilDereferenceIsFault(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("to"),
		ast.CallExpr("print", ast.Name("to.xi")),
	})
	runExpectingAbort(t, host.FaultError, ast.Prog(nil, []*ast.FuncDef{main}))
}

func TestReadMissingFieldIsNameError(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("to"),
		ast.Assigns("to", ast.New()),
		ast.CallExpr("print", ast.Name("to.xi")),
	})
	runExpectingAbort(t, host.NameError, ast.Prog(nil, []*ast.FuncDef{main}))
}

func TestAssignmentTagMismatch(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("xi"),
		ast.Assigns("xi", ast.Str("no")),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog(nil, []*ast.FuncDef{main}))
}

func TestNilAssignableOnlyToNullableTargets(t *testing.T) {
	okMain := ast.Func("main", nil, []ast.Stmt{
		ast.Var("ao"),
		ast.Assigns("ao", ast.New()),
		ast.Assigns("ao", ast.Nil()),
		ast.Var("bf"),
		ast.Assigns("bf", ast.Nil()),
		ast.CallExpr("print", ast.Bin("==", ast.Name("ao"), ast.Name("bf"))),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{okMain}))
	if got != "true\n" {
		t.Errorf("output = %q, want %q", got, "true\n")
	}

	badMain := ast.Func("main", nil, []ast.Stmt{
		ast.Var("xi"),
		ast.Assigns("xi", ast.Nil()),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog(nil, []*ast.FuncDef{badMain}))
}

// Two variables holding the same object observe each other's field writes
// through the shared field cell.
func TestObjectFieldAliasing(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("ao"),
		ast.Assigns("ao", ast.New()),
		ast.Var("bo"),
		ast.Assigns("bo", ast.Name("ao")),
		ast.Assigns("ao.xi", ast.Int(5)),
		ast.CallExpr("print", ast.Name("bo.xi")),
		ast.Assigns("bo.xi", ast.Int(6)),
		ast.CallExpr("print", ast.Name("ao.xi")),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{main}))
	want := "5\n6\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// A dotted chain walks only object-typed intermediates.
func TestChainThroughNonObjectIntermediate(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("to"),
		ast.Assigns("to", ast.New()),
		ast.Assigns("to.xi", ast.Int(1)),
		ast.CallExpr("print", ast.Name("to.xi.yi")),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog(nil, []*ast.FuncDef{main}))
}

func TestNestedChainReadAndWrite(t *testing.T) {
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("ao"),
		ast.Assigns("ao", ast.New()),
		ast.Assigns("ao.bo", ast.New()),
		ast.Assigns("ao.bo.xi", ast.Int(9)),
		ast.CallExpr("print", ast.Name("ao.bo.xi")),
	})
	got := runProgram(t, ast.Prog(nil, []*ast.FuncDef{main}))
	if got != "9\n" {
		t.Errorf("output = %q, want %q", got, "9\n")
	}
}

// Assigning into an interface-constrained object field re-checks
// conformance against the field's declared interface.
func TestFieldInterfaceConformanceOnAssign(t *testing.T) {
	q := ast.Iface("Q", ast.FVar("fi"))
	main := ast.Func("main", nil, []ast.Stmt{
		ast.Var("ao"),
		ast.Assigns("ao", ast.New()),
		ast.Var("bo"),
		ast.Assigns("bo", ast.New()),
		ast.Assigns("ao.itemQ", ast.Name("bo")),
	})
	runExpectingAbort(t, host.TypeError, ast.Prog([]*ast.InterfaceDef{q}, []*ast.FuncDef{main}))
}
