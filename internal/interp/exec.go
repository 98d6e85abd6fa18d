package interp

import (
	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/value"
)

// execBlock runs stmts in order, stopping at the first Return. It reports whether a Return was hit; the returned
// value itself is left in ip.returnValue.
func (ip *Interpreter) execBlock(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		if ip.execStmt(s) {
			return true
		}
	}
	return false
}

func (ip *Interpreter) execStmt(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.VarDef:
		ip.traceStmt("vardef")
		ip.execVarDef(n)
	case *ast.BlockVarDef:
		ip.traceStmt("bvardef")
		ip.execBlockVarDef(n)
	case *ast.Assign:
		ip.traceStmt("assign")
		rhs := ip.evalExpr(n.Expr)
		ip.setQNameValue(n.Target, rhs)
	case *ast.Call:
		ip.traceStmt("call")
		ip.evalCall(n)
	case *ast.If:
		ip.traceStmt("if")
		return ip.execIf(n)
	case *ast.While:
		ip.traceStmt("while")
		return ip.execWhile(n)
	case *ast.Return:
		ip.traceStmt("return")
		ip.execReturn(n)
		return true
	default:
		ip.faultErrorf("unrecognized statement node %T", s)
	}
	return false
}

func (ip *Interpreter) execVarDef(n *ast.VarDef) {
	typ, _ := ip.declaredType(n.Name, false)
	if !ip.env.DefineFunctionLocal(n.Name, value.Default(typ)) {
		ip.nameErrorf("variable %q already defined in this function", n.Name)
	}
}

func (ip *Interpreter) execBlockVarDef(n *ast.BlockVarDef) {
	typ, _ := ip.declaredType(n.Name, false)
	if !ip.env.DefineBlockLocal(n.Name, value.Default(typ)) {
		ip.nameErrorf("variable %q already defined in this block", n.Name)
	}
}

func (ip *Interpreter) execIf(n *ast.If) bool {
	cond := ip.evalExpr(n.Cond)
	if cond.Tag != value.Bool {
		ip.typeErrorf("if condition must be bool, got %s", cond.Tag)
		return false
	}
	branch := n.Else
	if cond.Payload.(bool) {
		branch = n.Then
	}
	ip.env.EnterBlock()
	returned := ip.execBlock(branch)
	ip.env.ExitBlock()
	return returned
}

func (ip *Interpreter) execWhile(n *ast.While) bool {
	for {
		cond := ip.evalExpr(n.Cond)
		if cond.Tag != value.Bool {
			ip.typeErrorf("while condition must be bool, got %s", cond.Tag)
			return false
		}
		if !cond.Payload.(bool) {
			return false
		}
		ip.env.EnterBlock()
		returned := ip.execBlock(n.Body)
		ip.env.ExitBlock()
		if returned {
			return true
		}
	}
}

// execReturn computes the returned value: a bare
// return yields the current function's declared default (Void for a Void
// function); an expression return goes through the same coercion-and-check
// as assignment against the current return type/interface.
func (ip *Interpreter) execReturn(n *ast.Return) {
	if n.Expr == nil {
		ip.returnValue = value.Default(ip.curReturnType)
		return
	}
	v := ip.evalExpr(n.Expr)
	v = ip.coerceForAssign(ip.curReturnType, v)
	if ip.curReturnIface != "" && !ip.satisfies(ip.curReturnIface, v) {
		ip.typeErrorf("return value does not satisfy interface %q", ip.curReturnIface)
		return
	}
	ip.returnValue = v
}
