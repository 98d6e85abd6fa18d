package ast

import "testing"

func TestBaseAttr(t *testing.T) {
	var b Base
	if _, ok := b.Attr("missing"); ok {
		t.Error("expected no attribute on a fresh Base")
	}
	b.SetAttr("k", 42)
	v, ok := b.Attr("k")
	if !ok || v.(int) != 42 {
		t.Errorf("Attr(k) = %v, %v, want 42, true", v, ok)
	}
}

func TestFuncLikeAccessors(t *testing.T) {
	params := []*Param{P("xi")}
	stmts := []Stmt{Ret(Int(1))}

	fn := Func("fi", params, stmts)
	var fl FuncLike = fn
	if fl.FuncName() != "fi" {
		t.Errorf("FuncDef.FuncName() = %q", fl.FuncName())
	}
	if len(fl.ParamList()) != 1 || len(fl.StmtList()) != 1 {
		t.Error("FuncDef accessors did not round-trip the constructor args")
	}

	lambda := Lambda("$lambda0i", params, stmts)
	fl = lambda
	if fl.FuncName() != "$lambda0i" {
		t.Errorf("FuncLit.FuncName() = %q", fl.FuncName())
	}
}

func TestCallIsExprAndStmt(t *testing.T) {
	c := CallExpr("print", Str("hi"))
	var _ Expr = c
	var _ Stmt = c
}

func TestRefParam(t *testing.T) {
	p := RefP("xi")
	if !p.Ref {
		t.Error("RefP should set Ref")
	}
	if P("xi").Ref {
		t.Error("P should leave Ref false")
	}
}
