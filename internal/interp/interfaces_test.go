package interp

import (
	"testing"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/host"
	"github.com/lucent-lang/lucent/internal/value"
)

func TestBuildInterfacesAndSatisfies(t *testing.T) {
	ip, _ := newTestInterpreter()
	p := ast.Iface("P", ast.FVar("namei"), ast.FVar("agei"))
	ip.buildInterfaces(ast.Prog([]*ast.InterfaceDef{p}, nil))

	id := ip.heap.New()
	fields, _ := ip.heap.Fields(id)
	fields["namei"] = value.NewCell(intVal(7))
	fields["agei"] = value.NewCell(intVal(30))
	obj := value.Value{Tag: value.Object, Payload: id}

	if !ip.satisfies("P", obj) {
		t.Error("object with both int fields should satisfy P")
	}

	fields["agei"] = value.NewCell(value.Value{Tag: value.String, Payload: "x"})
	if ip.satisfies("P", obj) {
		t.Error("a field with the wrong tag must break conformance")
	}

	delete(fields, "agei")
	if ip.satisfies("P", obj) {
		t.Error("a missing field must break conformance")
	}
}

func TestSatisfiesNilAndEmptyInterface(t *testing.T) {
	ip, _ := newTestInterpreter()
	ip.buildInterfaces(ast.Prog(nil, nil))
	if !ip.satisfies("", value.NilObject()) {
		t.Error("no interface constraint should always be satisfied")
	}
	if !ip.satisfies("Q", value.NilObject()) {
		t.Error("a nil object satisfies any interface")
	}
}

func TestSelfAndForwardReferencingInterfaces(t *testing.T) {
	ip, _ := newTestInterpreter()
	// L references itself; A references B, declared after it in source
	// order — both must resolve thanks to the two-pass build.
	l := ast.Iface("L", ast.FVar("nextL"))
	a := ast.Iface("A", ast.FVar("bB"))
	b := ast.Iface("B", ast.FVar("vi"))
	ip.buildInterfaces(ast.Prog([]*ast.InterfaceDef{l, a, b}, nil))

	if len(ip.interfaces) != 3 {
		t.Fatalf("expected 3 registered interfaces, got %d", len(ip.interfaces))
	}
}

func TestBuildInterfacesRejectsUnknownReference(t *testing.T) {
	ip, _ := newTestInterpreter()
	a := ast.Iface("A", ast.FVar("bB"))
	expectAborted(t, host.NameError, func() {
		ip.buildInterfaces(ast.Prog([]*ast.InterfaceDef{a}, nil))
	})
}

func TestBuildInterfacesRejectsDuplicateName(t *testing.T) {
	ip, _ := newTestInterpreter()
	p1 := ast.Iface("P", ast.FVar("namei"))
	p2 := ast.Iface("P", ast.FVar("agei"))
	expectAborted(t, host.NameError, func() {
		ip.buildInterfaces(ast.Prog([]*ast.InterfaceDef{p1, p2}, nil))
	})
}

func TestSatisfiesFuncField(t *testing.T) {
	ip, _ := newTestInterpreter()
	c := ast.Iface("C", ast.FFunc("addf", ast.P("xi")))
	ip.buildInterfaces(ast.Prog([]*ast.InterfaceDef{c}, nil))

	fn := ast.Func("addi", []*ast.Param{ast.P("xi")}, []ast.Stmt{ast.Ret(ast.Name("xi"))})
	ip.buildFunctions(ast.Prog(nil, []*ast.FuncDef{fn}))

	id := ip.heap.New()
	fields, _ := ip.heap.Fields(id)
	fields["addf"] = value.NewCell(value.Value{Tag: value.Function, Payload: &value.Closure{
		FuncAST:    fn,
		ParamTypes: []value.Tag{value.Int},
	}})
	obj := value.Value{Tag: value.Object, Payload: id}

	if !ip.satisfies("C", obj) {
		t.Error("object exposing a matching addf function field should satisfy C")
	}
}
