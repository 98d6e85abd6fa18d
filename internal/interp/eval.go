package interp

import (
	"strconv"
	"strings"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/value"
)

// evalExpr evaluates an expression node to a Value.
func (ip *Interpreter) evalExpr(e ast.Expr) value.Value {
	switch n := e.(type) {
	case *ast.IntLit:
		return value.Value{Tag: value.Int, Payload: n.Val}
	case *ast.StringLit:
		return value.Value{Tag: value.String, Payload: n.Val}
	case *ast.BoolLit:
		return value.Value{Tag: value.Bool, Payload: n.Val}
	case *ast.NilLit:
		return value.NilObject()
	case *ast.NewObject:
		return value.Value{Tag: value.Object, Payload: ip.heap.New()}
	case *ast.Convert:
		return ip.convertValue(n.To, ip.evalExpr(n.Expr))
	case *ast.QualifiedName:
		return ip.evalQualifiedName(n.Name)
	case *ast.FuncLit:
		return ip.evalFuncLit(n)
	case *ast.Unary:
		return ip.evalUnary(n)
	case *ast.Binary:
		return ip.evalBinary(n)
	case *ast.Call:
		return ip.evalCall(n)
	}
	return ip.faultErrorf("unrecognized expression node %T", e)
}

// evalQualifiedName implements the bare-name-lookup-with-function-fallback
// rule: only a dot-free name falls back to materializeFunctionRef; a
// dotted chain always goes through qualified-name resolution.
func (ip *Interpreter) evalQualifiedName(name string) value.Value {
	if !strings.Contains(name, ".") {
		if ip.env.Exists(name) {
			return ip.env.Cell(name).Get()
		}
		return ip.materializeFunctionRef(name)
	}
	return ip.getQNameValue(name)
}

// evalFuncLit implements anonymous-function evaluation:
// every evaluation captures a fresh deep snapshot, so two evaluations of
// the same literal are distinct closure identities.
func (ip *Interpreter) evalFuncLit(n *ast.FuncLit) value.Value {
	info := ip.deriveSignature(n, false)
	snap := ip.captureSnapshot()
	return value.Value{Tag: value.Function, Payload: &value.Closure{
		FuncAST:    n,
		ParamTypes: info.paramTypes,
		Env:        snap,
	}}
}

func (ip *Interpreter) evalUnary(n *ast.Unary) value.Value {
	v := ip.evalExpr(n.Operand)
	switch n.Op {
	case "neg":
		if v.Tag != value.Int {
			return ip.typeErrorf("operand of unary - must be int, got %s", v.Tag)
		}
		return value.Value{Tag: value.Int, Payload: -v.Payload.(int64)}
	case "not":
		if v.Tag != value.Bool {
			return ip.typeErrorf("operand of ! must be bool, got %s", v.Tag)
		}
		return value.Value{Tag: value.Bool, Payload: !v.Payload.(bool)}
	}
	return ip.faultErrorf("unknown unary operator %q", n.Op)
}

// evalBinary implements the operator table. && and || are strict:
// both operands are already evaluated above by the time the operator switch
// runs, so there is no separate short-circuit path to accidentally take.
func (ip *Interpreter) evalBinary(n *ast.Binary) value.Value {
	l := ip.evalExpr(n.Left)
	r := ip.evalExpr(n.Right)

	switch n.Op {
	case "+":
		if l.Tag == value.Int && r.Tag == value.Int {
			return value.Value{Tag: value.Int, Payload: l.Payload.(int64) + r.Payload.(int64)}
		}
		if l.Tag == value.String && r.Tag == value.String {
			return value.Value{Tag: value.String, Payload: l.Payload.(string) + r.Payload.(string)}
		}
		return ip.typeErrorf("invalid operands to +: %s, %s", l.Tag, r.Tag)
	case "-", "*", "/":
		li, ri, ok := ip.requireIntPair(l, r, n.Op)
		if !ok {
			return value.Value{}
		}
		switch n.Op {
		case "-":
			return value.Value{Tag: value.Int, Payload: li - ri}
		case "*":
			return value.Value{Tag: value.Int, Payload: li * ri}
		case "/":
			if ri == 0 {
				return ip.faultErrorf("division by zero")
			}
			return value.Value{Tag: value.Int, Payload: li / ri} // Go's / already truncates toward zero
		}
	case "<", "<=", ">", ">=":
		li, ri, ok := ip.requireIntPair(l, r, n.Op)
		if !ok {
			return value.Value{}
		}
		var b bool
		switch n.Op {
		case "<":
			b = li < ri
		case "<=":
			b = li <= ri
		case ">":
			b = li > ri
		case ">=":
			b = li >= ri
		}
		return value.Value{Tag: value.Bool, Payload: b}
	case "&&", "||":
		if l.Tag != value.Bool || r.Tag != value.Bool {
			return ip.typeErrorf("operands of %s must be bool, got %s, %s", n.Op, l.Tag, r.Tag)
		}
		lb, rb := l.Payload.(bool), r.Payload.(bool)
		if n.Op == "&&" {
			return value.Value{Tag: value.Bool, Payload: lb && rb}
		}
		return value.Value{Tag: value.Bool, Payload: lb || rb}
	case "==":
		return value.Value{Tag: value.Bool, Payload: valuesEqual(l, r)}
	case "!=":
		return value.Value{Tag: value.Bool, Payload: !valuesEqual(l, r)}
	}
	return ip.faultErrorf("unknown binary operator %q", n.Op)
}

func (ip *Interpreter) requireIntPair(l, r value.Value, op string) (int64, int64, bool) {
	if l.Tag != value.Int || r.Tag != value.Int {
		ip.typeErrorf("operands of %s must be int, got %s, %s", op, l.Tag, r.Tag)
		return 0, 0, false
	}
	return l.Payload.(int64), r.Payload.(int64), true
}

// valuesEqual implements the equality semantics: Nil compares
// equal only to Nil regardless of which nullable tag it carries; Objects by
// heap id; Functions by closure identity; everything else by tag-then-
// payload, with mismatched tags simply unequal rather than an error.
func valuesEqual(a, b value.Value) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() && b.IsNil()
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case value.Int:
		return a.Payload.(int64) == b.Payload.(int64)
	case value.String:
		return a.Payload.(string) == b.Payload.(string)
	case value.Bool:
		return a.Payload.(bool) == b.Payload.(bool)
	case value.Object:
		aid, _ := a.ObjectID()
		bid, _ := b.ObjectID()
		return aid == bid
	case value.Function:
		return closuresEqual(a, b)
	}
	return false
}

// closuresEqual implements the function-identity rule: same
// *Closure instance is always equal (covers two evaluations of distinct
// lambdas never aliasing, and a single lambda value compared to itself);
// otherwise equality requires both sides to be non-lambda references
// (Env == nil) to the identical AST node with equal parameter-type tuples.
func closuresEqual(a, b value.Value) bool {
	ca, _ := a.AsClosure()
	cb, _ := b.AsClosure()
	if ca == cb {
		return true
	}
	if ca.Env != nil || cb.Env != nil {
		return false
	}
	if ca.FuncAST != cb.FuncAST {
		return false
	}
	if len(ca.ParamTypes) != len(cb.ParamTypes) {
		return false
	}
	for i := range ca.ParamTypes {
		if ca.ParamTypes[i] != cb.ParamTypes[i] {
			return false
		}
	}
	return true
}

// stringifyForPrint renders a Value as print() would. Object and Function have no specified textual
// form and are a Type error, same as the general "Void is not a legal
// argument" rule.
func (ip *Interpreter) stringifyForPrint(v value.Value) string {
	switch v.Tag {
	case value.Int:
		return strconv.FormatInt(v.Payload.(int64), 10)
	case value.String:
		return v.Payload.(string)
	case value.Bool:
		if v.Payload.(bool) {
			return "true"
		}
		return "false"
	case value.Void:
		ip.typeErrorf("void value used as argument")
		return ""
	default:
		ip.typeErrorf("value of type %s cannot be printed", v.Tag)
		return ""
	}
}
