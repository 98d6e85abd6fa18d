package interp

import (
	"strconv"
	"strings"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/value"
)

// receiverName is the reserved identifier a dotted call's implicit
// receiver is bound under inside the callee's frame. It is an ordinary
// binding: a method body that declares its own "selfo" collides with it
// like any other redefinition.
const receiverName = "selfo"

// evalCall resolves and invokes a call: built-ins short-circuit before the
// general argument-evaluation and callee-resolution steps.
func (ip *Interpreter) evalCall(n *ast.Call) value.Value {
	switch n.Name {
	case "print":
		return ip.callPrint(n)
	case "inputi":
		return ip.callInput(n, true)
	case "inputs":
		return ip.callInput(n, false)
	}

	ip.traceCall(n.Name, len(n.Args))
	argVals := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v := ip.evalExpr(a)
		if v.Tag == value.Void {
			ip.typeErrorf("void value is not a legal argument")
			return value.Value{}
		}
		argVals[i] = v
	}

	closure, owner, hasOwner := ip.resolveCallee(n, argVals)
	if closure == nil {
		return value.Value{}
	}
	return ip.invoke(closure, n.Args, argVals, owner, hasOwner)
}

func (ip *Interpreter) callPrint(n *ast.Call) value.Value {
	var sb strings.Builder
	for _, a := range n.Args {
		sb.WriteString(ip.stringifyForPrint(ip.evalExpr(a)))
	}
	ip.host.Output(sb.String())
	return value.Value{Tag: value.Void}
}

func (ip *Interpreter) callInput(n *ast.Call, asInt bool) value.Value {
	if len(n.Args) > 1 {
		return ip.typeErrorf("%s accepts at most one argument", n.Name)
	}
	if len(n.Args) == 1 {
		ip.host.Output(ip.stringifyForPrint(ip.evalExpr(n.Args[0])))
	}
	line := ip.host.GetInput()
	if !asInt {
		return value.Value{Tag: value.String, Payload: line}
	}
	n64, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return ip.typeErrorf("inputi: cannot parse %q as int", line)
	}
	return value.Value{Tag: value.Int, Payload: n64}
}

// resolveCallee implements call-target resolution: a dotted name or a name
// that is already a bound variable resolves through qualified-name resolution
// (the terminal object, if any, becomes the implicit receiver); otherwise
// it is overload-resolved against the top-level function table.
func (ip *Interpreter) resolveCallee(n *ast.Call, argVals []value.Value) (*value.Closure, value.Value, bool) {
	base := strings.Split(n.Name, ".")[0]
	dotted := strings.Contains(n.Name, ".")

	if dotted || ip.env.Exists(base) {
		cell, owner, hasOwner := ip.resolveCellAndOwner(n.Name)
		if cell == nil {
			return nil, value.Value{}, false
		}
		v := cell.Get()
		closure, ok := v.AsClosure()
		if v.Tag != value.Function || !ok {
			ip.typeErrorf("%q does not refer to a function", n.Name)
			return nil, value.Value{}, false
		}
		return closure, owner, hasOwner
	}

	return ip.resolveOverload(n.Name, argVals), value.Value{}, false
}

// resolveOverload implements the (name, arity, per-argument-tag) overload
// match: a nil-tagged argument matches either an Object or a Function
// formal, so a single nil argument is naturally ambiguous when one
// candidate takes an Object and another a Function in that position.
func (ip *Interpreter) resolveOverload(name string, argVals []value.Value) *value.Closure {
	candidates := ip.funcsByName[name]
	var matches []*ast.FuncDef
	for _, fn := range candidates {
		info := getFuncInfo(fn)
		if len(info.paramTypes) != len(argVals) {
			continue
		}
		ok := true
		for i, pt := range info.paramTypes {
			if !matchParam(argVals[i], pt) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, fn)
		}
	}
	if len(matches) == 0 {
		ip.nameErrorf("no function %q matches the given arguments", name)
		return nil
	}
	if len(matches) > 1 {
		ip.nameErrorf("ambiguous call to overloaded function %q", name)
		return nil
	}
	fn := matches[0]
	info := getFuncInfo(fn)
	return &value.Closure{FuncAST: fn, ParamTypes: info.paramTypes}
}

func matchParam(arg value.Value, paramType value.Tag) bool {
	if arg.IsNil() && (paramType == value.Object || paramType == value.Function) {
		return true
	}
	return arg.Tag == paramType
}

func argExprAsQName(e ast.Expr) (string, bool) {
	qn, ok := e.(*ast.QualifiedName)
	if !ok {
		return "", false
	}
	return qn.Name, true
}

// invoke implements parameter binding and activation. argExprs
// is nil when invoking main, which takes no arguments.
func (ip *Interpreter) invoke(closure *value.Closure, argExprs []ast.Expr, argVals []value.Value, owner value.Value, hasOwner bool) value.Value {
	params := closure.FuncAST.ParamList()
	if len(params) != len(argVals) {
		return ip.typeErrorf("%s: expected %d arguments, got %d", closure.FuncAST.FuncName(), len(params), len(argVals))
	}

	info := getFuncInfo(closure.FuncAST)

	// Bind-values, interface checks, and ref-cell resolution all happen
	// while the caller's frame is still the visible scope: a ref actual
	// is a qualified name in the caller's environment, unreachable once
	// the activation frame is pushed.
	bindVals := make([]value.Value, len(params))
	refCells := make([]*value.Cell, len(params))
	for i, p := range params {
		ptype, piface := paramAttrs(p)
		bindVals[i] = ip.coerceForAssign(ptype, argVals[i])
		if piface != "" && !ip.satisfies(piface, bindVals[i]) {
			return ip.typeErrorf("argument %d to %s does not satisfy interface %q", i+1, closure.FuncAST.FuncName(), piface)
		}
		if p.Ref {
			qname, ok := argExprAsQName(argExprs[i])
			if !ok {
				return ip.typeErrorf("ref argument %d to %s must be a qualified name", i+1, closure.FuncAST.FuncName())
			}
			if piface != "" && interfaceForQName(qname) != piface {
				return ip.typeErrorf("ref argument %q does not declare interface %q", qname, piface)
			}
			cell, _, _ := ip.resolveCellAndOwner(qname)
			if cell == nil {
				return value.Value{}
			}
			refCells[i] = cell
		}
	}

	outerReturnType, outerReturnIface := ip.curReturnType, ip.curReturnIface
	if closure.Env != nil {
		snap, ok := closure.Env.(snapshot)
		if !ok {
			return ip.faultErrorf("invalid closure environment")
		}
		ip.env.EnterClosureFrame(snap)
	} else {
		ip.env.EnterFunc()
	}
	defer func() {
		ip.env.ExitFunc()
		ip.curReturnType, ip.curReturnIface = outerReturnType, outerReturnIface
	}()
	ip.curReturnType, ip.curReturnIface = info.returnType, info.returnIface

	if hasOwner {
		ip.env.DefineFunctionLocal(receiverName, owner)
	}

	for i, p := range params {
		var bound bool
		if refCells[i] != nil {
			bound = ip.env.DefineFunctionCell(p.Name, refCells[i])
		} else {
			bound = ip.env.DefineFunctionLocal(p.Name, bindVals[i])
		}
		if !bound {
			return ip.nameErrorf("duplicate parameter %q in %s", p.Name, closure.FuncAST.FuncName())
		}
	}

	if !ip.execBlock(closure.FuncAST.StmtList()) {
		ip.returnValue = value.Default(ip.curReturnType)
	}
	return ip.returnValue
}
