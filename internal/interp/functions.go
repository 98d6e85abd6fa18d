package interp

import (
	"strconv"
	"strings"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/value"
)

// funcInfo is the derived, suffix-decoded signature of a function or
// lambda, stashed on the AST node's attribute map.
type funcInfo struct {
	returnType  value.Tag
	returnIface string
	paramTypes  []value.Tag
}

func setFuncInfo(n ast.FuncLike, info *funcInfo) {
	switch t := n.(type) {
	case *ast.FuncDef:
		t.SetAttr("info", info)
	case *ast.FuncLit:
		t.SetAttr("info", info)
	}
}

func getFuncInfo(n ast.FuncLike) *funcInfo {
	var attrs interface{ Attr(string) (any, bool) }
	switch t := n.(type) {
	case *ast.FuncDef:
		attrs = t
	case *ast.FuncLit:
		attrs = t
	}
	v, ok := attrs.Attr("info")
	if !ok {
		return nil
	}
	return v.(*funcInfo)
}

// deriveSignature computes and caches the funcInfo for a func-like node:
// its return type from the trailing character of its name and each parameter's declared type. isMain forces a Void return
// with no parameters, bypassing the name-suffix rule entirely.
func (ip *Interpreter) deriveSignature(n ast.FuncLike, isMain bool) *funcInfo {
	if info := getFuncInfo(n); info != nil {
		return info
	}

	var info funcInfo
	if isMain {
		info.returnType = value.Void
	} else {
		info.returnType, info.returnIface = ip.declaredType(n.FuncName(), true)
	}

	for _, p := range n.ParamList() {
		ptyp, piface := ip.declaredType(p.Name, false)
		p.SetAttr("declared_type", ptyp)
		p.SetAttr("interface", piface)
		info.paramTypes = append(info.paramTypes, ptyp)
	}
	setFuncInfo(n, &info)
	return &info
}

// funcKey is the overload-dispatch key: (name, tuple of
// declared parameter types). Interface constraints are deliberately not
// part of the key — only the tag tuple distinguishes overloads.
func funcKey(name string, types []value.Tag) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('/')
	for i, t := range types {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(t)))
	}
	return b.String()
}

// buildFunctions constructs the overload-indexed function table. Duplicate (name, param-types) keys are a Name error.
func (ip *Interpreter) buildFunctions(prog *ast.Program) {
	ip.funcs = make(map[string]*ast.FuncDef)
	ip.funcsByName = make(map[string][]*ast.FuncDef)

	for _, fn := range prog.Functions {
		isMain := fn.Name == "main"
		if isMain && len(fn.Params) != 0 {
			ip.nameErrorf("main function cannot have parameters")
			return
		}
		info := ip.deriveSignature(fn, isMain)

		key := funcKey(fn.Name, info.paramTypes)
		if _, dup := ip.funcs[key]; dup {
			ip.nameErrorf("function %q defined more than once for this parameter signature", fn.Name)
			return
		}
		ip.funcs[key] = fn
		ip.funcsByName[fn.Name] = append(ip.funcsByName[fn.Name], fn)
	}
}

// materializeFunctionRef implements the bare-name-with-no-call-syntax case:
// if exactly one top-level function has this name (across
// all of its overloads), wrap it as a Function value with no closure env.
func (ip *Interpreter) materializeFunctionRef(name string) value.Value {
	candidates := ip.funcsByName[name]
	if len(candidates) == 0 {
		return ip.nameErrorf("function %q not found", name)
	}
	if len(candidates) > 1 {
		return ip.nameErrorf("ambiguous reference to overloaded function %q", name)
	}
	fn := candidates[0]
	info := getFuncInfo(fn)
	return value.Value{Tag: value.Function, Payload: &value.Closure{
		FuncAST:    fn,
		ParamTypes: info.paramTypes,
		Env:        nil,
	}}
}
