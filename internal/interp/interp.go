// Package interp is the tree-walking evaluator: environment, heap,
// interface and function tables, and the expression/statement/call
// machinery that walks a parsed *ast.Program.
package interp

import (
	"io"
	"log/slog"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/host"
	"github.com/lucent-lang/lucent/internal/value"
)

// Interpreter holds all state for one run: the host façade, the
// environment stack, the heap, and the derived interface/function tables.
// An Interpreter is single-use — construct a fresh one per Run.
type Interpreter struct {
	host        *host.Facade
	env         *Environment
	heap        *Heap
	interfaces  map[string]*ifaceDef
	funcs       map[string]*ast.FuncDef
	funcsByName map[string][]*ast.FuncDef
	log         *slog.Logger

	// curReturnType/curReturnIface is the active call's declared return
	// signature, saved and restored around every invoke.
	curReturnType  value.Tag
	curReturnIface string
	returnValue    value.Value
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithTrace enables step-by-step statement/call tracing to w.
func WithTrace(enabled bool, w io.Writer) Option {
	return func(ip *Interpreter) { ip.log = newTraceLogger(enabled, w) }
}

// New constructs an Interpreter bound to the given host façade.
func New(h *host.Facade, opts ...Option) *Interpreter {
	ip := &Interpreter{
		host: h,
		env:  NewEnvironment(),
		heap: NewHeap(),
	}
	for _, opt := range opts {
		opt(ip)
	}
	if ip.log == nil {
		ip.log = newTraceLogger(false, io.Discard)
	}
	return ip
}

// Run builds the interface and function tables and invokes main. It
// converts the host façade's one-shot abort panic back into a normal
// error return.
func (ip *Interpreter) Run(prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if aborted, ok := r.(*host.Aborted); ok {
				err = aborted
				return
			}
			panic(r)
		}
	}()

	ip.buildInterfaces(prog)
	ip.buildFunctions(prog)

	mainFn, ok := ip.funcs[funcKey("main", nil)]
	if !ok {
		ip.nameErrorf("no main function defined")
		return nil
	}
	info := getFuncInfo(mainFn)
	closure := &value.Closure{FuncAST: mainFn, ParamTypes: info.paramTypes}
	ip.invoke(closure, nil, nil, value.Value{}, false)
	return nil
}
