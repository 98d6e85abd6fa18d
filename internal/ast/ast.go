// Package ast defines the abstract syntax tree consumed by the interpreter.
//
// The parser is an external collaborator; this package only
// describes the shape it is assumed to produce: a closed set of concrete
// node types reachable by a Go type switch (the "element-type
// discriminator" ) with plain exported fields ("field accessor by
// name"). Each node embeds Base, which carries the open per-node attribute
// map the interpreter augments during function-table construction and
// lambda evaluation (derived types, parameter-type tuples) — see
// internal/interp/functions.go.
package ast

// Base is embedded by every node and carries interpreter-derived
// attributes. A fresh Base has a nil Attrs map; SetAttr lazily allocates it.
type Base struct {
	Attrs map[string]any
}

// SetAttr records a derived attribute under key.
func (b *Base) SetAttr(key string, v any) {
	if b.Attrs == nil {
		b.Attrs = make(map[string]any)
	}
	b.Attrs[key] = v
}

// Attr returns the derived attribute under key, if any.
func (b *Base) Attr(key string) (any, bool) {
	v, ok := b.Attrs[key]
	return v, ok
}

// Node is the marker interface implemented by every AST node.
type Node interface {
	isNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// FuncLike is implemented by both FuncDef and FuncLit: anything that can be
// wrapped in a Function value's closure record.
// The accessor methods are named distinctly from the underlying exported
// fields (Params, Statements, Name) since a type cannot declare both a
// field and a method with the same name.
type FuncLike interface {
	Node
	ParamList() []*Param
	StmtList() []Stmt
	FuncName() string
}

func (*Base) isNode() {}

// Param is a formal parameter (of a top-level function, a lambda, or an
// interface func-field). Name encodes its declared type by suffix; Ref marks it as a by-reference parameter.
type Param struct {
	Base
	Name string
	Ref  bool
}

// Program is the root node: (interfaces, functions).
type Program struct {
	Base
	Interfaces []*InterfaceDef
	Functions  []*FuncDef
}

// InterfaceDef declares a single-letter nominal interface.
type InterfaceDef struct {
	Base
	Name   string
	Fields []InterfaceField
}

// InterfaceField is implemented by FieldVar and FieldFunc.
type InterfaceField interface {
	Node
	ifaceFieldNode()
}

// FieldVar is a `var(type, interface)` interface field spec. Name encodes
// the declared type and optional interface by suffix.
type FieldVar struct {
	Base
	Name string
}

func (*FieldVar) ifaceFieldNode() {}

// FieldFunc is a `func(params)` interface field spec.
type FieldFunc struct {
	Base
	Name   string
	Params []*Param
}

func (*FieldFunc) ifaceFieldNode() {}

// FuncDef is a top-level function definition. Name encodes the return type
// by its trailing character; "main" is the entry point.
type FuncDef struct {
	Base
	Name       string
	Params     []*Param
	Statements []Stmt
}

func (f *FuncDef) ParamList() []*Param { return f.Params }
func (f *FuncDef) StmtList() []Stmt    { return f.Statements }
func (f *FuncDef) FuncName() string    { return f.Name }

// FuncLit is an anonymous function expression; always captures
// a closure snapshot when evaluated, unlike a bare reference to a FuncDef.
type FuncLit struct {
	Base
	Name       string // synthetic name whose suffix encodes the return type
	Params     []*Param
	Statements []Stmt
}

func (*FuncLit) exprNode() {}

func (f *FuncLit) ParamList() []*Param { return f.Params }
func (f *FuncLit) StmtList() []Stmt    { return f.Statements }
func (f *FuncLit) FuncName() string    { return f.Name }

// VarDef declares a function-scoped local, defaulted and inserted into the
// function's initial block.
type VarDef struct {
	Base
	Name string
}

func (*VarDef) stmtNode() {}

// BlockVarDef declares a block-scoped local; same defaulting
// as VarDef but scoped to, and redefinition-checked within, the current
// block only.
type BlockVarDef struct {
	Base
	Name string
}

func (*BlockVarDef) stmtNode() {}

// Assign is `target = expr`; Target may be a dotted qualified name.
type Assign struct {
	Base
	Target string
	Expr   Expr
}

func (*Assign) stmtNode() {}

// Call is both an expression and, as a bare call-statement, a
// statement.
type Call struct {
	Base
	Name string
	Args []Expr
}

func (*Call) exprNode() {}
func (*Call) stmtNode() {}

// If is `if (cond) { then } [else { else }]`.
type If struct {
	Base
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no else clause
}

func (*If) stmtNode() {}

// While is `while (cond) { body }`.
type While struct {
	Base
	Cond Expr
	Body []Stmt
}

func (*While) stmtNode() {}

// Return is `return [expr]`; Expr is nil for a bare return.
type Return struct {
	Base
	Expr Expr // nil means no expression
}

func (*Return) stmtNode() {}

// IntLit, StringLit, BoolLit are literal expressions.
type IntLit struct {
	Base
	Val int64
}

func (*IntLit) exprNode() {}

type StringLit struct {
	Base
	Val string
}

func (*StringLit) exprNode() {}

type BoolLit struct {
	Base
	Val bool
}

func (*BoolLit) exprNode() {}

// NilLit is the `nil` literal.
type NilLit struct{ Base }

func (*NilLit) exprNode() {}

// NewObject is the `@` / new-object primitive.
type NewObject struct{ Base }

func (*NewObject) exprNode() {}

// Convert is `convert(to, expr)`. To is one of "int","str","bool".
type Convert struct {
	Base
	To   string
	Expr Expr
}

func (*Convert) exprNode() {}

// QualifiedName is a bare or dotted identifier reference.
type QualifiedName struct {
	Base
	Name string
}

func (*QualifiedName) exprNode() {}

// Unary is `-x` (Neg) or `!x` (Not).
type Unary struct {
	Base
	Op      string // "neg" or "not"
	Operand Expr
}

func (*Unary) exprNode() {}

// Binary is any of the binary operators.
type Binary struct {
	Base
	Op          string
	Left, Right Expr
}

func (*Binary) exprNode() {}
