// Package value defines the tagged runtime values and cell indirection that
// every other part of the interpreter builds on.
package value

import (
	"fmt"

	"github.com/lucent-lang/lucent/internal/ast"
)

// Tag is the type discriminator carried by every Value.
type Tag int

const (
	Int Tag = iota
	String
	Bool
	Void
	Object
	Function
)

func (t Tag) String() string {
	switch t {
	case Int:
		return "int"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Void:
		return "void"
	case Object:
		return "object"
	case Function:
		return "function"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Closure is the payload of a Function-tagged Value: a pointer to the function/lambda AST, its parameter-type
// tuple, and an optional captured-environment snapshot.
type Closure struct {
	FuncAST    ast.FuncLike
	ParamTypes []Tag
	// Env is the deep-copy snapshot for a lambda; nil for a named
	// top-level function reference. Typed as `any`
	// because the concrete snapshot type lives in package interp, which
	// imports this package — interp asserts it back to its snapshot type.
	Env any
}

// Value is the pair (tag, payload). Payload by tag:
//
//	Int      -> int64
//	String   -> string
//	Bool     -> bool
//	Void     -> nil (never storable in a Cell)
//	Object   -> int (heap id), or nil for the Nil-object sentinel
//	Function -> *Closure, or nil for the Nil-function sentinel
type Value struct {
	Tag     Tag
	Payload any
}

// IsNil reports whether v is the Nil sentinel of an Object or Function
// value: the tag is nullable and the payload is absent.
func (v Value) IsNil() bool {
	return (v.Tag == Object || v.Tag == Function) && v.Payload == nil
}

// ObjectID returns the heap id of an Object value and whether it is non-nil.
func (v Value) ObjectID() (int, bool) {
	if v.Tag != Object || v.Payload == nil {
		return 0, false
	}
	return v.Payload.(int), true
}

// AsClosure returns the closure payload of a Function value and whether it
// is non-nil.
func (v Value) AsClosure() (*Closure, bool) {
	if v.Tag != Function || v.Payload == nil {
		return nil, false
	}
	return v.Payload.(*Closure), true
}

// Default returns the zero value for tag t.
func Default(t Tag) Value {
	switch t {
	case Int:
		return Value{Tag: Int, Payload: int64(0)}
	case String:
		return Value{Tag: String, Payload: ""}
	case Bool:
		return Value{Tag: Bool, Payload: false}
	case Object:
		return Value{Tag: Object, Payload: nil}
	case Function:
		return Value{Tag: Function, Payload: nil}
	case Void:
		return Value{Tag: Void, Payload: nil}
	}
	panic(fmt.Sprintf("value: unknown tag %d", int(t)))
}

// NilObject and NilFunction are the Nil sentinels for their respective tags.
func NilObject() Value   { return Value{Tag: Object, Payload: nil} }
func NilFunction() Value { return Value{Tag: Function, Payload: nil} }

// Cell is the single-slot mutable container that is the unit of aliasing
// for environment bindings and object fields. A Cell's tag is fixed at
// creation; callers are responsible for enforcing that before calling Set.
type Cell struct {
	v Value
}

// NewCell creates a cell holding the given initial value.
func NewCell(v Value) *Cell { return &Cell{v: v} }

// Get returns the cell's current value.
func (c *Cell) Get() Value { return c.v }

// Set overwrites the cell's current value.
func (c *Cell) Set(v Value) { c.v = v }
