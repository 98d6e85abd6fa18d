package interp

import "github.com/lucent-lang/lucent/internal/value"

// block is an identifier -> Cell scope.
type block map[string]*value.Cell

// frame is a stack of blocks for one function activation. initIdx is the
// index of this function's own initial block — where ordinary parameters
// and var-defined locals live. For an ordinary call initIdx is always 0;
// for a closure activation the snapshot's blocks occupy the indices below
// it (see closure.go), so the function's own block sits just above them
// instead of at index 0.
type frame struct {
	blocks  []block
	initIdx int
}

func newFrame() *frame {
	return &frame{blocks: []block{{}}, initIdx: 0}
}

// newClosureFrame builds an activation frame seeded with a captured
// snapshot's blocks (already a deep copy, see closure.go) as the outer
// context, with one fresh block on top for this call's own parameters and
// locals.
func newClosureFrame(snap snapshot) *frame {
	blocks := make([]block, len(snap)+1)
	copy(blocks, []block(snap))
	blocks[len(snap)] = block{}
	return &frame{blocks: blocks, initIdx: len(snap)}
}

// Environment is the stack of function frames. Lookup scans the current (top) frame's blocks innermost to
// outermost; it never reaches into a suspended caller's frame. A closure
// activation's captured variables are not in a separate frame reached by
// crossing a boundary — they are additional outer blocks woven into the
// callee's own single frame by newClosureFrame, so the "never crosses
// frame boundaries" rule and working closures are not in tension.
type Environment struct {
	frames []*frame
}

// NewEnvironment returns an empty environment stack.
func NewEnvironment() *Environment {
	return &Environment{}
}

// EnterFunc pushes a fresh, ordinary activation frame with one initial
// block.
func (e *Environment) EnterFunc() {
	e.frames = append(e.frames, newFrame())
}

// EnterClosureFrame pushes an activation frame woven from a captured
// snapshot.
func (e *Environment) EnterClosureFrame(snap snapshot) {
	e.frames = append(e.frames, newClosureFrame(snap))
}

// ExitFunc pops the current activation frame.
func (e *Environment) ExitFunc() {
	e.frames = e.frames[:len(e.frames)-1]
}

func (e *Environment) top() *frame {
	return e.frames[len(e.frames)-1]
}

// EnterBlock pushes a fresh block scope within the current frame (if/while
// bodies).
func (e *Environment) EnterBlock() {
	f := e.top()
	f.blocks = append(f.blocks, block{})
}

// ExitBlock pops the innermost block scope of the current frame.
func (e *Environment) ExitBlock() {
	f := e.top()
	f.blocks = f.blocks[:len(f.blocks)-1]
}

// existsInFunctionScope reports whether name is bound in the current
// frame's own initial block.
func (e *Environment) existsInFunctionScope(name string) bool {
	f := e.top()
	_, ok := f.blocks[f.initIdx][name]
	return ok
}

// existsInCurrentBlock reports whether name is bound in the innermost
// block of the current frame.
func (e *Environment) existsInCurrentBlock(name string) bool {
	f := e.top()
	_, ok := f.blocks[len(f.blocks)-1][name]
	return ok
}

// DefineFunctionLocal binds name to a fresh cell holding v in the current
// frame's own initial block. Returns false if name is already bound
// there.
func (e *Environment) DefineFunctionLocal(name string, v value.Value) bool {
	if e.existsInFunctionScope(name) {
		return false
	}
	f := e.top()
	f.blocks[f.initIdx][name] = value.NewCell(v)
	return true
}

// DefineFunctionCell binds name directly to an existing cell in the current
// frame's own initial block — used for ref-parameter binding, where the
// cell must be shared rather than owned.
func (e *Environment) DefineFunctionCell(name string, c *value.Cell) bool {
	if e.existsInFunctionScope(name) {
		return false
	}
	f := e.top()
	f.blocks[f.initIdx][name] = c
	return true
}

// DefineBlockLocal binds name to a fresh cell in the current frame's
// innermost block (a `bvardef`). Returns false on redefinition within that
// block only.
func (e *Environment) DefineBlockLocal(name string, v value.Value) bool {
	if e.existsInCurrentBlock(name) {
		return false
	}
	f := e.top()
	f.blocks[len(f.blocks)-1][name] = value.NewCell(v)
	return true
}

// Cell returns the cell bound to name in the current frame, searching
// blocks innermost to outermost, or nil if unbound.
func (e *Environment) Cell(name string) *value.Cell {
	f := e.top()
	for i := len(f.blocks) - 1; i >= 0; i-- {
		if c, ok := f.blocks[i][name]; ok {
			return c
		}
	}
	return nil
}

// Exists reports whether name is bound anywhere in the current frame.
func (e *Environment) Exists(name string) bool {
	return e.Cell(name) != nil
}
