package interp

import "github.com/lucent-lang/lucent/internal/value"

// snapshot is a deep copy of the current frame's blocks, captured at the
// moment a lambda expression is evaluated.
// Lookup only ever searches the current frame (environment.go), so the
// current frame's own blocks are the entirety of what a lambda can close
// over — there is nothing visible in an outer frame left to capture.
type snapshot []block

// captureSnapshot deep-copies the current frame's blocks, allocating a
// fresh cell for every binding. Because value.Value is a small by-value
// struct, copying it already gives both capture semantics in one uniform
// step: for Int/String/Bool the payload IS the scalar, so copying the
// Value copies the scalar; for Object/Function the
// payload is a heap id or a *Closure pointer, so copying the Value copies
// only that handle — the pointee (heap object, closure) is not touched and
// stays shared. No per-tag branch is needed.
func (ip *Interpreter) captureSnapshot() snapshot {
	f := ip.env.top()
	out := make(snapshot, len(f.blocks))
	for i, b := range f.blocks {
		nb := make(block, len(b))
		for name, cell := range b {
			nb[name] = value.NewCell(cell.Get())
		}
		out[i] = nb
	}
	return out
}
