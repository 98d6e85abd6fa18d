package interp

import "github.com/lucent-lang/lucent/internal/value"

// Heap is the id -> field-table map. Ids are drawn from a
// monotonic counter starting at 1 and are never reused or reclaimed within
// a run; a never-reclaiming implementation is sufficient since no program
// can observe id reuse.
type Heap struct {
	objects map[int]map[string]*value.Cell
	next    int
}

// NewHeap returns an empty heap with the id counter primed at 1.
func NewHeap() *Heap {
	return &Heap{objects: make(map[int]map[string]*value.Cell), next: 1}
}

// New allocates a fresh object with an empty field table and returns its id
// (the `new-object` / `@` primitive, ).
func (h *Heap) New() int {
	id := h.next
	h.next++
	h.objects[id] = make(map[string]*value.Cell)
	return id
}

// Fields returns the field table for id, or (nil, false) if id is not a
// live heap id.
func (h *Heap) Fields(id int) (map[string]*value.Cell, bool) {
	f, ok := h.objects[id]
	return f, ok
}
