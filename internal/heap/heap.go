// Package heap implements the indexed binary heap of spec §4.2: push, pop,
// in-place key change via update/pushupdate, and removal by stored index,
// all O(log n) except Len and Front which are O(1).
//
// Grounded on the *nodeItem/nodePQ pair in the teacher's dijkstra package
// and the indexed PriorityQueue in other_examples' goap planner: both carry
// an index field on the stored element, maintained on every swap, so an
// arbitrary element can be located and fixed up without a linear scan. This
// package generalises that shape behind an Ops policy instead of
// hard-coding container/heap's sort.Interface, because spec's Remove(i) and
// PushUpdate(n,i) need direct index access container/heap does not expose
// as cleanly as a from-scratch sift implementation.
package heap

// Ops is the comparison/index-bookkeeping policy a Heap is generic over.
// Pred(a, b) reports whether a must come before b (closer to the front).
// SetIndex/GetIndex read and write the element's stored position; Heap
// maintains the invariant that GetIndex(t) equals t's current slot, or -1
// when t is not a member of this heap.
type Ops[T any] interface {
	Pred(a, b T) bool
	SetIndex(t T, i int)
	GetIndex(t T) int
}

// Heap is a binary heap of elements of type T, ordered by an Ops policy.
type Heap[T any] struct {
	items []T
	ops   Ops[T]
}

// New returns an empty Heap governed by ops.
func New[T any](ops Ops[T]) *Heap[T] {
	return &Heap[T]{ops: ops}
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// Mem reports whether t is currently a member of the heap.
func (h *Heap[T]) Mem(t T) bool { return h.ops.GetIndex(t) >= 0 }

// Front returns the element at the front of the heap without removing it.
// Front panics if the heap is empty; callers must check Len() first,
// mirroring the teacher's convention of letting zero-value invariants
// surface as the caller's bug, not the library's.
func (h *Heap[T]) Front() T { return h.items[0] }

// Push inserts t into the heap.
func (h *Heap[T]) Push(t T) {
	i := len(h.items)
	h.items = append(h.items, t)
	h.ops.SetIndex(t, i)
	h.siftUp(i)
}

// Pop removes and returns the front element.
func (h *Heap[T]) Pop() T {
	top := h.items[0]
	h.ops.SetIndex(top, -1)

	last := len(h.items) - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]

	if len(h.items) > 0 {
		h.ops.SetIndex(h.items[0], 0)
		h.siftDown(0)
	}

	return top
}

// Update restores the heap property after the element at index i has had
// its key changed in place; it may move up or down depending on how the
// key changed.
func (h *Heap[T]) Update(i int) {
	if !h.siftUp(i) {
		h.siftDown(i)
	}
}

// PreUpdate and PostUpdate bracket a key mutation the callsite performs
// directly on an element already known to be in the heap: PreUpdate
// records nothing (the index is read straight off the element via
// GetIndex) but exists as a paired name for readability at callsites, and
// PostUpdate re-establishes the heap property at that index. They are
// equivalent to calling Update(ops.GetIndex(t)) after the mutation, split
// in two so the callsite can mutate between them.
func (h *Heap[T]) PreUpdate(t T) int { return h.ops.GetIndex(t) }
func (h *Heap[T]) PostUpdate(i int)  { h.Update(i) }

// Remove deletes the element at index i from the heap and returns it.
func (h *Heap[T]) Remove(i int) T {
	removed := h.items[i]
	h.ops.SetIndex(removed, -1)

	last := len(h.items) - 1
	if i != last {
		h.items[i] = h.items[last]
		h.ops.SetIndex(h.items[i], i)
	}
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]

	if i < len(h.items) {
		if !h.siftUp(i) {
			h.siftDown(i)
		}
	}

	return removed
}

// PushUpdate pushes t if it is not currently a member (GetIndex(t) < 0),
// otherwise updates it in place at its stored index. This is the common
// "insert-or-fix" pattern every engine's duplicate-handling path uses.
func (h *Heap[T]) PushUpdate(t T) {
	if i := h.ops.GetIndex(t); i >= 0 {
		h.Update(i)
	} else {
		h.Push(t)
	}
}

// All returns a snapshot slice of every element currently in the heap, in
// no particular order. Used by callers (AEES's error-correction rescan)
// that must revisit every member after a global re-scoring, not just the
// front.
func (h *Heap[T]) All() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// Reinit rebuilds the heap property over the current element slice in
// O(n), used after a bulk re-scoring pass (BUGSY recomputing utility on
// every entry after a timeper re-estimate).
func (h *Heap[T]) Reinit() {
	for i := range h.items {
		h.ops.SetIndex(h.items[i], i)
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// siftUp moves the element at i toward the front while it precedes its
// parent; it reports whether any movement occurred.
func (h *Heap[T]) siftUp(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !h.ops.Pred(h.items[i], h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}
	return moved
}

// siftDown moves the element at i toward the back while a child precedes
// it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.ops.Pred(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < n && h.ops.Pred(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.ops.SetIndex(h.items[i], i)
	h.ops.SetIndex(h.items[j], j)
}
