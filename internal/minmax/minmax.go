// Package minmax implements the double-ended indexed priority queue of
// spec §4.2: PopMin, PopMax, Front, Back in O(log n), and a bulk Reinit in
// O(n). It uses the classic level-alternating min-max heap (Atkinson,
// Sack, Santoro, Strothotte 1986): even levels (root at level 0) hold
// values no larger than their descendants, odd levels no smaller.
//
// Grounded on the same Ops-policy shape as internal/heap (itself grounded
// on the teacher's indexed nodePQ), extended to a double-ended structure
// because the teacher has no such type of its own; the comparison/index
// bookkeeping split mirrors internal/heap so engines that need both kinds
// of queue (BUGSY's single-ended utility queue plus a min-max cursor
// variant) share one mental model.
package minmax

// Ops is the same comparison/index-bookkeeping policy internal/heap uses:
// Pred(a, b) reports whether a sorts before b under the queue's single
// total order; both PopMin and PopMax operate over that one order.
type Ops[T any] interface {
	Pred(a, b T) bool
	SetIndex(t T, i int)
	GetIndex(t T) int
}

// Heap is a min-max heap of elements of type T.
type Heap[T any] struct {
	items []T
	ops   Ops[T]
}

// New returns an empty min-max Heap governed by ops.
func New[T any](ops Ops[T]) *Heap[T] {
	return &Heap[T]{ops: ops}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// Front returns the minimal element without removing it.
func (h *Heap[T]) Front() T { return h.items[0] }

// Back returns the maximal element without removing it.
func (h *Heap[T]) Back() T {
	switch {
	case len(h.items) == 1:
		return h.items[0]
	case len(h.items) == 2:
		return h.items[1]
	case h.ops.Pred(h.items[1], h.items[2]):
		return h.items[2]
	default:
		return h.items[1]
	}
}

// Push inserts t into the heap.
func (h *Heap[T]) Push(t T) {
	i := len(h.items)
	h.items = append(h.items, t)
	h.ops.SetIndex(t, i)
	h.pushUp(i)
}

// PopMin removes and returns the minimal element.
func (h *Heap[T]) PopMin() T { return h.remove(0) }

// PopMax removes and returns the maximal element.
func (h *Heap[T]) PopMax() T {
	if len(h.items) == 1 {
		return h.remove(0)
	}
	if len(h.items) == 2 {
		return h.remove(1)
	}
	if h.ops.Pred(h.items[1], h.items[2]) {
		return h.remove(2)
	}
	return h.remove(1)
}

// remove deletes the element at index i and restores the heap property.
func (h *Heap[T]) remove(i int) T {
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
		h.pushDown(i)
	}

	return removed
}

// Reinit rebuilds the min-max heap property over the current element
// slice in O(n).
func (h *Heap[T]) Reinit() {
	for i := range h.items {
		h.ops.SetIndex(h.items[i], i)
	}
	for i := len(h.items) - 1; i >= 0; i-- {
		h.pushDown(i)
	}
}

func isMinLevel(i int) bool {
	// level(i) = floor(log2(i+1)); min levels are even.
	level := 0
	for n := i + 1; n > 1; n >>= 1 {
		level++
	}
	return level%2 == 0
}

func (h *Heap[T]) pushUp(i int) {
	if i == 0 {
		return
	}
	parent := (i - 1) / 2
	if isMinLevel(i) {
		if h.ops.Pred(h.items[parent], h.items[i]) {
			h.swap(i, parent)
			h.pushUpMax(parent)
		} else {
			h.pushUpMin(i)
		}
	} else {
		if h.ops.Pred(h.items[i], h.items[parent]) {
			h.swap(i, parent)
			h.pushUpMin(parent)
		} else {
			h.pushUpMax(i)
		}
	}
}

func (h *Heap[T]) pushUpMin(i int) {
	for hasGrandparent(i) {
		gp := grandparent(i)
		if h.ops.Pred(h.items[i], h.items[gp]) {
			h.swap(i, gp)
			i = gp
		} else {
			return
		}
	}
}

func (h *Heap[T]) pushUpMax(i int) {
	for hasGrandparent(i) {
		gp := grandparent(i)
		if h.ops.Pred(h.items[gp], h.items[i]) {
			h.swap(i, gp)
			i = gp
		} else {
			return
		}
	}
}

func parent(i int) int          { return (i - 1) / 2 }
func hasGrandparent(i int) bool { return i >= 3 }
func grandparent(i int) int     { return parent(parent(i)) }

func (h *Heap[T]) pushDown(i int) {
	if isMinLevel(i) {
		h.pushDownMin(i)
	} else {
		h.pushDownMax(i)
	}
}

func (h *Heap[T]) pushDownMin(i int) {
	for {
		m := h.smallestDescendant(i)
		if m == -1 {
			return
		}
		if m > 2*i+2 {
			// m is a grandchild.
			if h.ops.Pred(h.items[m], h.items[i]) {
				h.swap(m, i)
				parent := (m - 1) / 2
				if h.ops.Pred(h.items[parent], h.items[m]) {
					h.swap(m, parent)
				}
				i = m
				continue
			}
			return
		}
		// m is a child.
		if h.ops.Pred(h.items[m], h.items[i]) {
			h.swap(m, i)
		}
		return
	}
}

func (h *Heap[T]) pushDownMax(i int) {
	for {
		m := h.largestDescendant(i)
		if m == -1 {
			return
		}
		if m > 2*i+2 {
			if h.ops.Pred(h.items[i], h.items[m]) {
				h.swap(m, i)
				parent := (m - 1) / 2
				if h.ops.Pred(h.items[m], h.items[parent]) {
					h.swap(m, parent)
				}
				i = m
				continue
			}
			return
		}
		if h.ops.Pred(h.items[i], h.items[m]) {
			h.swap(m, i)
		}
		return
	}
}

// smallestDescendant returns the index, among i's children and
// grandchildren, holding the smallest element, or -1 if i has no children.
func (h *Heap[T]) smallestDescendant(i int) int {
	best := -1
	consider := func(idx int) {
		if idx >= len(h.items) {
			return
		}
		if best == -1 || h.ops.Pred(h.items[idx], h.items[best]) {
			best = idx
		}
	}
	left, right := 2*i+1, 2*i+2
	consider(left)
	consider(right)
	for _, c := range []int{left, right} {
		if c >= len(h.items) {
			continue
		}
		consider(2*c + 1)
		consider(2*c + 2)
	}
	return best
}

// largestDescendant is smallestDescendant's mirror for the max side.
func (h *Heap[T]) largestDescendant(i int) int {
	best := -1
	consider := func(idx int) {
		if idx >= len(h.items) {
			return
		}
		if best == -1 || h.ops.Pred(h.items[best], h.items[idx]) {
			best = idx
		}
	}
	left, right := 2*i+1, 2*i+2
	consider(left)
	consider(right)
	for _, c := range []int{left, right} {
		if c >= len(h.items) {
			continue
		}
		consider(2*c + 1)
		consider(2*c + 2)
	}
	return best
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.ops.SetIndex(h.items[i], i)
	h.ops.SetIndex(h.items[j], j)
}
