// Package pool implements the arena node allocator of spec §4.2: records of
// a single type are slab-allocated, Construct returns a zeroed
// record, Destruct returns it to an intrusive free-list, and Reset discards
// every slab at once. Nothing is freed record-by-record; the arena only
// grows until Reset.
//
// Grounded on the slab/free-list shape used throughout the corpus's
// sync.Pool-backed stores (gitrdm-gokando's ConstraintStorePool), adapted to
// the single-threaded, non-atomic arena semantics spec §5 requires: a
// search is synchronous, so the pool carries no locks.
package pool

// defaultSlabSize is the number of records allocated per slab when the
// caller does not specify one.
const defaultSlabSize = 4096

// Pool slab-allocates records of type T. The zero value is not usable;
// construct one with New.
type Pool[T any] struct {
	slabSize int
	slabs    [][]T
	nextIdx  int
	free     []*T

	constructed int
	destructed  int
}

// New returns a Pool that allocates records in slabs of slabSize. A
// non-positive slabSize falls back to a reasonable default.
func New[T any](slabSize int) *Pool[T] {
	if slabSize <= 0 {
		slabSize = defaultSlabSize
	}

	return &Pool[T]{slabSize: slabSize}
}

// Construct returns a pointer to a zeroed record, drawn from the free-list
// if one is available, otherwise from the current slab (growing the arena
// with a new slab if the current one is exhausted).
func (p *Pool[T]) Construct() *T {
	p.constructed++

	if n := len(p.free); n > 0 {
		rec := p.free[n-1]
		p.free = p.free[:n-1]
		var zero T
		*rec = zero

		return rec
	}

	if len(p.slabs) == 0 || p.nextIdx >= len(p.slabs[len(p.slabs)-1]) {
		p.slabs = append(p.slabs, make([]T, p.slabSize))
		p.nextIdx = 0
	}

	slab := p.slabs[len(p.slabs)-1]
	rec := &slab[p.nextIdx]
	p.nextIdx++

	return rec
}

// Destruct returns rec to the free-list. It does not shrink the arena;
// the storage stays live until Reset. Destructing a record not obtained
// from this pool, or destructing it twice, corrupts the free-list (spec
// §7(c): the engine is written assuming its own bookkeeping invariants).
func (p *Pool[T]) Destruct(rec *T) {
	p.destructed++
	p.free = append(p.free, rec)
}

// Reset discards every slab and the free-list. All outstanding pointers
// into this pool become invalid.
func (p *Pool[T]) Reset() {
	p.slabs = nil
	p.free = nil
	p.nextIdx = 0
	p.constructed = 0
	p.destructed = 0
}

// Live returns the number of records currently constructed and not yet
// destructed.
func (p *Pool[T]) Live() int {
	return p.constructed - p.destructed
}

// RecordSize reports sizeof(T) in bytes via unsafe.Sizeof. The cmd/search
// trailer does not call it; its "node size bytes" row is always 0.
func (p *Pool[T]) RecordSize() int {
	var t T
	return recordSizeOf(t)
}
