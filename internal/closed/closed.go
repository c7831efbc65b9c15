// Package closed implements the intrusive duplicate-detection hash table of
// spec §4.2: a chained hash table keyed by PackedState, with hashing and
// equality supplied by the caller (the domain, per spec §4.1) rather than
// Go's built-in map equality, so PackedState need not be a Go-comparable
// type. Average-case O(1) Add/Find/Remove.
//
// Grounded on the teacher's gridgraph package, which also injects a
// caller-supplied equality/adjacency policy instead of relying on Go's
// native map semantics (gridgraph compares cells by value through its own
// Connectivity rules rather than struct equality); this package applies
// the same "policy object owns comparison" shape to a hash table.
package closed

// Table is a closed (duplicate-detection) hash table. T is the stored
// record type, P the key type extracted from each record via KeyOf.
type Table[T any, P any] struct {
	hash  func(P) uint64
	equal func(a, b P) bool
	keyOf func(T) P

	buckets [][]T
	mask    uint64
	n       int

	prAdds, prFinds, prHits, prRemoves int64
}

// minBuckets is the smallest bucket-array size Table ever allocates; it
// must be a power of two so mask-based indexing works.
const minBuckets = 16

// New returns an empty Table. hash and equal must agree (equal keys hash
// equally); keyOf extracts the PackedState from a stored record.
func New[T any, P any](hash func(P) uint64, equal func(a, b P) bool, keyOf func(T) P) *Table[T, P] {
	t := &Table[T, P]{hash: hash, equal: equal, keyOf: keyOf}
	t.buckets = make([][]T, minBuckets)
	t.mask = minBuckets - 1
	return t
}

// Len returns the number of records currently stored.
func (t *Table[T, P]) Len() int { return t.n }

// Add inserts rec, keyed by keyOf(rec). Add does not check for an existing
// entry with the same key (spec invariant 1 — at most one node per state —
// is the caller's responsibility: callers must Find before Add on a fresh
// key, exactly as every engine's expand() does).
func (t *Table[T, P]) Add(rec T) {
	t.prAdds++
	if t.n >= len(t.buckets) {
		t.grow()
	}
	idx := t.bucketIndex(t.keyOf(rec))
	t.buckets[idx] = append(t.buckets[idx], rec)
	t.n++
}

// Find returns the record keyed by p, if any.
func (t *Table[T, P]) Find(p P) (T, bool) {
	t.prFinds++
	idx := t.bucketIndex(p)
	for _, rec := range t.buckets[idx] {
		if t.equal(t.keyOf(rec), p) {
			t.prHits++
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the record keyed by p, if present, and reports whether
// anything was removed.
func (t *Table[T, P]) Remove(p P) bool {
	t.prRemoves++
	idx := t.bucketIndex(p)
	bucket := t.buckets[idx]
	for i, rec := range bucket {
		if t.equal(t.keyOf(rec), p) {
			bucket[i] = bucket[len(bucket)-1]
			var zero T
			bucket[len(bucket)-1] = zero
			t.buckets[idx] = bucket[:len(bucket)-1]
			t.n--
			return true
		}
	}
	return false
}

// Clear empties the table without shrinking the bucket array.
func (t *Table[T, P]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.n = 0
	t.prAdds, t.prFinds, t.prHits, t.prRemoves = 0, 0, 0, 0
}

// Stats reports accumulated operation counters. The cmd/search trailer
// does not read them; its "closed list stats" row is a fixed string.
type Stats struct {
	Size     int
	Buckets  int
	Adds     int64
	Finds    int64
	Hits     int64
	Removes  int64
}

// PrStats returns a snapshot of the table's accumulated statistics.
func (t *Table[T, P]) PrStats() Stats {
	return Stats{
		Size:    t.n,
		Buckets: len(t.buckets),
		Adds:    t.prAdds,
		Finds:   t.prFinds,
		Hits:    t.prHits,
		Removes: t.prRemoves,
	}
}

func (t *Table[T, P]) bucketIndex(p P) uint64 {
	return t.hash(p) & t.mask
}

// grow doubles the bucket array once load factor exceeds 1 and rehashes
// every stored record.
func (t *Table[T, P]) grow() {
	old := t.buckets
	newSize := len(old) * 2
	t.buckets = make([][]T, newSize)
	t.mask = uint64(newSize) - 1
	for _, bucket := range old {
		for _, rec := range bucket {
			idx := t.bucketIndex(t.keyOf(rec))
			t.buckets[idx] = append(t.buckets[idx], rec)
		}
	}
}
