package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/heurisearch/internal/heap"
)

type item struct {
	key int
	idx int
}

type intOps struct{}

func (intOps) Pred(a, b *item) bool   { return a.key < b.key }
func (intOps) SetIndex(t *item, i int) { t.idx = i }
func (intOps) GetIndex(t *item) int    { return t.idx }

func newHeap() *heap.Heap[*item] {
	return heap.New[*item](intOps{})
}

func TestHeap_PushPopSorted(t *testing.T) {
	h := newHeap()
	vals := []int{5, 3, 8, 1, 9, 2, 7}
	items := make([]*item, 0, len(vals))
	for _, v := range vals {
		it := &item{key: v, idx: -1}
		items = append(items, it)
		h.Push(it)
	}

	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop().key)
	}

	want := append([]int(nil), vals...)
	sort.Ints(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}

func TestHeap_UpdateAfterKeyChange(t *testing.T) {
	h := newHeap()
	a := &item{key: 10, idx: -1}
	b := &item{key: 20, idx: -1}
	c := &item{key: 30, idx: -1}
	h.Push(a)
	h.Push(b)
	h.Push(c)

	// Decrease c's key below a's, then fix up at its recorded index.
	i := h.PreUpdate(c)
	c.key = 1
	h.PostUpdate(i)

	if front := h.Front(); front != c {
		t.Fatalf("front = %+v, want c", front)
	}
}

func TestHeap_RemoveByIndex(t *testing.T) {
	h := newHeap()
	items := make([]*item, 5)
	for i := range items {
		items[i] = &item{key: i, idx: -1}
		h.Push(items[i])
	}

	mid := items[2]
	idx := mid.idx
	removed := h.Remove(idx)
	if removed != mid {
		t.Fatalf("Remove(%d) = %+v, want %+v", idx, removed, mid)
	}
	if h.Mem(mid) {
		t.Fatal("removed element still reports as a member")
	}
	if h.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", h.Len())
	}

	for h.Len() > 0 {
		popped := h.Pop()
		if popped == mid {
			t.Fatal("removed element resurfaced from Pop")
		}
	}
}

func TestHeap_PushUpdateInsertsOrFixes(t *testing.T) {
	h := newHeap()
	a := &item{key: 5, idx: -1}
	h.PushUpdate(a) // not a member: inserts
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}

	a.key = -100
	h.PushUpdate(a) // already a member: fixes in place
	if h.Len() != 1 {
		t.Fatalf("Len() = %d after re-PushUpdate, want 1", h.Len())
	}
	if h.Front() != a {
		t.Fatal("PushUpdate did not restore heap property after key decrease")
	}
}

func TestHeap_ReinitAfterBulkRescoring(t *testing.T) {
	h := newHeap()
	items := make([]*item, 20)
	for i := range items {
		items[i] = &item{key: i, idx: -1}
		h.Push(items[i])
	}

	// Reverse every key, simulating BUGSY's bulk utility recomputation.
	for _, it := range items {
		it.key = -it.key
	}
	h.Reinit()

	last := h.Pop().key
	for h.Len() > 0 {
		next := h.Pop().key
		if next < last {
			t.Fatalf("heap property violated after Reinit: %d popped before %d", last, next)
		}
		last = next
	}
}

func TestHeap_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		h := newHeap()
		n := rng.Intn(50)
		vals := make([]int, n)
		for i := range vals {
			vals[i] = rng.Intn(1000)
			h.Push(&item{key: vals[i], idx: -1})
		}
		sort.Ints(vals)
		for i := 0; i < n; i++ {
			if got := h.Pop().key; got != vals[i] {
				t.Fatalf("trial %d: pop[%d] = %d, want %d", trial, i, got, vals[i])
			}
		}
	}
}
