package minmax_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/heurisearch/internal/minmax"
)

type item struct {
	key int
	idx int
}

type intOps struct{}

func (intOps) Pred(a, b *item) bool    { return a.key < b.key }
func (intOps) SetIndex(t *item, i int) { t.idx = i }
func (intOps) GetIndex(t *item) int    { return t.idx }

func newHeap() *minmax.Heap[*item] {
	return minmax.New[*item](intOps{})
}

func TestMinMax_FrontBack(t *testing.T) {
	h := newHeap()
	for _, v := range []int{5, 1, 9, 3, 7, 2} {
		h.Push(&item{key: v, idx: -1})
	}
	if h.Front().key != 1 {
		t.Fatalf("Front() = %d, want 1", h.Front().key)
	}
	if h.Back().key != 9 {
		t.Fatalf("Back() = %d, want 9", h.Back().key)
	}
}

func TestMinMax_PopMinSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := newHeap()
	n := 200
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(10000)
		h.Push(&item{key: vals[i], idx: -1})
	}
	sort.Ints(vals)
	for i := 0; i < n; i++ {
		got := h.PopMin().key
		if got != vals[i] {
			t.Fatalf("PopMin[%d] = %d, want %d", i, got, vals[i])
		}
	}
}

func TestMinMax_PopMaxSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	h := newHeap()
	n := 200
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(10000)
		h.Push(&item{key: vals[i], idx: -1})
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))
	for i := 0; i < n; i++ {
		got := h.PopMax().key
		if got != vals[i] {
			t.Fatalf("PopMax[%d] = %d, want %d", i, got, vals[i])
		}
	}
}

func TestMinMax_InterleavedPushPop(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := newHeap()
	var live []int

	for step := 0; step < 2000; step++ {
		switch {
		case len(live) == 0 || rng.Intn(3) != 0:
			v := rng.Intn(1000)
			h.Push(&item{key: v, idx: -1})
			live = append(live, v)
		case rng.Intn(2) == 0:
			min := h.PopMin().key
			sort.Ints(live)
			if min != live[0] {
				t.Fatalf("PopMin = %d, want %d (live=%v)", min, live[0], live)
			}
			live = live[1:]
		default:
			max := h.PopMax().key
			sort.Ints(live)
			if max != live[len(live)-1] {
				t.Fatalf("PopMax = %d, want %d (live=%v)", max, live[len(live)-1], live)
			}
			live = live[:len(live)-1]
		}
		if h.Len() != len(live) {
			t.Fatalf("Len() = %d, want %d", h.Len(), len(live))
		}
	}
}

func TestMinMax_Reinit(t *testing.T) {
	h := newHeap()
	items := make([]*item, 30)
	for i := range items {
		items[i] = &item{key: i, idx: -1}
		h.Push(items[i])
	}
	for _, it := range items {
		it.key = -it.key
	}
	h.Reinit()

	min := h.PopMin().key
	for h.Len() > 0 {
		next := h.PopMin().key
		if next < min {
			t.Fatalf("heap property violated after Reinit")
		}
		min = next
	}
}
