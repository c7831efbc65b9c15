package pool_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/pool"
)

type record struct {
	g, h int64
}

func TestPool_ConstructZeroed(t *testing.T) {
	p := pool.New[record](2)
	r := p.Construct()
	r.g, r.h = 3, 4
	p.Destruct(r)

	r2 := p.Construct()
	if r2.g != 0 || r2.h != 0 {
		t.Fatalf("expected zeroed record from free-list, got %+v", r2)
	}
}

func TestPool_LiveCountAcrossSlabBoundary(t *testing.T) {
	const slab = 2
	p := pool.New[record](slab)

	var recs []*record
	for i := 0; i < slab*3+1; i++ {
		recs = append(recs, p.Construct())
	}
	if p.Live() != len(recs) {
		t.Fatalf("Live() = %d, want %d", p.Live(), len(recs))
	}

	for _, r := range recs {
		p.Destruct(r)
	}
	if p.Live() != 0 {
		t.Fatalf("Live() = %d after destructing all, want 0", p.Live())
	}
}

func TestPool_Reset(t *testing.T) {
	p := pool.New[record](4)
	for i := 0; i < 10; i++ {
		p.Construct()
	}
	p.Reset()
	if p.Live() != 0 {
		t.Fatalf("Live() = %d after Reset, want 0", p.Live())
	}
	// Arena should be usable again post-reset.
	r := p.Construct()
	if r == nil {
		t.Fatal("Construct after Reset returned nil")
	}
}

func TestPool_RecordSize(t *testing.T) {
	p := pool.New[record](4)
	if got := p.RecordSize(); got != 16 {
		t.Fatalf("RecordSize() = %d, want 16", got)
	}
}
