package ucs_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/testdomain"
	"github.com/katalvlaran/heurisearch/search/ucs"
)

func TestUCS_FindsOptimalCost(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 7, MaxAbs: 20}
	res, err := ucs.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
	if res.Cost != 7 {
		t.Fatalf("Cost = %d, want 7", res.Cost)
	}
	if len(res.Ops) != 7 {
		t.Fatalf("len(Ops) = %d, want 7", len(res.Ops))
	}
	for _, op := range res.Ops {
		if op != testdomain.Inc {
			t.Fatalf("expected every op to be Inc for a monotone target, got %v", op)
		}
	}
}

func TestUCS_NegativeTarget(t *testing.T) {
	d := testdomain.Line{Start: 5, Target: -3, MaxAbs: 20}
	res, err := ucs.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if res.Cost != 8 {
		t.Fatalf("Cost = %d, want 8", res.Cost)
	}
}

func TestUCS_NoSolutionWhenUnreachable(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 100, MaxAbs: 5}
	res, err := ucs.Search[int, int, testdomain.Op, int](d)
	if err == nil {
		t.Fatal("expected ErrNoSolution")
	}
	if res.Found {
		t.Fatal("Found should be false")
	}
}

func TestUCS_AlreadyAtGoal(t *testing.T) {
	d := testdomain.Line{Start: 4, Target: 4, MaxAbs: 10}
	res, err := ucs.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if res.Cost != 0 || len(res.Ops) != 0 {
		t.Fatalf("expected zero-length solution, got cost=%d ops=%v", res.Cost, res.Ops)
	}
}

func TestUCS_StartAndTargetOnOppositeSides(t *testing.T) {
	// Start and target lie on opposite sides of zero; the cost is the
	// distance between them.
	d := testdomain.Line{Start: -3, Target: 3, MaxAbs: 50}
	res, err := ucs.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if res.Cost != 6 {
		t.Fatalf("Cost = %d, want 6", res.Cost)
	}
}
