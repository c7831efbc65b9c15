package bugsy_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/testdomain"
	"github.com/katalvlaran/heurisearch/search/bugsy"
)

func TestBugsy_FindsAGoal(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	res, err := bugsy.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
	if res.Cost != 5 {
		t.Fatalf("Cost = %d, want 5 (wf=1, wt=0 default reduces to cost-greedy here)", res.Cost)
	}
}

func TestBugsy_TimeWeightStillFindsGoal(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	res, err := bugsy.Search[int, int, testdomain.Op, int](d, bugsy.WithWeights(1, 0.5), bugsy.WithPerTick(2))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution even with a non-zero time weight")
	}
}

func TestBugsy_NoSolutionWhenUnreachable(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 100, MaxAbs: 5}
	if _, err := bugsy.Search[int, int, testdomain.Op, int](d); err == nil {
		t.Fatal("expected ErrNoSolution")
	}
}

func TestWithWeights_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a negative weight")
		}
	}()
	bugsy.WithWeights(-1, 0)
}

func TestWithPerTick_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-positive PerTick")
		}
	}()
	bugsy.WithPerTick(0)
}
