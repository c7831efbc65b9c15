package greedy_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/testdomain"
	"github.com/katalvlaran/heurisearch/search/greedy"
)

func TestGreedy_FindsAGoal(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	res, err := greedy.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
	if res.Cost != 5 {
		t.Fatalf("Cost = %d, want 5 (h is exact on this domain, so greedy is optimal here)", res.Cost)
	}
}

func TestGreedy_NoSolutionWhenUnreachable(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 100, MaxAbs: 5}
	if _, err := greedy.Search[int, int, testdomain.Op, int](d); err == nil {
		t.Fatal("expected ErrNoSolution")
	}
}
