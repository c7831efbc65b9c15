package speedy_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/testdomain"
	"github.com/katalvlaran/heurisearch/search/speedy"
)

func TestSpeedy_FindsAGoal(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	res, err := speedy.Search[int, int, testdomain.Op, int](d)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
	if res.Cost != 5 {
		t.Fatalf("Cost = %d, want 5", res.Cost)
	}
}
