package aees_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/testdomain"
	"github.com/katalvlaran/heurisearch/search/aees"
)

func TestAees_FindsAGoal(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	res, err := aees.Search[int, int, testdomain.Op, int](d)
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

func TestAees_WiderWeightStillFindsGoal(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	res, err := aees.Search[int, int, testdomain.Op, int](d, aees.WithWT0(3))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
	// Bounded suboptimality: cost must never exceed wt0 * the true
	// optimal cost (spec's testable property 6).
	if float64(res.Cost) > 3*5 {
		t.Fatalf("Cost = %d exceeds the wt0=3 bound of 15", res.Cost)
	}
}

func TestAees_NoSolutionWhenUnreachable(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 100, MaxAbs: 5}
	if _, err := aees.Search[int, int, testdomain.Op, int](d); err == nil {
		t.Fatal("expected ErrNoSolution")
	}
}

func TestAees_IncumbentCallbackFires(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
	var seen []aees.Incumbent
	res, err := aees.Search[int, int, testdomain.Op, int](d, aees.WithIncumbentFunc(func(inc aees.Incumbent) {
		seen = append(seen, inc)
	}))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one incumbent callback")
	}
}

func TestWithWT0_PanicsBelowOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for wt0 < 1")
		}
	}()
	aees.WithWT0(0.5)
}
