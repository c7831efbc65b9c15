package beam_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/testdomain"
	"github.com/katalvlaran/heurisearch/search/beam"
)

func line() testdomain.Line {
	return testdomain.Line{Start: 0, Target: 5, MaxAbs: 20}
}

func TestBeamSearch_FindsAGoal(t *testing.T) {
	res, err := beam.BeamSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("BeamSearch returned error: %v", err)
	}
	if !res.Found || res.Cost != 5 {
		t.Fatalf("got Found=%v Cost=%d, want Found=true Cost=5", res.Found, res.Cost)
	}
}

func TestBeadSearch_FindsAGoal(t *testing.T) {
	res, err := beam.BeadSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("BeadSearch returned error: %v", err)
	}
	if !res.Found || res.Cost != 5 {
		t.Fatalf("got Found=%v Cost=%d, want Found=true Cost=5", res.Found, res.Cost)
	}
}

func TestMonoBeamSearch_FindsAGoal(t *testing.T) {
	res, err := beam.MonoBeamSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("MonoBeamSearch returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestMonoBeadSearch_FindsAGoal(t *testing.T) {
	res, err := beam.MonoBeadSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("MonoBeadSearch returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestMonoFloorSearch_FindsAGoal(t *testing.T) {
	res, err := beam.MonoFloorSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(4), beam.WithTrailingSlots(1))
	if err != nil {
		t.Fatalf("MonoFloorSearch returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestPHC_FindsAGoal(t *testing.T) {
	res, err := beam.PHC[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("PHC returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestPHCD_FindsAGoal(t *testing.T) {
	res, err := beam.PHCD[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("PHCD returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestTriangleBeadSearch_FindsAGoal(t *testing.T) {
	res, err := beam.TriangleBeadSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("TriangleBeadSearch returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestRectangleBeadSearch_FindsAGoal(t *testing.T) {
	res, err := beam.RectangleBeadSearch[int, int, testdomain.Op, int](line(), beam.WithWidth(3), beam.WithRectangleGrowth(1, 1, false))
	if err != nil {
		t.Fatalf("RectangleBeadSearch returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution")
	}
}

func TestMinTest_DrainsAndRecordsBasins(t *testing.T) {
	res, stats, err := beam.MinTest[int, int, testdomain.Op, int](line(), beam.WithWidth(3))
	if err != nil {
		t.Fatalf("MinTest returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a goal to be encountered during the drain")
	}
	if stats.BasinCount < 1 {
		t.Fatalf("expected at least one closed basin, got %+v", stats)
	}
}

func TestBeamSearch_NoSolutionWhenUnreachable(t *testing.T) {
	d := testdomain.Line{Start: 0, Target: 100, MaxAbs: 5}
	if _, err := beam.BeamSearch[int, int, testdomain.Op, int](d, beam.WithWidth(2)); err == nil {
		t.Fatal("expected ErrNoSolution")
	}
}

func TestWithWidth_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-positive width")
		}
	}()
	beam.WithWidth(0)
}
