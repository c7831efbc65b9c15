package tiles_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/domain/tiles"
)

func TestGoalState_HasZeroHeuristic(t *testing.T) {
	puz := tiles.Tiles{Rows: 2, Cols: 2, Init: []int{0, 1, 2, 3}}
	s := puz.InitialState()
	if !puz.IsGoal(s) {
		t.Fatal("identity layout should be the goal")
	}
	if puz.H(s) != 0 {
		t.Fatalf("H(goal) = %d, want 0", puz.H(s))
	}
}

func TestOneMoveFromGoal_HeuristicIsOne(t *testing.T) {
	puz := tiles.Tiles{Rows: 2, Cols: 2, Init: []int{1, 0, 2, 3}}
	s := puz.InitialState()
	if puz.H(s) != 1 {
		t.Fatalf("H = %d, want 1", puz.H(s))
	}
	ops := puz.Operators(s)
	found := false
	for i := 0; i < ops.Size(); i++ {
		edge, err := puz.Apply(s, ops.At(i))
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if puz.IsGoal(edge.State) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected one neighboring move to reach the goal")
	}
}

func TestApply_RejectsOutOfRangeOperator(t *testing.T) {
	puz := tiles.Tiles{Rows: 2, Cols: 2, Init: []int{0, 1, 2, 3}}
	s := puz.InitialState()
	if _, err := puz.Apply(s, 99); err == nil {
		t.Fatal("expected an error for an out-of-range operator")
	}
}
