package vacuum_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/domain/vacuum"
	"github.com/katalvlaran/heurisearch/gridgraph"
)

func newRoom(t *testing.T, w, h int) *gridgraph.GridGraph {
	t.Helper()
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = 1
		}
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph: %v", err)
	}
	return gg
}

func TestMSTVacuum_GoalWhenNoDirt(t *testing.T) {
	v := vacuum.MSTVacuum{Grid: newRoom(t, 3, 3), InitX: 0, InitY: 0, InitDirty: make([]bool, 9)}
	s := v.InitialState()
	if !v.IsGoal(s) {
		t.Fatal("expected an all-clean room to be a goal")
	}
	if v.H(s) != 0 {
		t.Fatalf("H(goal) = %d, want 0", v.H(s))
	}
}

func TestMSTVacuum_SuckClearsCurrentCell(t *testing.T) {
	dirty := make([]bool, 9)
	dirty[0] = true
	v := vacuum.MSTVacuum{Grid: newRoom(t, 3, 3), InitX: 0, InitY: 0, InitDirty: dirty}
	s := v.InitialState()
	if v.IsGoal(s) {
		t.Fatal("expected dirt to make the room a non-goal")
	}
	edge, err := v.Apply(s, vacuum.Suck)
	if err != nil {
		t.Fatalf("Apply(Suck): %v", err)
	}
	if !v.IsGoal(edge.State) {
		t.Fatal("expected sucking the only dirty cell to reach the goal")
	}
}

func TestMSTVacuum_HeuristicCountsRemainingDirt(t *testing.T) {
	dirty := make([]bool, 9)
	dirty[8] = true
	v := vacuum.MSTVacuum{Grid: newRoom(t, 3, 3), InitX: 0, InitY: 0, InitDirty: dirty}
	s := v.InitialState()
	if h := v.H(s); h <= 0 {
		t.Fatalf("H = %d, want positive distance to the one dirty cell", h)
	}
}

func TestMSTVacuum_MoveBlockedOutsideGrid(t *testing.T) {
	v := vacuum.MSTVacuum{Grid: newRoom(t, 1, 1), InitX: 0, InitY: 0, InitDirty: make([]bool, 1)}
	s := v.InitialState()
	ops := v.Operators(s)
	if ops.Size() != 0 {
		t.Fatalf("a 1x1 clean room should offer no legal operators, got %d", ops.Size())
	}
}
