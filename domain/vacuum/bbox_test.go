package vacuum_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/domain/vacuum"
)

func TestBBoxVacuum_GoalWhenNoDirtAndNoBack(t *testing.T) {
	v := vacuum.BBoxVacuum{Width: 3, Height: 3, InitX: 1, InitY: 1, InitDirty: make([]bool, 9)}
	s := v.InitialState()
	if !v.IsGoal(s) {
		t.Fatal("expected an all-clean room with Back=false to be a goal wherever the agent stands")
	}
}

func TestBBoxVacuum_BackRequiresReturningHome(t *testing.T) {
	v := vacuum.BBoxVacuum{Width: 3, Height: 3, InitX: 0, InitY: 0, InitDirty: make([]bool, 9), Back: true}
	moved := vacuum.BBoxState{X: 2, Y: 2, Weight: 1, Dirty: make([]bool, 9)}
	if v.IsGoal(moved) {
		t.Fatal("expected Back=true to reject a goal state away from the start cell")
	}
	home := vacuum.BBoxState{X: 0, Y: 0, Weight: 1, Dirty: make([]bool, 9)}
	if !v.IsGoal(home) {
		t.Fatal("expected Back=true to accept the goal once the agent is back at start")
	}
}

func TestBBoxVacuum_WeightGrowsAfterEachClean(t *testing.T) {
	dirty := make([]bool, 4)
	dirty[0] = true
	v := vacuum.BBoxVacuum{Width: 2, Height: 2, InitX: 0, InitY: 0, InitDirty: dirty, CostMod: 2}
	s := v.InitialState()
	edge, err := v.Apply(s, vacuum.BBSuck)
	if err != nil {
		t.Fatalf("Apply(Suck): %v", err)
	}
	if edge.State.Weight != 3 {
		t.Fatalf("weight after one clean = %d, want 3", edge.State.Weight)
	}
}

func TestBBoxVacuum_SuckOnCleanCellErrors(t *testing.T) {
	v := vacuum.BBoxVacuum{Width: 2, Height: 2, InitX: 0, InitY: 0, InitDirty: make([]bool, 4)}
	s := v.InitialState()
	if _, err := v.Apply(s, vacuum.BBSuck); err == nil {
		t.Fatal("expected an error sucking an already-clean cell")
	}
}
