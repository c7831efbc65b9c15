package blocksworld_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/domain/blocksworld"
)

func TestHeuristic_ZeroOnlyAtGoal(t *testing.T) {
	b := blocksworld.Blocksworld{
		N:    3,
		Init: []int{0, 1, 2},
		Goal: []int{2, 3, 0},
	}
	start := b.InitialState()
	if b.IsGoal(start) {
		t.Fatal("expected start state not to already be the goal")
	}
	goalState := blocksworld.State{Below: append([]int(nil), b.Goal...)}
	if !b.IsGoal(goalState) {
		t.Fatal("expected the goal arrangement to report IsGoal")
	}
}

func TestOperators_OnlyClearBlocksMove(t *testing.T) {
	b := blocksworld.Blocksworld{N: 3, Init: []int{0, 1, 2}, Goal: []int{2, 3, 0}}
	s := b.InitialState()
	ops := b.Operators(s)
	for i := 0; i < ops.Size(); i++ {
		if ops.At(i).From == 1 || ops.At(i).From == 2 {
			t.Fatalf("block buried under another block should not be a legal pickup: %+v", ops.At(i))
		}
	}
}

func TestApplyThenReverse_RestoresBelow(t *testing.T) {
	b := blocksworld.Blocksworld{N: 3, Init: []int{0, 1, 2}, Goal: []int{2, 3, 0}}
	s := b.InitialState()
	edge, err := b.Apply(s, blocksworld.Op{From: 3, To: 0})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	back, err := b.Apply(edge.State, edge.RevOp)
	if err != nil {
		t.Fatalf("Apply reverse: %v", err)
	}
	for i := range s.Below {
		if back.State.Below[i] != s.Below[i] {
			t.Fatalf("reverse move mismatch at %d: got %d, want %d", i, back.State.Below[i], s.Below[i])
		}
	}
}

func TestPackUnpack_RoundTrips(t *testing.T) {
	b := blocksworld.Blocksworld{N: 3, Init: []int{0, 1, 2}, Goal: []int{2, 3, 0}}
	s := b.InitialState()
	var packed string
	b.Pack(&packed, s)
	back := b.Unpack(packed)
	for i := range s.Below {
		if back.Below[i] != s.Below[i] {
			t.Fatalf("round trip mismatch at %d", i)
		}
	}
}
