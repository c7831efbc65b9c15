package pancake_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/domain/pancake"
)

func withCakes(cakes []int) pancake.State {
	return pancake.State{Cakes: append([]int(nil), cakes...)}
}

func TestUnitCost_FlipOneFixesIt(t *testing.T) {
	p := pancake.Pancake{N: 5, Cost: pancake.Unit}
	s := withCakes([]int{4, 3, 2, 1, 0})

	if p.IsGoal(s) {
		t.Fatal("expected non-goal start state")
	}

	edge, err := p.Apply(s, 4)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !p.IsGoal(edge.State) {
		t.Fatalf("expected goal after flipping 4, got %v", edge.State.Cakes)
	}
	if edge.Cost != 1 {
		t.Fatalf("unit cost flip = %v, want 1", edge.Cost)
	}
}

func TestHeavyCost_MatchesWorstCaseExample(t *testing.T) {
	p := pancake.Pancake{N: 5, Cost: pancake.Heavy}
	s := withCakes([]int{4, 3, 2, 1, 0})

	edge, err := p.Apply(s, 4)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if edge.Cost != 5 {
		t.Fatalf("heavy cost flip(4) = %v, want 5", edge.Cost)
	}
}

func TestOperators_SizeIsNMinusOne(t *testing.T) {
	p := pancake.Pancake{N: 5, Cost: pancake.Unit}
	ops := p.Operators(withCakes([]int{0, 1, 2, 3, 4}))
	if ops.Size() != 4 {
		t.Fatalf("operator count = %d, want 4", ops.Size())
	}
}

func TestPackUnpack_RoundTrips(t *testing.T) {
	p := pancake.Pancake{N: 5, Cost: pancake.Unit}
	s := withCakes([]int{2, 0, 4, 1, 3})
	var packed string
	p.Pack(&packed, s)
	back := p.Unpack(packed)
	if !p.Equal(packed, packed) {
		t.Fatal("expected Equal to be reflexive")
	}
	for i := range s.Cakes {
		if back.Cakes[i] != s.Cakes[i] {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, back.Cakes[i], s.Cakes[i])
		}
	}
}
