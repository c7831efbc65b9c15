package synthtree_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/domain/synthtree"
)

func TestInitialState_StartsAtFullBudget(t *testing.T) {
	tr := synthtree.SynthTree{Seed: 42, AGD: 10, MaxErr: 0}
	s := tr.InitialState()
	if tr.IsGoal(s) {
		t.Fatal("a fresh instance with AGD > 0 should not be a goal")
	}
	if tr.H(s) != 10 {
		t.Fatalf("H(initial) = %d, want 10", tr.H(s))
	}
}

func TestOperators_AreDeterministicForASeed(t *testing.T) {
	tr := synthtree.SynthTree{Seed: 42, AGD: 10, MaxErr: 0}
	s := tr.InitialState()
	a := tr.Operators(s)
	b := tr.Operators(s)
	if a.Size() != synthtree.BF || b.Size() != synthtree.BF {
		t.Fatalf("expected %d operators, got %d and %d", synthtree.BF, a.Size(), b.Size())
	}
	for i := 0; i < a.Size(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("operator %d differs across calls for the same state: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}

func TestApply_EventuallyReachesZeroBudget(t *testing.T) {
	tr := synthtree.SynthTree{Seed: 7, AGD: 5, MaxErr: 0}
	s := tr.InitialState()
	for i := 0; i < 1000 && !tr.IsGoal(s); i++ {
		ops := tr.Operators(s)
		edge, err := tr.Apply(s, ops.At(0))
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		s = edge.State
	}
	if !tr.IsGoal(s) {
		t.Fatal("expected the AGD budget to reach zero within 1000 steps")
	}
}
