// Package synthtree implements the synthetic-tree domain (spec §2, §9
// example table): an infinite, seeded pseudo-random tree used to study
// search behavior under a heuristic with a controllable error bound
// rather than a real combinatorial puzzle. Grounded on
// original_source/synth_tree/synth_tree.hpp: a state's identity is a PRNG
// seed; its BF children are the next BF draws from a PRNG re-seeded with
// that state's seed, and each child's own edge cost, remaining
// admissible-goal-distance (AGD), and noisy heuristic estimate are drawn
// from a PRNG re-seeded with the child's seed, in the same draw order the
// source uses (cost, then a signed AGD delta, then a uniform error
// sample) so a given seed always reaches the same state.
//
// original_source's dumpstate always fatals; spec.md §9 directs that its
// "stub variant" be treated as unimplemented rather than a contract. This
// port implements DumpState as a best-effort diagnostic line instead,
// since a Writer-based dump here (unlike the original's hand-rolled
// fatal() exit) has no reason to abort the process — Non-goals never
// exclude diagnostics, only the stub's missing real functionality, and
// there is none to be missing here.
package synthtree

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/heurisearch/domain"
)

const (
	// BF is the branching factor: every state has exactly this many
	// children, one per draw from its seed's PRNG stream.
	BF = 25
	// MaxCost bounds a single edge's cost.
	MaxCost = 10
)

// Op is a child's seed, doubling as the operator identifier that leads to
// it (original_source's `s.seed = op` makes the two the same value).
type Op int64

// Nop is the sentinel "no operator" value.
const Nop Op = -1

// SynthTree is a synthetic-tree instance: a root seed, an initial
// admissible-goal-distance budget, and a maximum heuristic relative error.
type SynthTree struct {
	Seed   int64
	AGD    int
	MaxErr float64
}

// State is a position in the tree: its own seed, its remaining AGD
// budget, and the last heuristic/distance estimate drawn for it.
type State struct {
	Seed   int64
	AGD    int
	H, D   int
}

// err returns the relative heuristic error implied by this state's last
// draw, used as the "previous error" input to the next one.
func (s State) err() float64 {
	if s.AGD <= 0 {
		return 0
	}
	return (float64(s.AGD) - float64(s.H)) / float64(s.AGD)
}

func (t SynthTree) InitialState() State {
	return State{Seed: t.Seed, AGD: t.AGD, H: t.AGD, D: ceilDiv(t.AGD, MaxCost)}
}

func (t SynthTree) H(s State) int { return s.H }

func (t SynthTree) D(s State) float64 { return float64(s.D) }

func (t SynthTree) IsGoal(s State) bool { return s.AGD == 0 }

type opsView struct{ seeds [BF]Op }

func (o opsView) Size() int   { return BF }
func (o opsView) At(i int) Op { return o.seeds[i] }

func (t SynthTree) Operators(s State) domain.Operators[Op] {
	r := rand.New(rand.NewSource(s.Seed))
	var view opsView
	for i := 0; i < BF; i++ {
		view.seeds[i] = Op(r.Int63())
	}
	return view
}

func (t SynthTree) Apply(s State, o Op) (*domain.Edge[State, Op, int], error) {
	r := rand.New(rand.NewSource(int64(o)))
	cost := r.Intn(MaxCost + 1)

	n := r.Intn(2*cost+1) - cost // integer in [-cost, cost]
	agd := s.AGD - n
	if agd < 0 {
		agd = 0
	}

	perr := s.err()
	pih := float64(agd) - perr*float64(agd)
	sampleErr := r.Float64() * t.MaxErr

	var h int
	if sampleErr > perr {
		h = int(math.Max(pih-1, 0))
		upper := float64(agd) - t.MaxErr*float64(agd)
		if float64(h) > upper {
			h = int(upper)
		}
	} else {
		h = int(math.Min(pih+1, float64(agd)))
	}
	if h < 0 {
		h = 0
	}

	next := State{Seed: int64(o), AGD: agd, H: h, D: ceilDiv(h, MaxCost)}
	return domain.NewEdge[State, Op, int](next, cost, Op(s.Seed), cost, func() {}), nil
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	d := a / b
	if a%b != 0 {
		d++
	}
	return d
}

func (t SynthTree) Nop() Op { return Nop }

func (t SynthTree) Pack(dst *State, src State) { *dst = src }

func (t SynthTree) Unpack(packed State) State { return packed }

func (t SynthTree) Equal(a, b State) bool {
	return a.Seed == b.Seed && a.AGD == b.AGD && a.H == b.H
}

func (t SynthTree) Hash(s State) uint64 { return uint64(s.Seed) }

func (t SynthTree) DumpState(out domain.Writer, s State) {
	fmt.Fprintf(out, "seed=%d agd=%d h=%d\n", s.Seed, s.AGD, s.H)
}

func (t SynthTree) PathCost(path []State, ops []Op) int {
	total := 0
	for _, o := range ops {
		r := rand.New(rand.NewSource(int64(o)))
		total += r.Intn(MaxCost + 1)
	}
	return total
}

var _ domain.Domain[State, State, Op, int] = SynthTree{}
