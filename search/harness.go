package search

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/heurisearch/domain"
)

// Limiter reports whether the search must abort now (spec §5
// "Cancellation"): evaluated at the top of every expansion, and inside
// every beam variant's inner per-layer loop. A nil Limiter never fires.
type Limiter func() bool

// Harness is the counting/timing/path-reconstruction substrate every
// engine embeds (spec §4.3 "Common harness"). It is not itself an engine:
// it has no notion of open lists or duplicate policy, only the bookkeeping
// every engine shares.
type Harness struct {
	Expd, Gend, Dups, Reopnd int64

	WallStart  time.Time
	WallFinish time.Time

	Limit Limiter
	Log   zerolog.Logger
}

// NewHarness returns a Harness with counters zeroed and Log set to a
// disabled logger (zerolog.Nop()). Every engine builds its own Harness
// this way and none replaces Log, so engines write no log output.
func NewHarness(limit Limiter) *Harness {
	return &Harness{Limit: limit, Log: zerolog.Nop()}
}

// StartClock records the wall-clock start time; every engine calls this
// once at the top of Search.
func (h *Harness) StartClock() { h.WallStart = time.Now() }

// StopClock records the wall-clock finish time; every engine calls this
// once before returning from Search, success or failure.
func (h *Harness) StopClock() { h.WallFinish = time.Now() }

// LimitHit evaluates the Limiter, returning false if none was configured.
func (h *Harness) LimitHit() bool { return h.Limit != nil && h.Limit() }

// Reset zeroes every counter and clears the recorded wall-clock times,
// matching spec §4.3 "Every engine exposes search(d, s0) and reset()".
func (h *Harness) Reset() {
	h.Expd, h.Gend, h.Dups, h.Reopnd = 0, 0, 0, 0
	h.WallStart, h.WallFinish = time.Time{}, time.Time{}
}

// ErrNoSolution is returned when a search exhausts its frontier (or hits
// its limit with no incumbent) without finding a goal. Spec §7(d): this is
// resource exhaustion, not an error to propagate as fatal — engines return
// it so the driver can still emit the metrics trailer, per the taxonomy.
var ErrNoSolution = fmt.Errorf("search: no solution found")

// ReconstructPath walks parent links from goal back to the root, then
// replays the collected operator sequence forward from a freshly minted
// initial state to recompute State values and verify the total cost (spec
// §2 "reconstructs solution paths ... verifies its cost by re-applying on
// a fresh initial state").
//
// Per the Edge discipline in domain.Edge: this walk never releases an
// Edge, because each successive Apply must operate on the state the
// previous Apply produced, not on the original state Apply was called
// with. Edge.Release is only for the transient candidates generated and
// discarded inside expand().
func ReconstructPath[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], goal *Node[P, O, C]) ([]S, []O, C, error) {
	// Walk parent links, collecting operators from goal back to root.
	var ops []O
	for n := goal; n.Parent != nil; n = n.Parent {
		ops = append(ops, n.Op)
	}
	// Reverse into root-to-goal order.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	state := d.InitialState()
	path := make([]S, 0, len(ops)+1)
	path = append(path, state)

	var zero C
	cost := zero
	for _, op := range ops {
		edge, err := d.Apply(state, op)
		if err != nil {
			return nil, nil, zero, fmt.Errorf("search: replay operator failed: %w", err)
		}
		cost += edge.Cost
		state = edge.State
		path = append(path, state)
	}

	if !d.IsGoal(state) {
		return nil, nil, zero, fmt.Errorf("search: reconstructed path does not end in a goal state")
	}

	verifyCost := d.PathCost(path, ops)
	if verifyCost != cost {
		return nil, nil, zero, fmt.Errorf("search: path cost mismatch: replay=%v domain.PathCost=%v", cost, verifyCost)
	}

	return path, ops, cost, nil
}
