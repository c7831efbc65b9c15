// Package bugsy implements BUGSY, the time-aware utility search of spec
// §4.3: a single open list ordered by utility u = -(wf*f + wt*t), where t
// estimates wall-clock time to a goal from the node's d and a running
// mean timeper (seconds per expansion). timeper is re-estimated by a
// three-state cycle (WaitTick, ExpandSome, WaitExpand) that brackets a
// batch of expansions between two wall-clock tick boundaries.
//
// Grounded on the teacher's dijkstra package for the open-list/duplicate
// skeleton (BUGSY's duplicate rule — "only improve on strictly smaller g"
// — is dijkstra's relaxation rule verbatim), with the utility estimator
// itself original to this package since no file in the corpus demonstrates
// self-timing adaptive search; spec §4.3 fully specifies its three states.
package bugsy

import "github.com/katalvlaran/heurisearch/search"

// Options configures a BUGSY search.
type Options struct {
	// WF, WT weight the cost and time terms of the utility function.
	// Both must be >= 0.
	WF, WT float64

	// PerTick is the initial number of expansions counted per
	// timing-estimation tick, before the first real estimate is
	// available. Grows by 9/5 after each estimate (spec §4.3).
	PerTick int

	Limit search.Limiter
}

// Option is a functional option for Options.
type Option func(*Options)

// WithWeights sets the utility function's cost and time weights. Panics
// if either is negative (spec §6: "-wf F / -wt F ... (>=0)").
func WithWeights(wf, wt float64) Option {
	return func(o *Options) {
		if wf < 0 || wt < 0 {
			panic(ErrNegativeWeight.Error())
		}
		o.WF, o.WT = wf, wt
	}
}

// WithPerTick overrides the initial expansions-per-tick count.
func WithPerTick(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadPerTick.Error())
		}
		o.PerTick = n
	}
}

// WithLimit installs a cancellation check.
func WithLimit(limit search.Limiter) Option { return func(o *Options) { o.Limit = limit } }

// DefaultOptions returns wf=1, wt=0 (pure cost-greedy fallback until a
// caller opts into time-awareness) and an initial PerTick of 16.
func DefaultOptions() Options {
	return Options{WF: 1, WT: 0, PerTick: 16}
}
