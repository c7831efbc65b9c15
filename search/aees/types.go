// Package aees implements AEES, the Anytime Explicit-Estimation Search of
// spec §4.3: three synchronised queues (cleanup by f, open by f̂, focal by
// d̂ within a window of open's minimum f̂) with online herror/derror
// correction, an anytime incumbent, and a monotonically tightening
// suboptimality weight.
//
// Grounded on the teacher's dijkstra package for the cleanup queue's
// g/f-ordered relaxation skeleton, generalised to three synchronised
// queues per the AEES design; the error-correction formulas and
// select_node preference order follow spec §4.3 and its imExp-prior
// supplement verbatim, since no file in the corpus demonstrates anytime
// explicit-estimation search.
package aees

import "github.com/katalvlaran/heurisearch/search"

// Options configures an AEES search.
type Options struct {
	// WT0 is the initial suboptimality weight (>= 1). The effective
	// weight only tightens (decreases) from here as better incumbents
	// are found.
	WT0 float64

	// OnIncumbent, if set, is called every time a new incumbent is
	// accepted, for emitting the metrics trailer's "incumbent" stream
	// (spec §6).
	OnIncumbent func(Incumbent)

	Limit search.Limiter
}

// Incumbent describes one improvement of the best-known goal, for the
// metrics trailer's per-improvement row.
type Incumbent struct {
	Seq       int
	Expd      int64
	Gend      int64
	Bound     float64
	Cost      float64
	WallMicro int64
}

// Option is a functional option for Options.
type Option func(*Options)

// WithWT0 sets the initial weight. Panics if wt0 < 1.
func WithWT0(wt0 float64) Option {
	return func(o *Options) {
		if wt0 < 1 {
			panic(ErrWeightBelowOne.Error())
		}
		o.WT0 = wt0
	}
}

// WithIncumbentFunc installs a callback fired on every incumbent
// improvement.
func WithIncumbentFunc(f func(Incumbent)) Option {
	return func(o *Options) { o.OnIncumbent = f }
}

// WithLimit installs a cancellation check.
func WithLimit(limit search.Limiter) Option { return func(o *Options) { o.Limit = limit } }

// DefaultOptions returns wt0 = 1 (AEES degenerates to an A*-like bound
// with no slack) and no incumbent callback.
func DefaultOptions() Options { return Options{WT0: 1} }
