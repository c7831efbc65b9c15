// Package ucs implements uniform-cost search: a single open list ordered
// by g, terminating on the first goal popped (spec §4.3 "UCS"). Optimal
// for domains with non-negative edge costs; makes no use of h.
//
// Grounded on the teacher's dijkstra package — same single-priority-by-
// distance loop, the same "lazy reopen on strictly smaller g" duplicate
// rule — generalised from core.Graph's fixed vertex/edge model to the
// abstract domain.Domain contract.
package ucs

import "github.com/katalvlaran/heurisearch/search"

// Options configures a UCS search.
type Options struct {
	// DropDups, if set, never reopens a popped node on a cheaper g;
	// the cheaper kid is simply discarded (spec's `-dropdups` flag).
	DropDups bool
	Limit    search.Limiter
}

// Option is a functional option for Options.
type Option func(*Options)

// WithDropDups sets Options.DropDups.
func WithDropDups() Option { return func(o *Options) { o.DropDups = true } }

// WithLimit installs a cancellation check evaluated at the top of every
// expansion (spec §5).
func WithLimit(limit search.Limiter) Option {
	return func(o *Options) { o.Limit = limit }
}

// DefaultOptions returns the zero-value configuration: reopening allowed,
// no limit.
func DefaultOptions() Options { return Options{} }
