// Package greedy implements pure greedy best-first search: a single open
// list ordered by h ascending, tie-break larger g, duplicates discarded,
// first goal popped returned (spec §4.3 "Greedy / Speedy"). No optimality
// claim is made.
//
// Grounded on the same single-priority loop as search/ucs (itself grounded
// on the teacher's dijkstra package), reusing internal/bestfirst for the
// shared shape and differing only in priority key.
package greedy

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/bestfirst"
	"github.com/katalvlaran/heurisearch/search"
)

// Options configures a Greedy search.
type Options struct {
	DropDups bool
	Limit    search.Limiter
}

// Option is a functional option for Options.
type Option func(*Options)

// WithDropDups is accepted for CLI-flag symmetry with the other engines;
// Greedy always discards duplicates regardless (spec: "Duplicate found →
// discard the new kid"), so this is a no-op kept for flag parity.
func WithDropDups() Option { return func(o *Options) { o.DropDups = true } }

// WithLimit installs a cancellation check.
func WithLimit(limit search.Limiter) Option { return func(o *Options) { o.Limit = limit } }

// DefaultOptions returns the zero-value configuration.
func DefaultOptions() Options { return Options{} }

// Search runs greedy best-first search ordered by h.
func Search[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return bestfirst.Search[S, P, O, C](d, func(n *search.Node[P, O, C]) float64 {
		return float64(n.H)
	}, bestfirst.Options{DropDups: cfg.DropDups, Limit: cfg.Limit})
}
