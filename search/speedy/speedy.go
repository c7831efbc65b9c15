// Package speedy implements speedy search: identical to Greedy but ordered
// by the distance estimate d instead of h (spec §4.3 "Greedy / Speedy"),
// favoring the fewest remaining edges over the lowest remaining cost.
package speedy

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/bestfirst"
	"github.com/katalvlaran/heurisearch/search"
)

// Options configures a Speedy search.
type Options struct {
	DropDups bool
	Limit    search.Limiter
}

// Option is a functional option for Options.
type Option func(*Options)

// WithDropDups is kept for flag parity with the other engines; Speedy
// always discards duplicates.
func WithDropDups() Option { return func(o *Options) { o.DropDups = true } }

// WithLimit installs a cancellation check.
func WithLimit(limit search.Limiter) Option { return func(o *Options) { o.Limit = limit } }

// DefaultOptions returns the zero-value configuration.
func DefaultOptions() Options { return Options{} }

// Search runs speedy search ordered by d.
func Search[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return bestfirst.Search[S, P, O, C](d, func(n *search.Node[P, O, C]) float64 {
		return n.D
	}, bestfirst.Options{DropDups: cfg.DropDups, Limit: cfg.Limit})
}
