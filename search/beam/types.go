// Package beam implements the beam/bead family of width-bounded,
// layer-by-layer frontier searches (spec §4.3 "Beam family"): plain beam,
// bead, the monotonic variants (mono-beam, mono-bead, mono-floor),
// parallel hill climbing, the ring-based triangle/rectangle bead
// variants, and the min-basin instrumentation variant. Every variant
// shares one struct: select up to `width` best nodes from a frontier,
// expand them, collect successors into the next frontier, repeat. They
// differ only in frontier order, duplicate policy, and termination rule,
// restated per algorithm rather than generalised (spec §9 "Open
// questions").
//
// Grounded on the teacher's bfs package for the layer-by-layer frontier
// loop (bfs.Run's level-by-level queue draining is the same shape as
// "select W nodes from this layer, expand, collect into next layer")
// and dfs for the parent-link path-reconstruction walk every variant
// delegates to search.ReconstructPath.
package beam

import "github.com/katalvlaran/heurisearch/search"

// Options configures every beam-family variant. Not every field applies
// to every variant; the comment on a variant-specific field names the
// variant that reads it.
type Options struct {
	// Width is the beam width, required > 0.
	Width int

	// DropDups, if set, never reopens/replaces a closed duplicate: the
	// new candidate is simply discarded.
	DropDups bool

	// Dump and Sink record the `-dump` request and its sink. No variant in
	// this package reads them, so no beam diagnostics are written.
	Dump bool
	Sink DumpSink

	// N is MonoFloorSearch's trailing-refill-slot count (`-n N`).
	N int

	// BaseStep, HeightStep, Exponential configure RectangleBeadSearch's
	// per-layer expansion-count growth (`-dB`, `-dH`/`-aspect`, `-expo`).
	BaseStep    float64
	HeightStep  float64
	Exponential bool

	Limit search.Limiter
}

// DumpSink receives beam diagnostics when Options.Dump is set.
type DumpSink interface {
	Dump(format string, args ...any)
}

// Option is a functional option for Options.
type Option func(*Options)

// WithWidth sets the beam width. Panics if w <= 0.
func WithWidth(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadWidth.Error())
		}
		o.Width = w
	}
}

// WithDropDups sets Options.DropDups.
func WithDropDups() Option { return func(o *Options) { o.DropDups = true } }

// WithDump enables beam diagnostics, optionally through a custom sink.
func WithDump(sink DumpSink) Option {
	return func(o *Options) { o.Dump = true; o.Sink = sink }
}

// WithTrailingSlots sets MonoFloorSearch's `-n` trailing-refill count.
// Panics if n < 0.
func WithTrailingSlots(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadN.Error())
		}
		o.N = n
	}
}

// WithRectangleGrowth sets RectangleBeadSearch's per-layer growth knobs.
func WithRectangleGrowth(base, height float64, exponential bool) Option {
	return func(o *Options) {
		o.BaseStep, o.HeightStep, o.Exponential = base, height, exponential
	}
}

// WithLimit installs a cancellation check.
func WithLimit(limit search.Limiter) Option { return func(o *Options) { o.Limit = limit } }

// DefaultOptions returns width=1 (the caller must always override this
// via WithWidth; width is a required flag per spec §6), no dup-dropping,
// no dump, mono-floor's trailing count at 1, and linear rectangle growth.
func DefaultOptions() Options {
	return Options{Width: 1, N: 1, BaseStep: 1, HeightStep: 1}
}
