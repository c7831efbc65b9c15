// Command search is the driver spec §6 describes: it reads a domain's own
// flags and its problem instance, then a subcommand naming one of the
// fifteen algorithms in this module, runs it, and prints a metrics
// trailer. Grounded on the teacher's convention (see dijkstra's package
// doc) of keeping the command-line surface a thin adapter over library
// packages that do not themselves know about flags or stdin — every
// domain and search package in this module is fully usable without this
// command.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/metrics"
	"github.com/katalvlaran/heurisearch/search"
	"github.com/katalvlaran/heurisearch/search/aees"
	"github.com/katalvlaran/heurisearch/search/beam"
	"github.com/katalvlaran/heurisearch/search/bugsy"
	"github.com/katalvlaran/heurisearch/search/greedy"
	"github.com/katalvlaran/heurisearch/search/speedy"
	"github.com/katalvlaran/heurisearch/search/ucs"
)

// algoFlags is the union of every per-algorithm flag spec §6's table
// names, parsed once the subcommand is known. parseAlgoFlags registers
// the whole union on every algorithm's FlagSet, so `-h` lists all of
// these flags whichever algorithm was named.
type algoFlags struct {
	wt0       float64
	dropDups  bool
	width     int
	n         int
	dump      bool
	aspect    float64
	baseStep  float64
	expo      bool
	wf, wt    float64
	timeLimit time.Duration
}

func parseAlgoFlags(name string, args []string) (algoFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var a algoFlags
	fs.Float64Var(&a.wt0, "wt0", 1, "AEES initial weight")
	fs.BoolVar(&a.dropDups, "dropdups", false, "on duplicate, discard rather than reopen")
	fs.IntVar(&a.width, "width", 1, "beam width")
	fs.IntVar(&a.n, "n", 1, "MonoFloor trailing-slot count")
	fs.BoolVar(&a.dump, "dump", false, "beam diagnostics to stderr")
	fs.Float64Var(&a.aspect, "aspect", 1, "rectangle-bead height step")
	fs.Float64Var(&a.aspect, "dH", 1, "rectangle-bead height step (alias of -aspect)")
	fs.Float64Var(&a.baseStep, "dB", 1, "rectangle-bead base step")
	fs.BoolVar(&a.expo, "expo", false, "rectangle-bead exponential growth")
	fs.Float64Var(&a.wf, "wf", 1, "BUGSY f-weight")
	fs.Float64Var(&a.wt, "wt", 1, "BUGSY time-weight")
	fs.DurationVar(&a.timeLimit, "timelimit", 0, "wall-clock limit, 0 disables it")
	if err := fs.Parse(args); err != nil {
		return algoFlags{}, err
	}
	return a, nil
}

func (a algoFlags) limiter() search.Limiter {
	if a.timeLimit <= 0 {
		return nil
	}
	deadline := time.Now().Add(a.timeLimit)
	return func() bool { return time.Now().After(deadline) }
}

// runAlgorithm dispatches by algorithm name to the matching engine,
// generic over one domain's State/PackedState/Oper/Cost quadruple. Every
// domain's runXxx function in domains.go calls this once it has built its
// Domain value and parsed its own instance-specific flags.
func runAlgorithm[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], algo string, a algoFlags) (search.Result[S, O, C], string, error) {
	limit := a.limiter()
	switch algo {
	case "ucs":
		opts := []ucs.Option{ucs.WithLimit(limit)}
		if a.dropDups {
			opts = append(opts, ucs.WithDropDups())
		}
		res, err := ucs.Search[S, P, O, C](d, opts...)
		return res, "binary heap (ucs)", err
	case "greedy":
		opts := []greedy.Option{greedy.WithLimit(limit)}
		if a.dropDups {
			opts = append(opts, greedy.WithDropDups())
		}
		res, err := greedy.Search[S, P, O, C](d, opts...)
		return res, "binary heap (greedy)", err
	case "speedy":
		opts := []speedy.Option{speedy.WithLimit(limit)}
		if a.dropDups {
			opts = append(opts, speedy.WithDropDups())
		}
		res, err := speedy.Search[S, P, O, C](d, opts...)
		return res, "binary heap (speedy)", err
	case "bugsy":
		opts := []bugsy.Option{bugsy.WithLimit(limit), bugsy.WithWeights(a.wf, a.wt)}
		res, err := bugsy.Search[S, P, O, C](d, opts...)
		return res, "binary heap (bugsy utility)", err
	case "aees":
		opts := []aees.Option{aees.WithLimit(limit), aees.WithWT0(a.wt0)}
		res, err := aees.Search[S, P, O, C](d, opts...)
		return res, "cleanup/open/focal (aees)", err
	case "beam":
		res, err := beam.BeamSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-layer top-k (beam)", err
	case "bead":
		res, err := beam.BeadSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-layer top-k (bead)", err
	case "monobeam":
		res, err := beam.MonoBeamSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-layer top-k (monobeam)", err
	case "monobead":
		res, err := beam.MonoBeadSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-layer top-k (monobead)", err
	case "monofloor":
		res, err := beam.MonoFloorSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-layer top-k + refill (monofloor)", err
	case "phc":
		res, err := beam.PHC[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-slot hill climb (phc)", err
	case "phcd":
		res, err := beam.PHCD[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "per-slot hill climb + dedup (phcd)", err
	case "trianglebead":
		res, err := beam.TriangleBeadSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "depth ring (trianglebead)", err
	case "rectanglebead":
		res, err := beam.RectangleBeadSearch[S, P, O, C](d, beamOpts(a, limit)...)
		return res, "depth ring (rectanglebead)", err
	case "mintest":
		res, basins, err := beam.MinTest[S, P, O, C](d, beamOpts(a, limit)...)
		fmt.Fprintf(os.Stderr, "basins: count=%d max=%d mean=%.3f\n", basins.BasinCount, basins.BasinMax, basins.BasinMeanRunning)
		return res, "per-layer top-k (mintest)", err
	default:
		return search.Result[S, O, C]{}, "", fmt.Errorf("search: unknown algorithm %q", algo)
	}
}

// stderrDump is the `-dump` beam.DumpSink: diagnostics simply go to
// stderr, the same place the rest of this command's incidental output
// lands.
type stderrDump struct{}

func (stderrDump) Dump(format string, args ...any) { fmt.Fprintf(os.Stderr, format, args...) }

func beamOpts(a algoFlags, limit search.Limiter) []beam.Option {
	opts := []beam.Option{beam.WithWidth(a.width), beam.WithLimit(limit)}
	if a.dropDups {
		opts = append(opts, beam.WithDropDups())
	}
	if a.dump {
		opts = append(opts, beam.WithDump(stderrDump{}))
	}
	if a.n > 0 {
		opts = append(opts, beam.WithTrailingSlots(a.n))
	}
	opts = append(opts, beam.WithRectangleGrowth(a.baseStep, a.aspect, a.expo))
	return opts
}

// emitTrailer renders the outcome of a run the way spec §6 describes:
// the shared counters plus cost/path length, regardless of what S, O, C
// happen to be for the domain that ran.
func emitTrailer[S any, O comparable, C domain.Cost](res search.Result[S, O, C], openListKind string, err error, sink metrics.Sink) {
	cost := 0.0
	switch c := any(res.Cost).(type) {
	case int:
		cost = float64(c)
	case int64:
		cost = float64(c)
	case float64:
		cost = float64(c)
	case float32:
		cost = float64(c)
	}
	trailer := metrics.Trailer{
		WallStart:     res.WallStart,
		WallFinish:    res.WallFinish,
		Expd:          res.Expd,
		Gend:          res.Gend,
		Dups:          res.Dups,
		Reopnd:        res.Reopnd,
		Cost:          cost,
		PathLength:    len(res.Path),
		NodeSizeBytes: 0,
		OpenListKind:  openListKind,
		ClosedStats:   "see expansions/generated",
	}
	trailer.EmitTo(sink)
	if err != nil {
		sink.Emit("solved", false)
		sink.Emit("error", err.Error())
		return
	}
	sink.Emit("solved", res.Found)
}
