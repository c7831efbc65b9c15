package search

import (
	"time"

	"github.com/katalvlaran/heurisearch/domain"
)

// Result is the outcome every engine's Search returns: the reconstructed
// solution (nil Path if none was found within the limit) plus the
// counters and timings the metrics trailer (spec §6) reports.
type Result[S any, O comparable, C domain.Cost] struct {
	Path []S
	Ops  []O
	Cost C
	Found bool

	Expd, Gend, Dups, Reopnd int64
	WallStart, WallFinish    time.Time
}

// FromHarness fills in the counters and timings common to every engine,
// leaving the caller to set Path/Ops/Cost/Found.
func FromHarness[S any, O comparable, C domain.Cost](h *Harness) Result[S, O, C] {
	return Result[S, O, C]{
		Expd:       h.Expd,
		Gend:       h.Gend,
		Dups:       h.Dups,
		Reopnd:     h.Reopnd,
		WallStart:  h.WallStart,
		WallFinish: h.WallFinish,
	}
}
