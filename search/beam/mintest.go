package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// BasinStats accumulates the local-minimum basin statistics MinTest
// tracks (spec §4.3 "MinTest", supplemented from mintest.hpp's
// bsize/bcount/maxb/avgb fields).
type BasinStats struct {
	BasinCount       int
	BasinMax         int
	BasinMeanRunning float64
}

func (b *BasinStats) close(size int) {
	if size <= 0 {
		return
	}
	b.BasinCount++
	if size > b.BasinMax {
		b.BasinMax = size
	}
	b.BasinMeanRunning += (float64(size) - b.BasinMeanRunning) / float64(b.BasinCount)
}

// MinTest is the min-local-basin instrumentation variant: it never stops
// early on a goal, draining its rolling frontier (ordered by h asc,
// tie-break mindepth desc) to exhaustion while tracking the running
// high-water mark of h and the size, count, and mean of every
// local-minimum basin crossed along the way. A duplicate keeps the
// larger of the two recorded mindepths rather than replacing the node.
func MinTest[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], BasinStats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := search.NewHarness(cfg.Limit)
	h.StartClock()
	defer h.StopClock()

	e := newEngine[S, P, O, C](d)
	var stats BasinStats

	initial := d.InitialState()
	root := e.root(func() (P, C, C, float64) {
		var packed P
		d.Pack(&packed, initial)
		hv := d.H(initial)
		return packed, hv, hv, d.D(initial)
	})
	root.Op, root.Pop = d.Nop(), d.Nop()

	var bestGoal *nodeT[P, O, C]
	hwm := root.H

	less := func(a, b *nodeT[P, O, C]) bool {
		if a.H != b.H {
			return a.H < b.H
		}
		return a.Depth > b.Depth // mindepth desc
	}

	frontier := []*nodeT[P, O, C]{root}
	curBasin := 0

	for len(frontier) > 0 {
		var next []*nodeT[P, O, C]

		for _, n := range frontier {
			if h.LimitHit() {
				stats.close(curBasin)
				return finishOrNone[S, P, O, C](d, h, bestGoal), stats, nil
			}

			if n.H > hwm {
				stats.close(curBasin)
				curBasin = 0
				hwm = n.H
			} else {
				curBasin++
			}

			if d.IsGoal(d.Unpack(n.Packed)) && (bestGoal == nil || n.G < bestGoal.G) {
				bestGoal = n
			}

			state := d.Unpack(n.Packed)
			err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
				if existing, ok := e.closed.Find(packed); ok {
					h.Dups++
					if n.Depth+1 > existing.Depth {
						existing.Depth = n.Depth + 1 // keep the larger of the two mindepths
					}
					return nil
				}

				kidState := d.Unpack(packed)
				hv := d.H(kidState)
				kid := e.makeKid(n, packed, g, op, revop, hv, g+hv, d.D(kidState))
				e.closed.Add(kid)
				next = append(next, kid)
				return nil
			})
			if err != nil {
				return search.Result[S, O, C]{}, stats, err
			}
		}

		frontier = sortTop(next, cfg.Width, less)
	}

	stats.close(curBasin)
	return finishOrNone[S, P, O, C](d, h, bestGoal), stats, nil
}
