package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// PHC runs ParallelHillClimbing without cross-slot duplicate detection:
// every beam slot climbs independently, and only the shared global-open
// refill (spec §4.3 supplement) keeps it from terminating early.
func PHC[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	return parallelHillClimbing[S, P, O, C](d, false, opts...)
}

// PHCD runs ParallelHillClimbing with duplicate detection: generated
// children are deduplicated against the shared closed table by
// (width_seen, g) before being admitted to a slot or the global open
// list (spec's "phcd" subcommand).
func PHCD[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	return parallelHillClimbing[S, P, O, C](d, true, opts...)
}

// parallelHillClimbing implements spec §4.3's ParallelHillClimbing:
// interleaved per-slot expansion where each slot keeps its single best
// dedup'd child, spare children spill into a shared global-open list
// ordered by f asc, and an underfilled slot is refilled from that list.
func parallelHillClimbing[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], dedup bool, opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := search.NewHarness(cfg.Limit)
	h.StartClock()
	defer h.StopClock()

	e := newEngine[S, P, O, C](d)

	initial := d.InitialState()
	root := e.root(func() (P, C, C, float64) {
		var packed P
		d.Pack(&packed, initial)
		hv := d.H(initial)
		return packed, hv, hv, d.D(initial)
	})
	root.Op, root.Pop = d.Nop(), d.Nop()
	root.WidthSeen = 0

	if d.IsGoal(initial) {
		return finish[S, P, O, C](d, h, root)
	}

	beam := make([]*nodeT[P, O, C], cfg.Width)
	beam[0] = root

	less := func(a, b *nodeT[P, O, C]) bool { return a.F < b.F }

	var globalOpen []*nodeT[P, O, C]
	var incumbent *nodeT[P, O, C]

	admit := func(slot int, packed P, g C, op, revop O, parent *nodeT[P, O, C]) *nodeT[P, O, C] {
		kidState := d.Unpack(packed)
		hv := d.H(kidState)
		f := g + hv

		if dedup {
			if existing, ok := e.closed.Find(packed); ok {
				h.Dups++
				better := parent.WidthSeen < existing.WidthSeen ||
					(parent.WidthSeen == existing.WidthSeen && g < existing.G)
				if cfg.DropDups || !better {
					return nil
				}
				existing.G, existing.F = g, f
				existing.D = d.D(kidState)
				existing.Parent = parent
				existing.Op, existing.Pop = op, revop
				existing.WidthSeen = slot
				return existing
			}
		}

		kid := e.makeKid(parent, packed, g, op, revop, hv, f, d.D(kidState))
		kid.WidthSeen = slot
		e.closed.Add(kid)
		return kid
	}

	anyAlive := func() bool {
		for _, n := range beam {
			if n != nil {
				return true
			}
		}
		return len(globalOpen) > 0
	}

	for anyAlive() {
		if h.LimitHit() {
			return finishOrNone[S, P, O, C](d, h, incumbent)
		}

		var spilled []*nodeT[P, O, C]

		for i, n := range beam {
			if n == nil {
				continue
			}

			state := d.Unpack(n.Packed)
			var best *nodeT[P, O, C]
			err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
				kid := admit(i, packed, g, op, revop, n)
				if kid == nil {
					return nil
				}
				if best == nil || kid.F < best.F {
					if best != nil {
						spilled = append(spilled, best)
					}
					best = kid
				} else {
					spilled = append(spilled, kid)
				}
				return nil
			})
			if err != nil {
				return search.Result[S, O, C]{}, err
			}

			beam[i] = best
		}

		globalOpen = append(globalOpen, spilled...)
		globalOpen = sortTop(globalOpen, len(globalOpen), less)

		for i := range beam {
			if beam[i] == nil && len(globalOpen) > 0 {
				beam[i] = globalOpen[0]
				globalOpen = globalOpen[1:]
				beam[i].WidthSeen = i
			}
		}

		for i, n := range beam {
			if n != nil && d.IsGoal(d.Unpack(n.Packed)) {
				if incumbent == nil || n.G < incumbent.G {
					incumbent = n
				}
				beam[i] = nil
			}
		}

		if incumbent != nil && incumbent.WidthSeen == 0 {
			return finish[S, P, O, C](d, h, incumbent)
		}
	}

	return finishOrNone[S, P, O, C](d, h, incumbent)
}
