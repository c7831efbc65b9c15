package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// MonoFloorSearch orders its frontier by f asc, built in two parts each
// layer: the first Width-N slots come from this round's freshly
// generated candidates, the last N from a refill reservoir carried
// across rounds (candidates good enough to keep but not good enough for
// this round's primary slots). Duplicates follow the width-seen protocol
// like MonoBeadSearch. It terminates the moment an incumbent goal lands
// in slot 0 (width_seen == 0), the floor of the beam, or when the
// frontier runs dry.
func MonoFloorSearch[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	primarySlots := cfg.Width - cfg.N
	if primarySlots < 1 {
		primarySlots = 1
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

	less := func(a, b *nodeT[P, O, C]) bool {
		if a.F != b.F {
			return a.F < b.F
		}
		return a.G > b.G
	}

	frontier := []*nodeT[P, O, C]{root}
	var refill []*nodeT[P, O, C]
	var incumbent *nodeT[P, O, C]

	for len(frontier) > 0 {
		var cand []*nodeT[P, O, C]

		for _, n := range frontier {
			if h.LimitHit() {
				return finishOrNone[S, P, O, C](d, h, incumbent)
			}

			state := d.Unpack(n.Packed)
			err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
				kidState := d.Unpack(packed)
				hv := d.H(kidState)
				f := g + hv

				if existing, ok := e.closed.Find(packed); ok {
					h.Dups++
					better := n.WidthSeen < existing.WidthSeen ||
						(n.WidthSeen == existing.WidthSeen && g < existing.G)
					if cfg.DropDups || !better {
						return nil
					}
					existing.G, existing.F = g, f
					existing.D = d.D(kidState)
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
					existing.WidthSeen = n.WidthSeen
					cand = append(cand, existing)
					return nil
				}

				kid := e.makeKid(n, packed, g, op, revop, hv, f, d.D(kidState))
				kid.WidthSeen = n.WidthSeen
				e.closed.Add(kid)
				cand = append(cand, kid)
				return nil
			})
			if err != nil {
				return search.Result[S, O, C]{}, err
			}
		}

		cand = sortTop(cand, len(cand), less) // full sort, no truncation yet

		primary := cand
		var leftover []*nodeT[P, O, C]
		if len(primary) > primarySlots {
			leftover = primary[primarySlots:]
			primary = primary[:primarySlots]
		}

		refillTake := cfg.N
		if refillTake > len(refill) {
			refillTake = len(refill)
		}
		fromRefill := refill[:refillTake]
		refill = append(append([]*nodeT[P, O, C]{}, refill[refillTake:]...), leftover...)

		next := append(append([]*nodeT[P, O, C]{}, primary...), fromRefill...)
		next = sortTop(next, cfg.Width, less)
		for i, kid := range next {
			kid.WidthSeen = i
			if d.IsGoal(d.Unpack(kid.Packed)) && (incumbent == nil || kid.G < incumbent.G) {
				incumbent = kid
			}
		}

		if incumbent != nil && incumbent.WidthSeen == 0 {
			return finish[S, P, O, C](d, h, incumbent)
		}

		frontier = next
	}

	return finishOrNone[S, P, O, C](d, h, incumbent)
}
