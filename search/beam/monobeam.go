package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// MonoBeamSearch orders its frontier by f asc. A duplicate replaces the
// closed record iff the new candidate's inherited width_seen is strictly
// lower than the existing record's (the width-seen protocol, spec §4.3).
// It is anytime: it keeps an incumbent and prunes any candidate whose f
// cannot beat it, terminating when no admissible layer remains.
func MonoBeamSearch[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
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

	var incumbent *nodeT[P, O, C]
	if d.IsGoal(initial) {
		incumbent = root
	}

	frontier := []*nodeT[P, O, C]{root}
	less := func(a, b *nodeT[P, O, C]) bool { return a.F < b.F }

	for len(frontier) > 0 {
		var next []*nodeT[P, O, C]

		for _, n := range frontier {
			if h.LimitHit() {
				return finishOrNone[S, P, O, C](d, h, incumbent)
			}
			if incumbent != nil && n.F >= incumbent.G {
				continue // incumbent pruning
			}

			state := d.Unpack(n.Packed)
			err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
				kidState := d.Unpack(packed)
				hv := d.H(kidState)
				f := g + hv
				if incumbent != nil && f >= incumbent.G {
					return nil
				}

				if existing, ok := e.closed.Find(packed); ok {
					h.Dups++
					if cfg.DropDups || n.WidthSeen >= existing.WidthSeen {
						return nil
					}
					existing.G = g
					existing.F = f
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
					existing.WidthSeen = n.WidthSeen
					next = append(next, existing)
					return nil
				}

				kid := e.makeKid(n, packed, g, op, revop, hv, f, d.D(kidState))
				kid.WidthSeen = n.WidthSeen
				e.closed.Add(kid)
				next = append(next, kid)
				return nil
			})
			if err != nil {
				return search.Result[S, O, C]{}, err
			}
		}

		for _, kid := range next {
			if d.IsGoal(d.Unpack(kid.Packed)) {
				if incumbent == nil || kid.G < incumbent.G {
					incumbent = kid
				}
			}
		}

		next = sortTop(next, cfg.Width, less)
		for i, kid := range next {
			kid.WidthSeen = i
		}
		frontier = next
	}

	return finishOrNone[S, P, O, C](d, h, incumbent)
}

func finishOrNone[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], h *search.Harness, incumbent *nodeT[P, O, C]) (search.Result[S, O, C], error) {
	if incumbent == nil {
		return search.FromHarness[S, O, C](h), search.ErrNoSolution
	}
	return finish[S, P, O, C](d, h, incumbent)
}
