package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// BeadSearch orders its frontier by d asc, tie-break g desc; a duplicate
// with a strictly smaller g reopens the closed record, patching its g,
// f, d, and parent rather than replacing wholesale. Terminates when a
// goal is generated or the frontier runs dry.
func BeadSearch[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
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

	if d.IsGoal(initial) {
		return finish[S, P, O, C](d, h, root)
	}

	frontier := []*nodeT[P, O, C]{root}
	less := func(a, b *nodeT[P, O, C]) bool {
		if a.D != b.D {
			return a.D < b.D
		}
		return a.G > b.G
	}

	for len(frontier) > 0 {
		var next []*nodeT[P, O, C]

		for _, n := range frontier {
			if h.LimitHit() {
				return search.FromHarness[S, O, C](h), search.ErrNoSolution
			}

			state := d.Unpack(n.Packed)
			err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
				if existing, ok := e.closed.Find(packed); ok {
					h.Dups++
					if cfg.DropDups || g >= existing.G {
						return nil
					}
					h.Reopnd++
					kidState := d.Unpack(packed)
					existing.G = g
					existing.F = existing.G + existing.H
					existing.D = d.D(kidState)
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
					next = append(next, existing)
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
				return search.Result[S, O, C]{}, err
			}
		}

		for _, kid := range next {
			if d.IsGoal(d.Unpack(kid.Packed)) {
				return finish[S, P, O, C](d, h, kid)
			}
		}

		frontier = sortTop(next, cfg.Width, less)
	}

	return search.FromHarness[S, O, C](h), search.ErrNoSolution
}
