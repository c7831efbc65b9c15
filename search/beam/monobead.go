package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// MonoBeadSearch orders its frontier by d asc, tie-break f asc, tie-break
// g desc. Duplicates follow the width-seen protocol like MonoBeamSearch,
// with ties on width_seen broken by the lower g winning. It stops as soon
// as a goal is generated whose f does not exceed the running incumbent's
// g, or when the frontier runs dry.
func MonoBeadSearch[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
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

	frontier := []*nodeT[P, O, C]{root}
	less := func(a, b *nodeT[P, O, C]) bool {
		if a.D != b.D {
			return a.D < b.D
		}
		if a.F != b.F {
			return a.F < b.F
		}
		return a.G > b.G
	}

	var incumbent *nodeT[P, O, C]

	for len(frontier) > 0 {
		var next []*nodeT[P, O, C]
		var found *nodeT[P, O, C]

		for _, n := range frontier {
			if h.LimitHit() {
				return search.FromHarness[S, O, C](h), search.ErrNoSolution
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
					existing.G = g
					existing.F = f
					existing.D = d.D(kidState)
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
					existing.WidthSeen = n.WidthSeen
					next = append(next, existing)
					if d.IsGoal(kidState) && (incumbent == nil || f <= incumbent.G) {
						found = existing
					}
					return nil
				}

				kid := e.makeKid(n, packed, g, op, revop, hv, f, d.D(kidState))
				kid.WidthSeen = n.WidthSeen
				e.closed.Add(kid)
				next = append(next, kid)
				if d.IsGoal(kidState) && (incumbent == nil || f <= incumbent.G) {
					found = kid
				}
				return nil
			})
			if err != nil {
				return search.Result[S, O, C]{}, err
			}
		}

		if found != nil {
			incumbent = found
			return finish[S, P, O, C](d, h, incumbent)
		}

		next = sortTop(next, cfg.Width, less)
		for i, kid := range next {
			kid.WidthSeen = i
		}
		frontier = next
	}

	return search.FromHarness[S, O, C](h), search.ErrNoSolution
}
