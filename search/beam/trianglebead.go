package beam

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// TriangleBeadSearch keeps one open list per depth, ordered by d asc,
// arranged in a ring (depthRing). Each sweep walks the ring from
// shallowest to deepest, expanding exactly one (the lowest-d) node from
// every active layer; generated children land in the next depth's layer
// following Bead's duplicate rule (reopen-patch on a strictly smaller
// g). It terminates when every layer has been pruned empty or a goal is
// accepted.
func TriangleBeadSearch[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
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

	ring := newDepthRing[P, O, C]()
	ring.add(root)

	for ring.len() > 0 {
		if h.LimitHit() {
			return search.FromHarness[S, O, C](h), search.ErrNoSolution
		}

		depths := append([]int{}, ring.depths...)
		for _, depth := range depths {
			layer, ok := ring.layers[depth]
			if !ok || len(layer) == 0 {
				continue
			}

			best := 0
			for i := 1; i < len(layer); i++ {
				if layer[i].D < layer[best].D {
					best = i
				}
			}
			n := layer[best]
			layer[best] = layer[len(layer)-1]
			ring.layers[depth] = layer[:len(layer)-1]

			state := d.Unpack(n.Packed)
			var goal *nodeT[P, O, C]
			err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
				kidState := d.Unpack(packed)
				hv := d.H(kidState)
				f := g + hv

				if existing, ok := e.closed.Find(packed); ok {
					h.Dups++
					if cfg.DropDups || g >= existing.G {
						return nil
					}
					h.Reopnd++
					existing.G, existing.F = g, f
					existing.D = d.D(kidState)
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
					ring.add(existing)
					if d.IsGoal(kidState) {
						goal = existing
					}
					return nil
				}

				kid := e.makeKid(n, packed, g, op, revop, hv, f, d.D(kidState))
				e.closed.Add(kid)
				ring.add(kid)
				if d.IsGoal(kidState) {
					goal = kid
				}
				return nil
			})
			if err != nil {
				return search.Result[S, O, C]{}, err
			}
			if goal != nil {
				return finish[S, P, O, C](d, h, goal)
			}
			ring.trim(depth+1, cfg.Width)
		}
		ring.removeEmpty()
	}

	return search.FromHarness[S, O, C](h), search.ErrNoSolution
}
