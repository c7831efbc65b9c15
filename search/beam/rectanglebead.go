package beam

import (
	"math"
	"sort"

	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/search"
)

// RectangleBeadSearch is TriangleBeadSearch with a growing expansion
// count per layer: sweep iteration i expands expandCount(i) nodes from
// each active layer instead of just one, growing either linearly
// (BaseStep + HeightStep*i) or, with Exponential set, by repeated
// multiplication (BaseStep * HeightStep^i), per the rectangle.hpp
// aspect-ratio knobs (spec §4.3 supplement).
func RectangleBeadSearch[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
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

	expandCount := func(iter int) int {
		var n float64
		if cfg.Exponential {
			n = cfg.BaseStep * math.Pow(cfg.HeightStep, float64(iter))
		} else {
			n = cfg.BaseStep + cfg.HeightStep*float64(iter)
		}
		if n < 1 {
			n = 1
		}
		return int(n)
	}

	for iter := 0; ring.len() > 0; iter++ {
		if h.LimitHit() {
			return search.FromHarness[S, O, C](h), search.ErrNoSolution
		}

		count := expandCount(iter)
		depths := append([]int{}, ring.depths...)

		for _, depth := range depths {
			layer, ok := ring.layers[depth]
			if !ok || len(layer) == 0 {
				continue
			}
			sort.Slice(layer, func(i, j int) bool { return layer[i].D < layer[j].D })

			take := count
			if take > len(layer) {
				take = len(layer)
			}
			batch := layer[:take]
			ring.layers[depth] = layer[take:]

			for _, n := range batch {
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
		}
		ring.removeEmpty()
	}

	return search.FromHarness[S, O, C](h), search.ErrNoSolution
}
