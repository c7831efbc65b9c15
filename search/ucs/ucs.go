package ucs

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/closed"
	"github.com/katalvlaran/heurisearch/internal/heap"
	"github.com/katalvlaran/heurisearch/internal/pool"
	"github.com/katalvlaran/heurisearch/search"
)

type nodeT[P any, O comparable, C domain.Cost] = search.Node[P, O, C]

// gOps orders the open list by ascending g, the priority UCS explores in.
type gOps[P any, O comparable, C domain.Cost] struct{}

func (gOps[P, O, C]) Pred(a, b *nodeT[P, O, C]) bool    { return a.G < b.G }
func (gOps[P, O, C]) SetIndex(t *nodeT[P, O, C], i int) { t.OpenIndex = i }
func (gOps[P, O, C]) GetIndex(t *nodeT[P, O, C]) int    { return t.OpenIndex }

// Search runs uniform-cost search from d's initial state, returning the
// lowest-cost solution. Optimal whenever every edge cost is non-negative.
func Search[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := search.NewHarness(cfg.Limit)
	h.StartClock()
	defer h.StopClock()

	recordPool := pool.New[nodeT[P, O, C]](0)
	open := heap.New[*nodeT[P, O, C]](gOps[P, O, C]{})
	cl := closed.New[*nodeT[P, O, C], P](d.Hash, d.Equal, func(n *nodeT[P, O, C]) P { return n.Packed })

	initial := d.InitialState()
	root := recordPool.Construct()
	root.Reset()
	d.Pack(&root.Packed, initial)
	root.Op, root.Pop = d.Nop(), d.Nop()
	root.G = zeroOf[C]()
	root.H = d.H(initial)
	root.F = root.G + root.H
	root.D = d.D(initial)

	cl.Add(root)
	open.Push(root)

	for open.Len() > 0 {
		if h.LimitHit() {
			break
		}

		n := open.Pop()
		if n.IsPopped() {
			continue // stale heap entry left behind by a reopening
		}
		n.MarkPopped()

		state := d.Unpack(n.Packed)
		if d.IsGoal(state) {
			return finish[S, P, O, C](d, h, n)
		}

		err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
			if existing, ok := cl.Find(packed); ok {
				h.Dups++
				if g < existing.G && !(cfg.DropDups && existing.IsPopped()) {
					existing.G = g
					existing.F = existing.G + existing.H
					existing.Parent = n
					existing.Op = op
					existing.Pop = revop
					if existing.IsPopped() {
						h.Reopnd++
						existing.Reopen()
						open.Push(existing)
					} else {
						open.PushUpdate(existing)
					}
				}
				return nil
			}

			kid := recordPool.Construct()
			kid.Reset()
			kid.Packed = packed
			kid.Parent = n
			kid.Op, kid.Pop = op, revop
			kid.G = g
			kidState := d.Unpack(packed)
			kid.H = d.H(kidState)
			kid.F = kid.G + kid.H
			kid.D = d.D(kidState)

			cl.Add(kid)
			open.Push(kid)
			return nil
		})
		if err != nil {
			return search.Result[S, O, C]{}, err
		}
	}

	res := search.FromHarness[S, O, C](h)
	return res, search.ErrNoSolution
}

func finish[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], h *search.Harness, goal *nodeT[P, O, C]) (search.Result[S, O, C], error) {
	path, ops, cost, err := search.ReconstructPath[S, P, O, C](d, goal)
	res := search.FromHarness[S, O, C](h)
	if err != nil {
		return res, err
	}
	res.Path, res.Ops, res.Cost, res.Found = path, ops, cost, true
	return res, nil
}

func zeroOf[C domain.Cost]() C {
	var z C
	return z
}
