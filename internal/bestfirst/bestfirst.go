// Package bestfirst factors out the single-open-list, discard-on-duplicate
// best-first shape spec §4.3 describes twice over (Greedy orders by h,
// Speedy by d) into one generic engine parameterised by a priority key
// function, so the two public packages differ only in which estimate they
// key on, not in the loop that drives them.
package bestfirst

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/closed"
	"github.com/katalvlaran/heurisearch/internal/heap"
	"github.com/katalvlaran/heurisearch/internal/pool"
	"github.com/katalvlaran/heurisearch/search"
)

type nodeT[P any, O comparable, C domain.Cost] = search.Node[P, O, C]

// KeyFunc returns the priority (lower sorts first) of a node; Greedy uses
// h, Speedy uses d.
type KeyFunc[P any, O comparable, C domain.Cost] func(n *nodeT[P, O, C]) float64

type ordOps[P any, O comparable, C domain.Cost] struct {
	key KeyFunc[P, O, C]
}

func (o ordOps[P, O, C]) Pred(a, b *nodeT[P, O, C]) bool {
	ka, kb := o.key(a), o.key(b)
	if ka != kb {
		return ka < kb
	}
	return a.G > b.G // tie-break: prefer the node deeper into the search
}
func (o ordOps[P, O, C]) SetIndex(t *nodeT[P, O, C], i int) { t.OpenIndex = i }
func (o ordOps[P, O, C]) GetIndex(t *nodeT[P, O, C]) int    { return t.OpenIndex }

// Options configures the shared engine.
type Options struct {
	DropDups bool
	Limit    search.Limiter
}

// Search runs the shared best-first loop: single open list ordered by
// key(n) ascending, tie-break larger g, discard-on-duplicate, first goal
// popped wins. No optimality claim is made for either Greedy or Speedy.
func Search[S any, P any, O comparable, C domain.Cost](
	d domain.Domain[S, P, O, C],
	key KeyFunc[P, O, C],
	cfg Options,
) (search.Result[S, O, C], error) {
	h := search.NewHarness(cfg.Limit)
	h.StartClock()
	defer h.StopClock()

	recordPool := pool.New[nodeT[P, O, C]](0)
	open := heap.New[*nodeT[P, O, C]](ordOps[P, O, C]{key: key})
	cl := closed.New[*nodeT[P, O, C], P](d.Hash, d.Equal, func(n *nodeT[P, O, C]) P { return n.Packed })

	initial := d.InitialState()
	root := recordPool.Construct()
	root.Reset()
	d.Pack(&root.Packed, initial)
	root.Op, root.Pop = d.Nop(), d.Nop()
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
		state := d.Unpack(n.Packed)
		if d.IsGoal(state) {
			path, ops, cost, err := search.ReconstructPath[S, P, O, C](d, n)
			res := search.FromHarness[S, O, C](h)
			if err != nil {
				return res, err
			}
			res.Path, res.Ops, res.Cost, res.Found = path, ops, cost, true
			return res, nil
		}

		err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
			if _, ok := cl.Find(packed); ok {
				h.Dups++
				return nil // duplicates are always discarded, no reopening
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
