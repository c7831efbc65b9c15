package bugsy

import (
	"time"

	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/closed"
	"github.com/katalvlaran/heurisearch/internal/heap"
	"github.com/katalvlaran/heurisearch/internal/pool"
	"github.com/katalvlaran/heurisearch/search"
)

type nodeT[P any, O comparable, C domain.Cost] = search.Node[P, O, C]

// estimatorPhase names the three-state timeper estimation cycle (spec
// §4.3 "BUGSY").
type estimatorPhase int

const (
	waitTick estimatorPhase = iota
	expandSome
	waitExpand
)

// estimator holds the running timeper estimate and its state machine.
// Pred reads it live, so a bulk Reinit after an update re-sorts the open
// list under the new utility without the engine needing to touch every
// node's stored fields.
type estimator struct {
	phase     estimatorPhase
	timeper   float64 // seconds per expansion, running mean
	pertick   int
	nexp      int
	lasttick  time.Time
	starttime time.Time
}

func (e *estimator) tick(now time.Time, onReestimate func()) {
	switch e.phase {
	case waitTick:
		if e.lasttick.IsZero() || now.After(e.lasttick) {
			e.starttime = now
			e.nexp = 0
			e.phase = expandSome
		}
	case expandSome:
		e.nexp++
		if e.nexp >= e.pertick {
			e.lasttick = now
			e.phase = waitExpand
		}
	case waitExpand:
		if now.After(e.lasttick) {
			elapsed := now.Sub(e.starttime).Seconds()
			if e.nexp > 0 {
				e.timeper = elapsed / float64(e.nexp)
			}
			e.pertick = 9 * e.nexp / 5
			if e.pertick <= 0 {
				e.pertick = 1
			}
			e.lasttick = now
			e.phase = waitTick
			onReestimate()
		}
	}
}

// utilityOps orders the open list by descending utility u = -(wf*f +
// wt*timeper*d); Pred reads est.timeper live, so Reinit after a
// re-estimate reflects the new timeper without mutating every node.
type utilityOps[P any, O comparable, C domain.Cost] struct {
	wf, wt float64
	est    *estimator
}

func (o utilityOps[P, O, C]) utility(n *nodeT[P, O, C]) float64 {
	t := o.est.timeper * n.D
	return -(o.wf*float64(n.F) + o.wt*t)
}

func (o utilityOps[P, O, C]) Pred(a, b *nodeT[P, O, C]) bool {
	ua, ub := o.utility(a), o.utility(b)
	if ua != ub {
		return ua > ub // higher utility sorts first
	}
	return a.G > b.G
}
func (o utilityOps[P, O, C]) SetIndex(t *nodeT[P, O, C], i int) { t.OpenIndex = i }
func (o utilityOps[P, O, C]) GetIndex(t *nodeT[P, O, C]) int    { return t.OpenIndex }

// Search runs BUGSY: a single open list ordered by time-aware utility,
// re-estimating timeper periodically and re-sorting the open list each
// time the estimate changes. First goal popped is returned.
func Search[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := search.NewHarness(cfg.Limit)
	h.StartClock()
	defer h.StopClock()

	est := &estimator{pertick: cfg.PerTick}
	ops := utilityOps[P, O, C]{wf: cfg.WF, wt: cfg.WT, est: est}

	recordPool := pool.New[nodeT[P, O, C]](0)
	open := heap.New[*nodeT[P, O, C]](ops)
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

		est.tick(time.Now(), func() { open.Reinit() })

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
				if g < existing.G {
					existing.G = g
					existing.F = existing.G + existing.H
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
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
