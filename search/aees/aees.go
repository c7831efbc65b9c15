package aees

import (
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/closed"
	"github.com/katalvlaran/heurisearch/internal/heap"
	"github.com/katalvlaran/heurisearch/internal/pool"
	"github.com/katalvlaran/heurisearch/search"
)

type nodeT[P any, O comparable, C domain.Cost] = search.Node[P, O, C]

// imExp is the number of imaginary error-free expansions herror/derror's
// running means are seeded with, damping early noise (spec §4.3
// supplement).
const imExp = 10

// epsilon clamps derror strictly below 1 so d/(1-derror) never divides by
// zero or goes negative (spec §4.3 supplement).
const epsilon = 1e-6

// errorMean is a count-weighted running mean seeded with imExp phantom
// zero-error samples.
type errorMean struct {
	mean  float64
	count float64
}

func newErrorMean() errorMean { return errorMean{mean: 0, count: imExp} }

func (m *errorMean) fold(sample float64) {
	m.count++
	m.mean += (sample - m.mean) / m.count
}

// cleanupOps orders by f asc, tie-break smaller d, then larger g: the
// admissible lower-bound queue.
type cleanupOps[P any, O comparable, C domain.Cost] struct{}

func (cleanupOps[P, O, C]) Pred(a, b *nodeT[P, O, C]) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	if a.D != b.D {
		return a.D < b.D
	}
	return a.G > b.G
}
func (cleanupOps[P, O, C]) SetIndex(t *nodeT[P, O, C], i int) { t.CleanupIndex = i }
func (cleanupOps[P, O, C]) GetIndex(t *nodeT[P, O, C]) int    { return t.CleanupIndex }

// openOps orders by f̂ asc, tie-break smaller g.
type openOps[P any, O comparable, C domain.Cost] struct{}

func (openOps[P, O, C]) Pred(a, b *nodeT[P, O, C]) bool {
	if a.FHat != b.FHat {
		return a.FHat < b.FHat
	}
	return a.G < b.G
}
func (openOps[P, O, C]) SetIndex(t *nodeT[P, O, C], i int) { t.OpenIndex = i }
func (openOps[P, O, C]) GetIndex(t *nodeT[P, O, C]) int    { return t.OpenIndex }

// focalOps orders by d̂ asc, tie-break smaller f̂, then larger g.
type focalOps[P any, O comparable, C domain.Cost] struct{}

func (focalOps[P, O, C]) Pred(a, b *nodeT[P, O, C]) bool {
	if a.DHat != b.DHat {
		return a.DHat < b.DHat
	}
	if a.FHat != b.FHat {
		return a.FHat < b.FHat
	}
	return a.G > b.G
}
func (focalOps[P, O, C]) SetIndex(t *nodeT[P, O, C], i int) { t.FocalIndex = i }
func (focalOps[P, O, C]) GetIndex(t *nodeT[P, O, C]) int    { return t.FocalIndex }

// engine bundles the three queues and the running error means; its
// methods carry the estimate-correction and focal-admission bookkeeping
// that both fresh generation and duplicate improvement need.
type engine[P any, O comparable, C domain.Cost] struct {
	cleanup *heap.Heap[*nodeT[P, O, C]]
	open    *heap.Heap[*nodeT[P, O, C]]
	focal   *heap.Heap[*nodeT[P, O, C]]

	herror errorMean
	derror errorMean

	w float64
}

// dhat applies the corrected-distance formula, clamping derror strictly
// below 1 so the division never blows up.
func (e *engine[P, O, C]) dhat(d float64) float64 {
	de := e.derror.mean
	if de > 1-epsilon {
		de = 1 - epsilon
	}
	return d / (1 - de)
}

// estimate fills HHat/DHat/FHat on n from its existing G/H/D.
func (e *engine[P, O, C]) estimate(n *nodeT[P, O, C]) {
	dh := e.dhat(n.D)
	n.DHat = dh
	n.HHat = n.H + C(e.herror.mean*dh)
	n.FHat = n.G + n.HHat
}

// fhatmin returns open's minimum f̂ and true, or zero and false if open
// is empty.
func (e *engine[P, O, C]) fhatmin() (C, bool) {
	if e.open.Len() == 0 {
		var zero C
		return zero, false
	}
	return e.open.Front().FHat, true
}

// focalAdmissible reports whether n belongs in focal under the current w
// and fhatmin.
func (e *engine[P, O, C]) focalAdmissible(n *nodeT[P, O, C]) bool {
	fm, ok := e.fhatmin()
	if !ok {
		return false
	}
	return float64(n.FHat) <= e.w*float64(fm)
}

// syncFocal adds n to focal if newly admissible, removes it if no longer
// admissible, leaves it alone otherwise.
func (e *engine[P, O, C]) syncFocal(n *nodeT[P, O, C]) {
	admissible := e.focalAdmissible(n)
	inFocal := n.FocalIndex >= 0
	switch {
	case admissible && !inFocal:
		e.focal.Push(n)
	case !admissible && inFocal:
		e.focal.Remove(n.FocalIndex)
	case admissible && inFocal:
		e.focal.Update(n.FocalIndex)
	}
}

// rescanFocal revisits every node in open against the current fhatmin,
// the binary-heap variant of spec §4.3's "after generation, if fhatmin
// changed, rescan open" (the red-black cursor-update variant is the
// coexisting alternative spec §9 asks us to pick one of, not fuse).
func (e *engine[P, O, C]) rescanFocal() {
	for _, n := range e.open.All() {
		e.syncFocal(n)
	}
}

// removeFromAll removes n from whichever of the three queues it is
// currently a member of.
func (e *engine[P, O, C]) removeFromAll(n *nodeT[P, O, C]) {
	if n.CleanupIndex >= 0 {
		e.cleanup.Remove(n.CleanupIndex)
	}
	if n.OpenIndex >= 0 {
		e.open.Remove(n.OpenIndex)
	}
	if n.FocalIndex >= 0 {
		e.focal.Remove(n.FocalIndex)
	}
}

// selectNode implements select_node's preference order: focal, then
// open, then cleanup, each gated by the w*bestF.F bound except cleanup,
// which is the fallback of last resort.
func (e *engine[P, O, C]) selectNode() *nodeT[P, O, C] {
	bestF := e.cleanup.Front()
	bound := e.w * float64(bestF.F)

	if e.focal.Len() > 0 && float64(e.focal.Front().FHat) <= bound {
		return e.focal.Front()
	}
	if e.open.Len() > 0 && float64(e.open.Front().FHat) <= bound {
		return e.open.Front()
	}
	return bestF
}

// Search runs AEES: an anytime, bounded-suboptimal search that keeps
// searching past the first goal, tightening its weight with every
// improved incumbent, until cleanup is exhausted or the limit fires.
func Search[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], opts ...Option) (search.Result[S, O, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := search.NewHarness(cfg.Limit)
	h.StartClock()
	defer h.StopClock()

	e := &engine[P, O, C]{
		cleanup: heap.New[*nodeT[P, O, C]](cleanupOps[P, O, C]{}),
		open:    heap.New[*nodeT[P, O, C]](openOps[P, O, C]{}),
		focal:   heap.New[*nodeT[P, O, C]](focalOps[P, O, C]{}),
		herror:  newErrorMean(),
		derror:  newErrorMean(),
		w:       cfg.WT0,
	}

	recordPool := pool.New[nodeT[P, O, C]](0)
	cl := closed.New[*nodeT[P, O, C], P](d.Hash, d.Equal, func(n *nodeT[P, O, C]) P { return n.Packed })

	makeNode := func(parent *nodeT[P, O, C], packed P, g C, op, revop O, state S) *nodeT[P, O, C] {
		n := recordPool.Construct()
		n.Reset()
		n.Packed = packed
		n.Parent = parent
		n.Op, n.Pop = op, revop
		n.G = g
		n.H = d.H(state)
		n.F = n.G + n.H
		n.D = d.D(state)
		e.estimate(n)
		return n
	}

	initial := d.InitialState()
	var packedRoot P
	d.Pack(&packedRoot, initial)
	root := makeNode(nil, packedRoot, zeroOf[C](), d.Nop(), d.Nop(), initial)
	cl.Add(root)
	e.cleanup.Push(root)
	e.open.Push(root)
	e.syncFocal(root) // trivially admissible: the only member of open

	var cand *nodeT[P, O, C]
	incumbentSeq := 0

	for e.cleanup.Len() > 0 {
		if h.LimitHit() {
			break
		}

		n := e.selectNode()
		e.removeFromAll(n)

		state := d.Unpack(n.Packed)
		if d.IsGoal(state) {
			if cand == nil || n.G < cand.G {
				cand = n
				if e.cleanup.Len() > 0 {
					e.w = float64(cand.G) / float64(e.cleanup.Front().F)
				} else {
					e.w = 1.0
				}
				incumbentSeq++
				if cfg.OnIncumbent != nil {
					cfg.OnIncumbent(Incumbent{
						Seq:   incumbentSeq,
						Expd:  h.Expd,
						Gend:  h.Gend,
						Bound: e.w,
						Cost:  float64(cand.G),
					})
				}
			}
			continue
		}

		if cand != nil && n.F >= cand.G {
			continue // spec's incumbent-pruning rule
		}

		var bestKid *nodeT[P, O, C]
		err := search.Expand(h, d, n, state, func(packed P, g C, op, revop O, _ C) error {
			if existing, ok := cl.Find(packed); ok {
				h.Dups++
				if g < existing.G {
					existing.G = g
					existing.F = existing.G + existing.H
					existing.Parent = n
					existing.Op, existing.Pop = op, revop
					e.estimate(existing)

					if existing.CleanupIndex >= 0 {
						e.cleanup.Update(existing.CleanupIndex)
					} else {
						e.cleanup.Push(existing)
					}
					if existing.OpenIndex >= 0 {
						e.open.Update(existing.OpenIndex)
					} else {
						e.open.Push(existing)
					}
					e.syncFocal(existing)

					if bestKid == nil || existing.F < bestKid.F {
						bestKid = existing
					}
				}
				return nil
			}

			kidState := d.Unpack(packed)
			kid := makeNode(n, packed, g, op, revop, kidState)
			cl.Add(kid)
			e.cleanup.Push(kid)
			e.open.Push(kid)
			e.syncFocal(kid)

			if bestKid == nil || kid.F < bestKid.F {
				bestKid = kid
			}
			return nil
		})
		if err != nil {
			return search.Result[S, O, C]{}, err
		}

		if bestKid != nil {
			herr := float64(bestKid.F - n.F)
			if herr < 0 {
				herr = 0
			}
			derr := bestKid.D + 1 - n.D
			if derr < 0 {
				derr = 0
			}
			if derr > 1-epsilon {
				derr = 1 - epsilon
			}
			e.herror.fold(herr)
			e.derror.fold(derr)

			for _, m := range e.open.All() {
				e.estimate(m)
			}
			e.open.Reinit()
			e.rescanFocal()
		}
	}

	res := search.FromHarness[S, O, C](h)
	if cand == nil {
		return res, search.ErrNoSolution
	}

	path, ops, cost, err := search.ReconstructPath[S, P, O, C](d, cand)
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
