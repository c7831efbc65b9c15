package beam

import (
	"sort"

	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/internal/closed"
	"github.com/katalvlaran/heurisearch/internal/pool"
	"github.com/katalvlaran/heurisearch/search"
)

type nodeT[P any, O comparable, C domain.Cost] = search.Node[P, O, C]

// engine bundles the pool and closed table every beam variant draws its
// nodes from; the frontier itself is a plain slice per variant, since
// each layer is a one-shot top-W selection rather than a long-lived
// priority queue (selection is a single sort.Slice + truncate, not a
// push/pop sequence), not the incremental reordering internal/heap
// exists for.
type engine[P any, O comparable, C domain.Cost] struct {
	pool   *pool.Pool[nodeT[P, O, C]]
	closed *closed.Table[*nodeT[P, O, C], P]
}

func newEngine[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C]) *engine[P, O, C] {
	return &engine[P, O, C]{
		pool:   pool.New[nodeT[P, O, C]](0),
		closed: closed.New[*nodeT[P, O, C], P](d.Hash, d.Equal, func(n *nodeT[P, O, C]) P { return n.Packed }),
	}
}

// root constructs and registers the initial node, stamped at beam slot 0
// (width_seen's starting value).
func (e *engine[P, O, C]) root(initial func() (P, C, C, float64)) *nodeT[P, O, C] {
	n := e.pool.Construct()
	n.Reset()
	packed, h, f, d := initial()
	n.Packed = packed
	n.H, n.F, n.D = h, f, d
	e.closed.Add(n)
	return n
}

// makeKid constructs a successor node, stamping Depth from its parent and
// leaving WidthSeen for the caller to set once the kid's beam slot is
// known.
func (e *engine[P, O, C]) makeKid(parent *nodeT[P, O, C], packed P, g C, op, revop O, h, f C, d float64) *nodeT[P, O, C] {
	kid := e.pool.Construct()
	kid.Reset()
	kid.Packed = packed
	kid.Parent = parent
	kid.Op, kid.Pop = op, revop
	kid.G, kid.H, kid.F, kid.D = g, h, f, d
	kid.Depth = parent.Depth + 1
	return kid
}

// finish reconstructs the path from a selected goal node.
func finish[S any, P any, O comparable, C domain.Cost](d domain.Domain[S, P, O, C], h *search.Harness, goal *nodeT[P, O, C]) (search.Result[S, O, C], error) {
	path, ops, cost, err := search.ReconstructPath[S, P, O, C](d, goal)
	res := search.FromHarness[S, O, C](h)
	if err != nil {
		return res, err
	}
	res.Path, res.Ops, res.Cost, res.Found = path, ops, cost, true
	return res, nil
}

// sortTop sorts frontier in place by less and truncates it to at most
// width elements, the shared "select up to width best from a frontier"
// step every variant's layer loop performs (spec §4.3 "Beam family").
func sortTop[P any, O comparable, C domain.Cost](frontier []*nodeT[P, O, C], width int, less func(a, b *nodeT[P, O, C]) bool) []*nodeT[P, O, C] {
	sort.Slice(frontier, func(i, j int) bool { return less(frontier[i], frontier[j]) })
	if len(frontier) > width {
		frontier = frontier[:width]
	}
	return frontier
}

func zeroOf[C domain.Cost]() C {
	var z C
	return z
}
