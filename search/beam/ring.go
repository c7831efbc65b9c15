package beam

import (
	"sort"

	"github.com/katalvlaran/heurisearch/domain"
)

// depthRing is the "ring of per-depth open lists" spec §4.3 describes for
// the triangle/rectangle bead variants: active depths are always
// contiguous from the shallowest live layer, so a sorted slice of depths
// plus a map of their contents gives the same add/remove/remove_rest
// operations as a doubly-linked ring without hand-rolled pointer
// plumbing, which is the more idiomatic Go shape for a bounded, rarely
// reallocated structure like this one.
type depthRing[P any, O comparable, C domain.Cost] struct {
	layers map[int][]*nodeT[P, O, C]
	depths []int // kept sorted ascending
}

func newDepthRing[P any, O comparable, C domain.Cost]() *depthRing[P, O, C] {
	return &depthRing[P, O, C]{layers: make(map[int][]*nodeT[P, O, C])}
}

// add appends n to its depth's layer, creating the layer if needed.
func (r *depthRing[P, O, C]) add(n *nodeT[P, O, C]) {
	depth := n.Depth
	if _, ok := r.layers[depth]; !ok {
		r.depths = append(r.depths, depth)
		sort.Ints(r.depths)
	}
	r.layers[depth] = append(r.layers[depth], n)
}

// trim keeps only the width lowest-d entries in a layer.
func (r *depthRing[P, O, C]) trim(depth, width int) {
	layer := r.layers[depth]
	sort.Slice(layer, func(i, j int) bool { return layer[i].D < layer[j].D })
	if len(layer) > width {
		layer = layer[:width]
	}
	r.layers[depth] = layer
}

// removeEmpty drops every depth whose layer has gone empty, keeping the
// ring's depth list accurate (spec's "prune" of exhausted layers).
func (r *depthRing[P, O, C]) removeEmpty() {
	kept := r.depths[:0]
	for _, depth := range r.depths {
		if len(r.layers[depth]) > 0 {
			kept = append(kept, depth)
		} else {
			delete(r.layers, depth)
		}
	}
	r.depths = kept
}

// removeRest truncates every layer deeper than from, used when an
// incumbent makes continued deepening pointless.
func (r *depthRing[P, O, C]) removeRest(from int) {
	kept := r.depths[:0]
	for _, depth := range r.depths {
		if depth <= from {
			kept = append(kept, depth)
		} else {
			delete(r.layers, depth)
		}
	}
	r.depths = kept
}

// popShallowest removes and returns the lowest-d node from the
// shallowest non-empty layer.
func (r *depthRing[P, O, C]) popShallowest() (*nodeT[P, O, C], bool) {
	r.removeEmpty()
	if len(r.depths) == 0 {
		return nil, false
	}
	depth := r.depths[0]
	layer := r.layers[depth]

	best := 0
	for i := 1; i < len(layer); i++ {
		if layer[i].D < layer[best].D {
			best = i
		}
	}
	n := layer[best]
	layer[best] = layer[len(layer)-1]
	r.layers[depth] = layer[:len(layer)-1]
	return n, true
}

func (r *depthRing[P, O, C]) len() int { return len(r.depths) }
