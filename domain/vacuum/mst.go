// Package vacuum implements the vacuum-world domain. spec.md §9 notes
// that original_source carries two incompatible `Vacuum` definitions and
// directs treating them as two different domains; this package does so as
// MSTVacuum (this file) and BBoxVacuum (bbox.go), sharing nothing but the
// grid/dirt vocabulary both are built from.
//
// MSTVacuum's heuristic is grounded on the teacher's gridgraph package
// (adapted wholesale, per SPEC_FULL.md's DOMAIN STACK note, for the
// room's walkable-cell representation) and its prim_kruskal package: the
// remaining dirty cells plus the agent's own position are treated as a
// complete graph weighted by Manhattan distance, and the heuristic is the
// number of dirty cells plus that set's minimum spanning tree weight — a
// standard admissible lower bound on the "visit every dirty cell" tour.
package vacuum

import (
	"fmt"

	"github.com/katalvlaran/heurisearch/core"
	"github.com/katalvlaran/heurisearch/domain"
	"github.com/katalvlaran/heurisearch/gridgraph"
	"github.com/katalvlaran/heurisearch/prim_kruskal"
)

// MSTOp is the MST-variant's operator alphabet: four moves plus suck.
type MSTOp int

const (
	MSTNop MSTOp = iota - 1
	MoveNorth
	MoveEast
	MoveSouth
	MoveWest
	Suck
)

var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var opposite = [4]MSTOp{MoveSouth, MoveWest, MoveNorth, MoveEast}

// MSTVacuum is a vacuum-world instance on a rectangular room: Grid marks
// walkable cells (value >= LandThreshold is floor), InitDirty marks which
// floor cells start dirty.
type MSTVacuum struct {
	Grid      *gridgraph.GridGraph
	InitX     int
	InitY     int
	InitDirty []bool // indexed by Grid row-major cell index
}

// MSTState is an agent position plus the set of still-dirty cells.
type MSTState struct {
	X, Y  int
	Dirty []bool
}

func (s MSTState) clone() MSTState {
	d := make([]bool, len(s.Dirty))
	copy(d, s.Dirty)
	return MSTState{X: s.X, Y: s.Y, Dirty: d}
}

func (v MSTVacuum) InitialState() MSTState {
	return MSTState{X: v.InitX, Y: v.InitY, Dirty: append([]bool(nil), v.InitDirty...)}
}

func (v MSTVacuum) index(x, y int) int { return y*v.Grid.Width + x }

func (v MSTVacuum) walkable(x, y int) bool {
	return v.Grid.InBounds(x, y) && v.Grid.CellValues[y][x] >= v.Grid.LandThreshold
}

func manhattan(ax, ay, bx, by int) int64 {
	dx := int64(ax - bx)
	if dx < 0 {
		dx = -dx
	}
	dy := int64(ay - by)
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// H is the dirt-count-plus-MST-weight lower bound described in the
// package doc comment.
func (v MSTVacuum) H(s MSTState) int {
	type pt struct{ x, y int }
	var pts []pt
	for idx, dirty := range s.Dirty {
		if dirty {
			pts = append(pts, pt{idx % v.Grid.Width, idx / v.Grid.Width})
		}
	}
	if len(pts) == 0 {
		return 0
	}
	pts = append([]pt{{s.X, s.Y}}, pts...)

	g := core.NewGraph(core.WithWeighted())
	for i := range pts {
		_ = g.AddVertex(fmt.Sprintf("%d", i))
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			w := manhattan(pts[i].x, pts[i].y, pts[j].x, pts[j].y)
			_, _ = g.AddEdge(fmt.Sprintf("%d", i), fmt.Sprintf("%d", j), w)
		}
	}
	_, weight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		// A complete graph over >=1 vertices is always connected; this
		// only triggers on a malformed instance, which we treat as an
		// unreachable state rather than panicking the search.
		return len(pts) * v.Grid.Width * v.Grid.Height
	}
	return len(pts) - 1 + int(weight) // -1: the agent itself isn't dirt
}

func (v MSTVacuum) D(s MSTState) float64 {
	n := 0
	for _, dirty := range s.Dirty {
		if dirty {
			n++
		}
	}
	return float64(n)
}

func (v MSTVacuum) IsGoal(s MSTState) bool {
	for _, dirty := range s.Dirty {
		if dirty {
			return false
		}
	}
	return true
}

type mstOpsView struct{ at []MSTOp }

func (o mstOpsView) Size() int     { return len(o.at) }
func (o mstOpsView) At(i int) MSTOp { return o.at[i] }

func (v MSTVacuum) Operators(s MSTState) domain.Operators[MSTOp] {
	var at []MSTOp
	if s.Dirty[v.index(s.X, s.Y)] {
		at = append(at, Suck)
	}
	for dir, d := range deltas {
		if v.walkable(s.X+d[0], s.Y+d[1]) {
			at = append(at, MSTOp(dir))
		}
	}
	return mstOpsView{at: at}
}

func (v MSTVacuum) Apply(s MSTState, o MSTOp) (*domain.Edge[MSTState, MSTOp, int], error) {
	next := s.clone()
	switch {
	case o == Suck:
		idx := v.index(s.X, s.Y)
		if !s.Dirty[idx] {
			return nil, fmt.Errorf("vacuum: suck on a clean cell")
		}
		next.Dirty[idx] = false
		return domain.NewEdge[MSTState, MSTOp, int](next, 1, Suck, 1, func() {}), nil
	case o >= MoveNorth && o <= MoveWest:
		d := deltas[o]
		if !v.walkable(s.X+d[0], s.Y+d[1]) {
			return nil, fmt.Errorf("vacuum: move %d blocked", o)
		}
		next.X += d[0]
		next.Y += d[1]
		return domain.NewEdge[MSTState, MSTOp, int](next, 1, opposite[o], 1, func() {}), nil
	default:
		return nil, fmt.Errorf("vacuum: unknown operator %d", o)
	}
}

func (v MSTVacuum) Nop() MSTOp { return MSTNop }

func (v MSTVacuum) Pack(dst *string, src MSTState) {
	buf := make([]byte, 4+len(src.Dirty))
	buf[0] = byte(src.X)
	buf[1] = byte(src.X >> 8)
	buf[2] = byte(src.Y)
	buf[3] = byte(src.Y >> 8)
	for i, d := range src.Dirty {
		if d {
			buf[4+i] = 1
		}
	}
	*dst = string(buf)
}

func (v MSTVacuum) Unpack(packed string) MSTState {
	x := int(packed[0]) | int(packed[1])<<8
	y := int(packed[2]) | int(packed[3])<<8
	dirty := make([]bool, len(packed)-4)
	for i := range dirty {
		dirty[i] = packed[4+i] == 1
	}
	return MSTState{X: x, Y: y, Dirty: dirty}
}

func (v MSTVacuum) Equal(a, b string) bool { return a == b }

func (v MSTVacuum) Hash(packed string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(packed); i++ {
		h ^= uint64(packed[i])
		h *= 1099511628211
	}
	return h
}

func (v MSTVacuum) DumpState(out domain.Writer, s MSTState) {
	n := 0
	for _, d := range s.Dirty {
		if d {
			n++
		}
	}
	fmt.Fprintf(out, "agent=(%d,%d) dirty=%d\n", s.X, s.Y, n)
}

func (v MSTVacuum) PathCost(path []MSTState, ops []MSTOp) int {
	return len(ops)
}

var _ domain.Domain[MSTState, string, MSTOp, int] = MSTVacuum{}
