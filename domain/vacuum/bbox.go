// BBoxVacuum is the second of vacuum.hpp's two incompatible definitions
// (spec.md §9): a bounding-box heuristic over remaining dirty cells, and
// a "weight" that increases every time a cell is cleaned, so cleaning
// gets more expensive to do late (grounded on original_source's
// `state.weight += d.cost_mod` after every Suck). The `Back` mode
// reproduces the "must return to the start cell when done" multigoal
// variant named in spec.md.
//
// original_source's Magic/MakeGoal operators and its "start_dirt"
// counter drive an out-of-band benchmark-goal-enumeration mode, not a
// normal state transition — the Edge constructor for its sibling Charge
// operator is left calling fatal() unconditionally in the original,
// confirming that corner of the header was aspirational scaffolding
// rather than a finished transition. This port reproduces the one part
// of the extension that changes the domain's actual contract — the
// return-to-start goal condition — and does not reproduce the
// benchmark-replay machinery.
package vacuum

import (
	"fmt"

	"github.com/katalvlaran/heurisearch/domain"
)

// BBoxOp is the bounding-box variant's operator alphabet.
type BBoxOp int

const (
	BBNop BBoxOp = iota - 1
	BBNorth
	BBEast
	BBSouth
	BBWest
	BBSuck
)

var bbDeltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var bbOpposite = [4]BBoxOp{BBSouth, BBWest, BBNorth, BBEast}

// BBoxVacuum is a vacuum-world instance on an open Width x Height room
// (no walls): initial agent position, initial dirty cells, a per-clean
// weight increment, and whether the agent must return to its start
// position once every cell is clean.
type BBoxVacuum struct {
	Width, Height int
	InitX, InitY  int
	InitDirty     []bool
	CostMod       int
	Back          bool
}

// BBoxState is an agent position, its current action weight, and the set
// of still-dirty cells.
type BBoxState struct {
	X, Y   int
	Weight int
	Dirty  []bool
}

func (s BBoxState) clone() BBoxState {
	d := make([]bool, len(s.Dirty))
	copy(d, s.Dirty)
	return BBoxState{X: s.X, Y: s.Y, Weight: s.Weight, Dirty: d}
}

func (v BBoxVacuum) InitialState() BBoxState {
	return BBoxState{X: v.InitX, Y: v.InitY, Weight: 1, Dirty: append([]bool(nil), v.InitDirty...)}
}

func (v BBoxVacuum) index(x, y int) int { return y*v.Width + x }

func (v BBoxVacuum) inBounds(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

func (v BBoxVacuum) ndirt(s BBoxState) int {
	n := 0
	for _, d := range s.Dirty {
		if d {
			n++
		}
	}
	return n
}

// boundingBox returns a lower bound on the work remaining: the number of
// cells still to visit, plus the bounding-box half-perimeter of their
// locations (plus the agent's own position) scaled by the current weight.
// When Back is set and every real cell is already clean, the start
// position is folded in as one more point still to visit.
func (v BBoxVacuum) boundingBox(s BBoxState) int {
	minx, maxx := s.X, s.X
	miny, maxy := s.Y, s.Y
	n := 0
	for idx, dirty := range s.Dirty {
		if !dirty {
			continue
		}
		n++
		x, y := idx%v.Width, idx/v.Width
		if x < minx {
			minx = x
		}
		if x > maxx {
			maxx = x
		}
		if y < miny {
			miny = y
		}
		if y > maxy {
			maxy = y
		}
	}
	if n == 0 {
		if !v.Back || (s.X == v.InitX && s.Y == v.InitY) {
			return 0
		}
		n = 1
		minx, maxx = min2(s.X, v.InitX), max2(s.X, v.InitX)
		miny, maxy = min2(s.Y, v.InitY), max2(s.Y, v.InitY)
	}
	return n + ((maxx - minx) + (maxy - miny))
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (v BBoxVacuum) H(s BBoxState) int {
	return v.boundingBox(s) * s.Weight
}

func (v BBoxVacuum) D(s BBoxState) float64 {
	return float64(v.boundingBox(s))
}

func (v BBoxVacuum) IsGoal(s BBoxState) bool {
	if v.ndirt(s) != 0 {
		return false
	}
	return !v.Back || (s.X == v.InitX && s.Y == v.InitY)
}

type bboxOpsView struct{ at []BBoxOp }

func (o bboxOpsView) Size() int      { return len(o.at) }
func (o bboxOpsView) At(i int) BBoxOp { return o.at[i] }

func (v BBoxVacuum) Operators(s BBoxState) domain.Operators[BBoxOp] {
	var at []BBoxOp
	if s.Dirty[v.index(s.X, s.Y)] {
		at = append(at, BBSuck)
	}
	for dir, d := range bbDeltas {
		if v.inBounds(s.X+d[0], s.Y+d[1]) {
			at = append(at, BBoxOp(dir))
		}
	}
	return bboxOpsView{at: at}
}

func (v BBoxVacuum) Apply(s BBoxState, o BBoxOp) (*domain.Edge[BBoxState, BBoxOp, int], error) {
	cost := s.Weight
	next := s.clone()
	switch {
	case o == BBSuck:
		idx := v.index(s.X, s.Y)
		if !s.Dirty[idx] {
			return nil, fmt.Errorf("vacuum: suck on a clean cell")
		}
		next.Dirty[idx] = false
		next.Weight += v.CostMod
		return domain.NewEdge[BBoxState, BBoxOp, int](next, cost, BBSuck, cost, func() {}), nil
	case o >= BBNorth && o <= BBWest:
		d := bbDeltas[o]
		if !v.inBounds(s.X+d[0], s.Y+d[1]) {
			return nil, fmt.Errorf("vacuum: move %d blocked", o)
		}
		next.X += d[0]
		next.Y += d[1]
		return domain.NewEdge[BBoxState, BBoxOp, int](next, cost, bbOpposite[o], cost, func() {}), nil
	default:
		return nil, fmt.Errorf("vacuum: unknown operator %d", o)
	}
}

func (v BBoxVacuum) Nop() BBoxOp { return BBNop }

func (v BBoxVacuum) Pack(dst *string, src BBoxState) {
	buf := make([]byte, 6+len(src.Dirty))
	buf[0], buf[1] = byte(src.X), byte(src.X>>8)
	buf[2], buf[3] = byte(src.Y), byte(src.Y>>8)
	buf[4], buf[5] = byte(src.Weight), byte(src.Weight>>8)
	for i, d := range src.Dirty {
		if d {
			buf[6+i] = 1
		}
	}
	*dst = string(buf)
}

func (v BBoxVacuum) Unpack(packed string) BBoxState {
	x := int(packed[0]) | int(packed[1])<<8
	y := int(packed[2]) | int(packed[3])<<8
	weight := int(packed[4]) | int(packed[5])<<8
	dirty := make([]bool, len(packed)-6)
	for i := range dirty {
		dirty[i] = packed[6+i] == 1
	}
	return BBoxState{X: x, Y: y, Weight: weight, Dirty: dirty}
}

func (v BBoxVacuum) Equal(a, b string) bool { return a == b }

func (v BBoxVacuum) Hash(packed string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(packed); i++ {
		h ^= uint64(packed[i])
		h *= 1099511628211
	}
	return h
}

func (v BBoxVacuum) DumpState(out domain.Writer, s BBoxState) {
	fmt.Fprintf(out, "agent=(%d,%d) weight=%d dirty=%d\n", s.X, s.Y, s.Weight, v.ndirt(s))
}

func (v BBoxVacuum) PathCost(path []BBoxState, ops []BBoxOp) int {
	total := 0
	for i := range ops {
		total += path[i].Weight
	}
	return total
}

var _ domain.Domain[BBoxState, string, BBoxOp, int] = BBoxVacuum{}
