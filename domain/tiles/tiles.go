// Package tiles implements the sliding-tile puzzle domain (spec §2, §9
// example table): tiles 1..N-1 and one blank arranged on a Rows x Cols
// grid, a move operator that slides an orthogonally-adjacent tile into the
// blank, and the identity layout as the goal. Grounded on
// original_source/tiles/mdist.hpp's Manhattan-distance heuristic (the
// "mdist" variant named in the original file's own name), generalized
// from its compile-time Ntiles constant to a runtime Rows x Cols board.
package tiles

import (
	"fmt"

	"github.com/katalvlaran/heurisearch/domain"
)

// Tiles is a sliding-tile instance: a Rows x Cols board (N = Rows*Cols
// positions, tiles 0..N-1 where 0 is the blank) and a per-tile move cost
// (nil means unit cost for every tile).
type Tiles struct {
	Rows, Cols int
	Init       []int
	Costs      []int // optional, indexed by tile value; nil means unit cost
}

func (t Tiles) n() int { return t.Rows * t.Cols }

func (t Tiles) cost(tile int) int {
	if t.Costs == nil {
		return 1
	}
	return t.Costs[tile]
}

// State is a board layout: Board[pos] is the tile at pos, Blank is the
// position currently holding tile 0.
type State struct {
	Board []int
	Blank int
}

func (s State) clone() State {
	b := make([]int, len(s.Board))
	copy(b, s.Board)
	return State{Board: b, Blank: s.Blank}
}

func (t Tiles) InitialState() State {
	board := append([]int(nil), t.Init...)
	blank := 0
	for i, v := range board {
		if v == 0 {
			blank = i
			break
		}
	}
	return State{Board: board, Blank: blank}
}

func (t Tiles) rc(pos int) (r, c int) { return pos / t.Cols, pos % t.Cols }

func (t Tiles) manhattan(tile, pos int) int {
	tr, tc := t.rc(tile) // goal position of a tile is its own value
	pr, pc := t.rc(pos)
	dr := tr - pr
	if dr < 0 {
		dr = -dr
	}
	dc := tc - pc
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func (t Tiles) H(s State) int {
	h := 0
	for pos, tile := range s.Board {
		if tile == 0 {
			continue
		}
		h += t.cost(tile) * t.manhattan(tile, pos)
	}
	return h
}

func (t Tiles) D(s State) float64 {
	d := 0
	for pos, tile := range s.Board {
		if tile == 0 {
			continue
		}
		d += t.manhattan(tile, pos)
	}
	return float64(d)
}

func (t Tiles) IsGoal(s State) bool {
	for pos, tile := range s.Board {
		if pos == 0 {
			continue
		}
		if tile != pos {
			return false
		}
	}
	return true
}

type opsView struct{ at []int }

func (o opsView) Size() int { return len(o.at) }
func (o opsView) At(i int) int { return o.at[i] }

func (t Tiles) Operators(s State) domain.Operators[int] {
	r, c := t.rc(s.Blank)
	var at []int
	if r > 0 {
		at = append(at, s.Blank-t.Cols)
	}
	if r < t.Rows-1 {
		at = append(at, s.Blank+t.Cols)
	}
	if c > 0 {
		at = append(at, s.Blank-1)
	}
	if c < t.Cols-1 {
		at = append(at, s.Blank+1)
	}
	return opsView{at: at}
}

// Apply slides the tile at board position o into the blank.
func (t Tiles) Apply(s State, o int) (*domain.Edge[State, int, int], error) {
	if o < 0 || o >= len(s.Board) {
		return nil, fmt.Errorf("tiles: operator %d out of range", o)
	}
	tile := s.Board[o]
	if tile == 0 {
		return nil, fmt.Errorf("tiles: operator %d does not name a movable tile", o)
	}
	cost := t.cost(tile)
	next := s.clone()
	next.Board[s.Blank] = tile
	next.Board[o] = 0
	next.Blank = o
	return domain.NewEdge[State, int, int](next, cost, s.Blank, cost, func() {}), nil
}

func (t Tiles) Nop() int { return -1 }

func (t Tiles) Pack(dst *string, src State) {
	buf := make([]byte, len(src.Board))
	for i, v := range src.Board {
		buf[i] = byte(v)
	}
	*dst = string(buf)
}

func (t Tiles) Unpack(packed string) State {
	board := make([]int, len(packed))
	blank := 0
	for i := 0; i < len(packed); i++ {
		board[i] = int(packed[i])
		if board[i] == 0 {
			blank = i
		}
	}
	return State{Board: board, Blank: blank}
}

func (t Tiles) Equal(a, b string) bool { return a == b }

func (t Tiles) Hash(packed string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(packed); i++ {
		h ^= uint64(packed[i])
		h *= 1099511628211
	}
	return h
}

func (t Tiles) DumpState(out domain.Writer, s State) {
	for i, v := range s.Board {
		fmt.Fprintf(out, "%d ", v)
		if (i+1)%t.Cols == 0 {
			fmt.Fprintln(out)
		}
	}
}

func (t Tiles) PathCost(path []State, ops []int) int {
	total := 0
	for i, op := range ops {
		total += t.cost(path[i].Board[op])
	}
	return total
}

var _ domain.Domain[State, string, int, int] = Tiles{}
