// Package pancake implements the pancake-sorting domain (spec §2, §9
// example table): a stack of N pancakes identified by size, where the one
// operator family flips the top op+1 pancakes (reversing a prefix of the
// stack), and the goal is the identity ordering. Grounded on
// original_source/pancake/pancake.hpp, including its "gap" heuristic: a
// pair of adjacent pancakes (or the last pancake against the table) is a
// gap when their sizes are not consecutive, and every cost function here
// reduces to counting and weighting those gaps.
package pancake

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heurisearch/domain"
)

// CostKind selects one of the six edge-cost functions
// original_source/pancake/pancake.hpp's `cost` field family supports.
type CostKind int

const (
	// Unit costs every flip 1, regardless of size or position.
	Unit CostKind = iota
	// Heavy costs a flip by the number of pancakes it flips (op+1). Its
	// gap weight in H is the smaller pancake's size at the gap, plus one.
	Heavy
	// Sqrt costs the ceiling of the square root of Heavy's weight.
	Sqrt
	// Inverse costs the reciprocal of Heavy's weight.
	Inverse
	// Reverse costs a flip by its distance from the bottom of the stack
	// rather than by pancake size.
	Reverse
	// RevInv costs the reciprocal of Reverse's weight.
	RevInv
)

// Op is a flip operator: flip the prefix [0, Op] of the stack, 1 <= Op <=
// N-1. Op 0 is never generated (flipping a single pancake is a no-op).
type Op int

// Nop is the sentinel "no operator" value.
const Nop Op = 0

// Pancake is a pancake-sorting instance: N pancakes, identity goal
// ordering, one cost function shared by every flip. Init is the starting
// permutation; a nil Init defaults to the identity (already-sorted) stack,
// which keeps a zero-value Pancake usable directly in tests.
type Pancake struct {
	N    int
	Cost CostKind
	Init []int
}

// State is a stack of pancake sizes, index 0 is the top of the stack.
// Cakes[i] == i for every i in the goal state.
type State struct {
	Cakes []int
}

// clone returns an independent copy, used where Apply must not alias the
// caller's slice across Release.
func (s State) clone() State {
	c := make([]int, len(s.Cakes))
	copy(c, s.Cakes)
	return State{Cakes: c}
}

func (p Pancake) InitialState() State {
	if p.Init != nil {
		return State{Cakes: append([]int(nil), p.Init...)}
	}
	c := make([]int, p.N)
	for i := range c {
		c[i] = i
	}
	return State{Cakes: c}
}

// weight returns the cost contribution attributed to breaking the stack
// just after position i, where a is Cakes[i] and b is Cakes[i+1], or the
// stack size N if i is the last position (the "off the table" gap).
func (p Pancake) weight(i int, a, b int) float64 {
	switch p.Cost {
	case Unit:
		return 1
	case Heavy:
		m := a
		if b < m {
			m = b
		}
		return float64(m + 1)
	case Sqrt:
		m := a
		if b < m {
			m = b
		}
		return math.Ceil(math.Sqrt(float64(m + 1)))
	case Inverse:
		m := a
		if b < m {
			m = b
		}
		return 1 / float64(m+1)
	case Reverse:
		return float64(p.N - i)
	case RevInv:
		return 1 / float64(p.N-i)
	default:
		return 1
	}
}

// isGap reports whether positions i and i+1 (or i and the table, if i is
// the last index) are not size-consecutive.
func (p Pancake) isGap(cakes []int, i int) bool {
	n := len(cakes)
	if i == n-1 {
		return cakes[n-1] != n-1
	}
	d := cakes[i] - cakes[i+1]
	if d < 0 {
		d = -d
	}
	return d != 1
}

// gapCost is the weight contributed by position i if it is currently a
// gap, else 0. The "b" side is N itself (acting as the INT_MAX sentinel
// original_source/pancake/pancake.hpp used, since any real pancake size is
// smaller) when i is off the end of the stack.
func (p Pancake) gapCost(cakes []int, i int) float64 {
	n := len(cakes)
	a := cakes[i]
	b := n
	if i != n-1 {
		b = cakes[i+1]
	}
	return p.weight(i, a, b)
}

func (p Pancake) H(s State) float64 {
	var total float64
	for i := range s.Cakes {
		if p.isGap(s.Cakes, i) {
			total += p.gapCost(s.Cakes, i)
		}
	}
	return total
}

func (p Pancake) D(s State) float64 {
	var gaps float64
	for i := range s.Cakes {
		if p.isGap(s.Cakes, i) {
			gaps++
		}
	}
	return gaps
}

func (p Pancake) IsGoal(s State) bool {
	return p.H(s) == 0
}

func (p Pancake) Pack(dst *string, src State) {
	buf := make([]byte, len(src.Cakes))
	for i, c := range src.Cakes {
		buf[i] = byte(c)
	}
	*dst = string(buf)
}

func (p Pancake) Unpack(packed string) State {
	cakes := make([]int, len(packed))
	for i := 0; i < len(packed); i++ {
		cakes[i] = int(packed[i])
	}
	return State{Cakes: cakes}
}

func (p Pancake) DumpState(out domain.Writer, s State) {
	for i, c := range s.Cakes {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprintf(out, "%d", c)
	}
	fmt.Fprintln(out)
}

func (p Pancake) PathCost(path []State, ops []Op) float64 {
	var total float64
	for i, op := range ops {
		total += p.flipCost(path[i].Cakes, int(op))
	}
	return total
}

// flipCost is the cost of flipping the prefix [0, op] of cakes. Heavy,
// Sqrt and Inverse are keyed by the flipped prefix length op+1; the other
// kinds charge the gap weight at the break point.
func (p Pancake) flipCost(cakes []int, op int) float64 {
	k := float64(op + 1)
	switch p.Cost {
	case Heavy:
		return k
	case Sqrt:
		return math.Ceil(math.Sqrt(k))
	case Inverse:
		return 1 / k
	default:
		return p.gapCost(cakes, op)
	}
}

type opsView struct{ n int }

func (o opsView) Size() int { return o.n }
func (o opsView) At(i int) Op { return Op(i + 1) }

func (p Pancake) Operators(s State) domain.Operators[Op] {
	return opsView{n: len(s.Cakes) - 1}
}

func (p Pancake) Apply(s State, o Op) (*domain.Edge[State, Op, float64], error) {
	if o < 1 || int(o) > len(s.Cakes)-1 {
		return nil, fmt.Errorf("pancake: operator %d out of range", o)
	}
	cost := p.flipCost(s.Cakes, int(o))
	next := s.clone()
	flip(next.Cakes, int(o))
	return domain.NewEdge[State, Op, float64](next, cost, o, cost, func() {}), nil
}

// flip reverses cakes[0:op+1] in place.
func flip(cakes []int, op int) {
	for i, j := 0, op; i < j; i, j = i+1, j-1 {
		cakes[i], cakes[j] = cakes[j], cakes[i]
	}
}

func (p Pancake) Nop() Op { return Nop }

func (p Pancake) Equal(a, b string) bool { return a == b }

func (p Pancake) Hash(packed string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(packed); i++ {
		h ^= uint64(packed[i])
		h *= 1099511628211
	}
	return h
}

var _ domain.Domain[State, string, Op, float64] = Pancake{}
