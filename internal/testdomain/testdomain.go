// Package testdomain provides a tiny domain.Domain implementation used by
// every engine package's unit tests: a one-dimensional integer line where
// the two operators are +1 and -1, a step costs 1, and the goal is a
// configurable target integer. It exists purely so the search engines can
// be tested against a domain whose optimal costs are trivial to compute by
// hand, without depending on any of the concrete puzzle domains.
package testdomain

import (
	"fmt"

	"github.com/katalvlaran/heurisearch/domain"
)

// Op is this domain's operator alphabet.
type Op int

const (
	Nop Op = iota
	Inc
	Dec
)

// Line is a one-dimensional integer search space: State == PackedState ==
// int, Cost == int, goal is reaching Target from the configured start.
type Line struct {
	Start, Target int
	// MaxAbs bounds the reachable range, used to keep state spaces used
	// by completeness tests finite.
	MaxAbs int
}

type ops struct{ at []Op }

func (o ops) Size() int  { return len(o.at) }
func (o ops) At(i int) Op { return o.at[i] }

func (l Line) InitialState() int { return l.Start }

func (l Line) H(s int) int {
	d := l.Target - s
	if d < 0 {
		d = -d
	}
	return d
}

func (l Line) D(s int) float64 { return float64(l.H(s)) }

func (l Line) IsGoal(s int) bool { return s == l.Target }

func (l Line) Pack(dst *int, src int) { *dst = src }

func (l Line) Unpack(p int) int { return p }

func (l Line) DumpState(out domain.Writer, s int) {
	fmt.Fprintf(out, "%d", s)
}

func (l Line) PathCost(path []int, opsSeq []Op) int {
	return len(opsSeq)
}

func (l Line) Operators(s int) domain.Operators[Op] {
	var avail []Op
	if s < l.MaxAbs {
		avail = append(avail, Inc)
	}
	if s > -l.MaxAbs {
		avail = append(avail, Dec)
	}
	return ops{at: avail}
}

func (l Line) Apply(s int, o Op) (*domain.Edge[int, Op, int], error) {
	switch o {
	case Inc:
		return domain.NewEdge[int, Op, int](s+1, 1, Dec, 1, func() {}), nil
	case Dec:
		return domain.NewEdge[int, Op, int](s-1, 1, Inc, 1, func() {}), nil
	default:
		return nil, fmt.Errorf("testdomain: unknown operator %d", o)
	}
}

func (l Line) Nop() Op { return Nop }

func (l Line) Equal(a, b int) bool { return a == b }

func (l Line) Hash(p int) uint64 { return uint64(p) }

var _ domain.Domain[int, int, Op, int] = Line{}
