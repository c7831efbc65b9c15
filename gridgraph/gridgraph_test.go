package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/gridgraph"
)

func TestNewGridGraph_RejectsEmptyGrid(t *testing.T) {
	if _, err := gridgraph.NewGridGraph(nil, gridgraph.DefaultGridOptions()); err != gridgraph.ErrEmptyGrid {
		t.Fatalf("NewGridGraph(nil) error = %v, want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.NewGridGraph([][]int{{}}, gridgraph.DefaultGridOptions()); err != gridgraph.ErrEmptyGrid {
		t.Fatalf("NewGridGraph([[]]) error = %v, want ErrEmptyGrid", err)
	}
}

func TestNewGridGraph_RejectsNonRectangular(t *testing.T) {
	values := [][]int{{1, 1, 1}, {1, 1}}
	if _, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions()); err != gridgraph.ErrNonRectangular {
		t.Fatalf("NewGridGraph(ragged) error = %v, want ErrNonRectangular", err)
	}
}

func TestNewGridGraph_DeepCopiesInput(t *testing.T) {
	values := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph: %v", err)
	}
	values[0][0] = 9
	if gg.CellValues[0][0] == 9 {
		t.Fatal("GridGraph.CellValues aliases the caller's slice, want a deep copy")
	}
}

func TestGridGraph_InBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph: %v", err)
	}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := gg.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestDefaultGridOptions(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	if opts.LandThreshold != 1 {
		t.Errorf("LandThreshold = %d, want 1", opts.LandThreshold)
	}
	if opts.Conn != gridgraph.Conn4 {
		t.Errorf("Conn = %v, want Conn4", opts.Conn)
	}
}
