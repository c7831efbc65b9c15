package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/core"
	"github.com/katalvlaran/heurisearch/prim_kruskal"
)

// newWeightedGraph builds the same shape the vacuum domain's heuristic
// builds: a complete graph over n vertices named "0".."n-1".
func newWeightedGraph(t *testing.T, weights map[[2]int]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	seen := map[int]bool{}
	for pair := range weights {
		for _, v := range pair {
			if !seen[v] {
				if err := g.AddVertex(idOf(v)); err != nil {
					t.Fatalf("AddVertex: %v", err)
				}
				seen[v] = true
			}
		}
	}
	for pair, w := range weights {
		if _, err := g.AddEdge(idOf(pair[0]), idOf(pair[1]), w); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func idOf(i int) string {
	return string(rune('0' + i))
}

func TestKruskal_TriangleKeepsTwoCheapestEdges(t *testing.T) {
	g := newWeightedGraph(t, map[[2]int]int64{
		{0, 1}: 1,
		{1, 2}: 2,
		{0, 2}: 10,
	})
	edges, weight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		t.Fatalf("Kruskal: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2", len(edges))
	}
	if weight != 3 {
		t.Fatalf("weight = %d, want 3", weight)
	}
}

func TestKruskal_SingleVertexHasEmptyTree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddVertex("0"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	edges, weight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		t.Fatalf("Kruskal: %v", err)
	}
	if len(edges) != 0 || weight != 0 {
		t.Fatalf("Kruskal(single vertex) = (%v, %d), want (nil, 0)", edges, weight)
	}
}

func TestKruskal_DisconnectedGraphErrors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddVertex("0"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("1"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, _, err := prim_kruskal.Kruskal(g); err != prim_kruskal.ErrDisconnected {
		t.Fatalf("Kruskal(disconnected) error = %v, want ErrDisconnected", err)
	}
}

func TestKruskal_DirectedGraphIsInvalid(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	if err := g.AddVertex("0"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("1"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := g.AddEdge("0", "1", 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, _, err := prim_kruskal.Kruskal(g); err != prim_kruskal.ErrInvalidGraph {
		t.Fatalf("Kruskal(directed) error = %v, want ErrInvalidGraph", err)
	}
}
