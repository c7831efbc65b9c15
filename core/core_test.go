package core_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/core"
)

func TestNewGraph_WeightedFlagReflectsOptions(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if !g.Weighted() {
		t.Fatal("Weighted() = false, want true after WithWeighted()")
	}
	if g.Directed() {
		t.Fatal("Directed() = true, want false by default")
	}
}

func TestGraph_AddEdgeMirrorsUndirectedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("b"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "a") {
		t.Fatal("undirected AddEdge should make HasEdge true in both directions")
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestGraph_AddEdgeRejectsUnweightedNonzero(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("b"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 3); err != core.ErrBadWeight {
		t.Fatalf("AddEdge(unweighted, weight=3) error = %v, want ErrBadWeight", err)
	}
}

func TestGraph_VerticesAreSorted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"c", "a", "b"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	got := g.Vertices()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i] != id {
			t.Fatalf("Vertices() = %v, want %v", got, want)
		}
	}
}

func TestGraph_HasDirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("b"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if g.HasDirectedEdges() {
		t.Fatal("a fresh graph with no edges must not report directed edges")
	}
	if _, err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if g.HasDirectedEdges() {
		t.Fatal("undirected AddEdge should not set Edge.Directed")
	}
}
