// Package prim_kruskal provides Kruskal's algorithm for computing the
// Minimum Spanning Tree (MST) of an undirected, weighted *core.Graph —
// the backbone of the vacuum domain's MST heuristic, which treats
// remaining dirty cells plus the agent's position as a graph and uses
// MST weight as an admissible lower bound on the cost to visit them all.
//
// Algorithm
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: sort all edges by weight, then iterate from smallest to
//     largest, using a Disjoint-Set (Union-Find) structure to merge
//     components, skipping edges whose endpoints are already connected.
//     Stops once |V|-1 edges have been added.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V+E) space.
//
//   - Determinism: graph.Edges() returns edges in ascending ID order; a
//     stable sort by weight makes tie-breaking predictable.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed, unweighted, or has mixed
//     per-edge direction overrides (MST requires purely undirected).
//   - ErrDisconnected: the graph has more than one vertex but is not
//     fully connected, so no spanning tree can cover all vertices, or the
//     graph has no vertices at all.
package prim_kruskal
