// Package prim_kruskal computes minimum spanning forests on an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - A minimum spanning forest (MSF) of G = (V, E) is a subset F ⊆ E that
//     spans every connected component of G with a tree and minimizes the sum
//     of weights in F. On a connected graph it is the minimum spanning tree.
//
//   - lineup uses the forest as the skeleton of the show order: segments that
//     share few performers end up as tree neighbors, and a depth-first
//     preorder over the forest (package dfs) turns it into a running order.
//     Conflict graphs are routinely disconnected (segments with disjoint casts),
//     so both algorithms span every component instead of failing.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: take edges in insertion order, stable-sort by weight, and merge
//     components with a disjoint-set (union by rank, path compression).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, int64, error)
//
//   - Strategy: grow a tree from root with a min-heap of frontier edges; when the
//     heap drains, restart from the next unvisited vertex in registration order.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Determinism
//
//   - Kruskal breaks weight ties by Edge.Seq (the order the conflict graph
//     inserted its edges), because the sort is stable over core.Graph.Edges().
//   - Prim's heap orders by (Weight, Edge.Seq); components are started in
//     vertex registration order.
//
// Both algorithms return forests of identical total weight; the chosen edge
// sets can differ only between equal-weight alternatives.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed, or unweighted.
//   - core.ErrVertexNotFound (Prim only): a non-empty root is not in the graph.
//
// An empty graph yields an empty forest with zero weight and no error.
package prim_kruskal
