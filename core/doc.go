// Package core provides the thread-safe in-memory Graph used by the lineup
// engines: the segment conflict graph, the spanning forest derived from it,
// and the capacity networks solved by package flow.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Constant-time edge lookups via nested maps:
//     adjacencyList[from][to] = edgeID
//   - Monotonic Edge.ID generation ("e1", "e2", …) with a numeric Seq
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
// Unlike a general purpose graph library, iteration follows *registration*
// order rather than lexicographic order:
//
//	Vertices()    – vertices in the order they were first added
//	Edges()       – edges in the order they were added (Edge.Seq asc)
//	Neighbors()   – incident edges by Edge.Seq asc
//	NeighborIDs() – adjacent vertex IDs by registration order
//
// Roster order is the tie-break every later stage relies on, so a conflict
// graph built twice from the same assignment enumerates identically.
//
// Self-loops and parallel edges are always rejected (ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed): neither has a meaning for segment overlap or for a
// bipartite capacity network.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
