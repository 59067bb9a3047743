// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors() sorts by Edge.Seq asc.
//   - NeighborIDs() returns unique IDs in registration order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the edges leaving id: outgoing edges in a directed graph,
// incident edges in an undirected one.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect edges from adjacencyList[id] and sort by Edge.Seq.
//
// Returned pointers refer to live catalog edges; treat them as read-only.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		out = append(out, g.edges[eid])
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in registration order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to := range g.adjacencyList[id] {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool {
		return g.vertices[out[i]].Index < g.vertices[out[j]].Index
	})

	return out, nil
}

// Degree returns the number of edges leaving id (see Neighbors for the policy).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacencyList[id]), nil
}
