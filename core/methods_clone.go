// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones keep vertex registration order and edge sequence numbers.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices
// (same registration order), but no edges.
//
// The edge counter is carried over so edges added to the clone never reuse an
// ID that exists in the source.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.cloneVerticesLocked()
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Edge IDs and sequence numbers are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.cloneVerticesLocked()
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.adjacencyList[e.From][e.To] = eid
		if !e.Directed {
			clone.adjacencyList[e.To][e.From] = eid
		}
	}

	return clone
}

// cloneVerticesLocked copies flags, counter and vertices; callers hold both read locks.
func (g *Graph) cloneVerticesLocked() *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for _, id := range g.order {
		v := g.vertices[id]
		clone.vertices[id] = &Vertex{ID: v.ID, Index: v.Index}
		clone.adjacencyList[id] = make(map[string]string)
	}

	return clone
}
