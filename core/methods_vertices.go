// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in registration order.
//
// Concurrency:
//   - Vertex catalog and order protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it
//     at the next registration index.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Re-adding an existing vertex keeps its original Index.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Index: len(g.order)}
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexIndex returns the registration index of id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) VertexIndex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return -1, ErrVertexNotFound
	}

	return v.Index, nil
}

// Vertices returns all vertex IDs in registration order.
// The returned slice is a fresh copy; callers may retain and mutate it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}
