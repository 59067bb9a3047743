// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/EdgeBetween/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edges() returns edges by Edge.Seq asc (insertion order).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Ensure endpoints via AddVertex (from first, then to).
//  3. Lock muEdgeAdj, reject a second edge between the same endpoints.
//  4. Generate the edge sequence atomically, store and link adjacency.
//  5. Mirror adjacency for undirected graphs.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	seq, eid := nextEdgeID(g)
	e := &Edge{ID: eid, Seq: seq, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	g.adjacencyList[from][to] = eid
	if !g.directed {
		g.adjacencyList[to][from] = eid
	}

	return eid, nil
}

// HasEdge reports whether an edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the edge connecting from and to, or ErrEdgeNotFound.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns all edges in insertion order (Edge.Seq asc).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// nextEdgeID reserves the next sequence number and returns it with its textual ID.
func nextEdgeID(g *Graph) (uint64, string) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return n, string(buf)
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Seq < edges[j].Seq })
}
