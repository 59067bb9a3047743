// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards vertices and the registration order.
//   - muEdgeAdj guards edges and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// Index is the zero-based registration position; it never changes for the
// lifetime of the graph and is the canonical tie-break key.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the registration position of this Vertex.
	Index int
}

// Edge represents a connection between two vertices.
//
// Seq is the numeric creation sequence behind ID ("e<Seq>"); ordering by Seq
// reproduces insertion order without parsing the textual ID.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// Seq is the monotonic creation number of this edge.
	Seq uint64

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight int64

	// Directed is true for one-way edges.
	Directed bool
}

// Other returns the endpoint of e opposite to id.
// For an id that is neither endpoint it returns e.To.
func (e *Edge) Other(id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and order
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed bool
	weighted bool

	nextEdgeID uint64             // atomic edge sequence
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs in registration order
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to] = Edge.ID; undirected edges are mirrored.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}
