// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	// Return false to skip that neighbor.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, restarts from every unvisited vertex in
	// registration order after the start vertex's tree is exhausted.
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit, no filter, and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbor IDs; rejected neighbors are counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Preorder records vertices in discovery order.
	Preorder []string

	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Roots lists the start vertex of every tree, in traversal order.
	Roots []string

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[string]int

	// Parent maps each non-root vertex to the vertex it was discovered from.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
