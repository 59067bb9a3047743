// Package prim_kruskal defines configuration options and sentinel errors for
// spanning-forest computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineup/core"
)

// ErrInvalidGraph indicates that forest algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: spanning forest requires undirected, weighted graph")

// ErrUnknownMethod indicates MSTOptions.Method names no supported algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm to run and, for Prim, the first root.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the first vertex Prim grows from. Empty means the first
	// registered vertex. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the first root for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodKruskal || m == MethodPrim
}

// Compute selects and runs the forest algorithm based on opts.Method.
//
// Returns the forest edges, their total weight, and ErrUnknownMethod for an
// unsupported method name (wrapped with the offending value).
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate applies the shared graph admission rules.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}

	return nil
}
