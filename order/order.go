// Package order turns a conflict graph into a show order.
//
// The planner keeps a minimum spanning forest of the conflict graph, so the
// heaviest overlaps are the ones left out of the tree, and linearizes that
// forest by depth-first preorder. Each component starts at its first
// registered segment, children follow registration order and components
// follow each other in registration order of their roots.
//
// This is a heuristic for the minimum-overlap linear arrangement, not an
// exact solution.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/dfs"
	"github.com/katalvlaran/lineup/prim_kruskal"
)

// ErrNilGraph is returned when Plan receives a nil graph.
var ErrNilGraph = errors.New("order: graph is nil")

// ShowOrder is a total order over all segments plus the forest it came from.
type ShowOrder struct {
	// Segments lists every segment exactly once, in performance order.
	Segments []string

	// ForestEdges are the retained spanning-forest edges.
	ForestEdges []core.Edge

	// TotalWeight is the sum of ForestEdges weights.
	TotalWeight int64

	// Components is the number of trees in the forest, isolated segments included.
	Components int

	// AdjacentOverlap sums the conflict weight of consecutive segments.
	AdjacentOverlap int64
}

// Option configures Plan.
type Option func(*options)

type options struct {
	ctx    context.Context
	method string
}

// WithMethod selects prim_kruskal.MethodKruskal (default) or MethodPrim.
func WithMethod(method string) Option {
	return func(o *options) {
		o.method = method
	}
}

// WithContext sets the context checked during traversal.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Plan computes the show order of g.
//
// Steps:
//  1. Spanning forest via prim_kruskal.Compute (ties by edge insertion order).
//  2. Materialize the forest over all vertices of g.
//  3. dfs.DFS with full traversal; preorder is the show order.
//  4. Score consecutive pairs against g.
func Plan(g *core.Graph, opts ...Option) (*ShowOrder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := options{ctx: context.Background(), method: prim_kruskal.MethodKruskal}
	for _, fn := range opts {
		fn(&o)
	}

	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: o.method})
	if err != nil {
		return nil, fmt.Errorf("order: spanning forest: %w", err)
	}

	forest := g.CloneEmpty()
	for _, e := range edges {
		if _, err = forest.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("order: forest edge %s: %w", e.ID, err)
		}
	}

	out := &ShowOrder{ForestEdges: edges, TotalWeight: total}
	if g.VertexCount() == 0 {
		return out, nil
	}

	res, err := dfs.DFS(forest, "", dfs.WithFullTraversal(), dfs.WithContext(o.ctx))
	if err != nil {
		return nil, fmt.Errorf("order: traversal: %w", err)
	}
	out.Segments = res.Preorder
	out.Components = len(res.Roots)
	out.AdjacentOverlap = adjacentWeight(g, out.Segments)

	return out, nil
}

// adjacentWeight sums the weights of g's edges between consecutive ids.
func adjacentWeight(g *core.Graph, ids []string) int64 {
	var total int64
	for i := 1; i < len(ids); i++ {
		if e, err := g.EdgeBetween(ids[i-1], ids[i]); err == nil {
			total += e.Weight
		}
	}

	return total
}
