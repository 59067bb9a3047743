// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Children are visited in vertex registration order (core.Graph.NeighborIDs),
// and forest traversal restarts from the first unvisited vertex in registration
// order, so the preorder of a fixed graph is fully reproducible.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbor lists are ordered per vertex).
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode, or a
//     non-empty startID in forest mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lineup/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g.
//
// In forest mode (WithFullTraversal) startID may be empty; when given, its tree
// is explored first. Returns the partial DFSResult together with any abort error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if (!dopts.FullTraversal || startID != "") && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Preorder: make([]string, 0, len(vertices)),
		Order:    make([]string, 0, len(vertices)),
		Depth:    make(map[string]int, len(vertices)),
		Parent:   make(map[string]string, len(vertices)),
		Visited:  make(map[string]bool, len(vertices)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	starts := vertices
	if !dopts.FullTraversal {
		starts = []string{startID}
	} else if startID != "" {
		starts = append([]string{startID}, vertices...)
	}

	for _, v := range starts {
		if res.Visited[v] {
			continue
		}
		res.Roots = append(res.Roots, v)
		if err := walker.traverse(v, 0); err != nil {
			return res, err
		}
	}
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}

	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
