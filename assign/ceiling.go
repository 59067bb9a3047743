package assign

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/flow"
	"github.com/katalvlaran/lineup/roster"
)

const (
	ceilingSource = "source"
	ceilingSink   = "sink"
)

// CapacityCeiling returns the largest number of relations any assignment
// could reach, ignoring exclusion pairs, as a max-flow over
//
//	source → performer (performer max) → segment (1, rated and not refused) → sink (segment max).
//
// Excluded performers get no arcs.
func CapacityCeiling(ctx context.Context, r *roster.Roster, excluded []int) (int64, error) {
	skip := make(map[int]bool, len(excluded))
	for _, p := range excluded {
		skip[p] = true
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if err := g.AddVertex(ceilingSource); err != nil {
		return 0, err
	}
	if err := g.AddVertex(ceilingSink); err != nil {
		return 0, err
	}

	for _, perf := range r.Performers {
		if skip[perf.Index] {
			continue
		}
		pid := performerVertex(perf.Index)
		if _, err := g.AddEdge(ceilingSource, pid, int64(perf.Capacity.Max)); err != nil {
			return 0, fmt.Errorf("assign: ceiling arc for %q: %w", perf.Name, err)
		}
		for _, seg := range r.Segments {
			if seg.Rating(perf.Index) == 0 || perf.Refuses(seg.Index) {
				continue
			}
			if _, err := g.AddEdge(pid, segmentVertex(seg.Index), 1); err != nil {
				return 0, fmt.Errorf("assign: ceiling arc %q→%q: %w", perf.Name, seg.Name, err)
			}
		}
	}
	for _, seg := range r.Segments {
		if _, err := g.AddEdge(segmentVertex(seg.Index), ceilingSink, int64(seg.Capacity.Max)); err != nil {
			return 0, fmt.Errorf("assign: ceiling arc for %q: %w", seg.Name, err)
		}
	}

	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	ceiling, _, err := flow.Dinic(g, ceilingSource, ceilingSink, opts)
	if err != nil {
		return 0, fmt.Errorf("assign: capacity ceiling: %w", err)
	}

	return ceiling, nil
}

func performerVertex(i int) string { return fmt.Sprintf("p%d", i) }

func segmentVertex(i int) string { return fmt.Sprintf("s%d", i) }
