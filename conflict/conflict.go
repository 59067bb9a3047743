// Package conflict builds the segment conflict graph: one vertex per
// segment, one edge per pair of segments sharing performers, weighted by
// the number of shared performers.
package conflict

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineup/assign"
	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/roster"
)

// ErrShapeMismatch is returned when the assignment dimensions do not match the roster.
var ErrShapeMismatch = errors.New("conflict: assignment does not match roster")

// Build returns an undirected weighted graph over all segments of r.
//
// Vertices are added in registration order, isolated segments included.
// Edges are added for pairs (i<j) in lexicographic registration order, so the
// edge sequence gives a stable tie-break order to spanning-tree algorithms.
//
// Complexity: O(S²·P) time, O(S + E) memory.
func Build(r *roster.Roster, a *assign.Assignment) (*core.Graph, error) {
	if a.Segments() != len(r.Segments) || a.Performers() != len(r.Performers) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, a.Performers(), a.Segments(), len(r.Performers), len(r.Segments))
	}

	g := core.NewGraph(core.WithWeighted())
	for _, s := range r.Segments {
		if err := g.AddVertex(s.Name); err != nil {
			return nil, fmt.Errorf("conflict: segment %d: %w", s.Index, err)
		}
	}

	for i, si := range r.Segments {
		for _, sj := range r.Segments[i+1:] {
			w := Overlap(a, si.Index, sj.Index)
			if w == 0 {
				continue
			}
			if _, err := g.AddEdge(si.Name, sj.Name, int64(w)); err != nil {
				return nil, fmt.Errorf("conflict: edge %q—%q: %w", si.Name, sj.Name, err)
			}
		}
	}

	return g, nil
}

// Overlap returns |assigned(s1) ∩ assigned(s2)|.
func Overlap(a *assign.Assignment, s1, s2 int) int {
	shared := 0
	for _, p := range a.PerformersOf(s1) {
		if a.Has(p, s2) {
			shared++
		}
	}

	return shared
}

// AdjacentOverlap sums Overlap over consecutive segments of order.
// Unknown names contribute nothing.
func AdjacentOverlap(r *roster.Roster, a *assign.Assignment, order []string) int {
	total := 0
	for i := 1; i < len(order); i++ {
		s1, ok1 := r.SegmentIndex(order[i-1])
		s2, ok2 := r.SegmentIndex(order[i])
		if !ok1 || !ok2 {
			continue
		}
		total += Overlap(a, s1, s2)
	}

	return total
}
