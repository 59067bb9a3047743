// Package report projects a settled assignment and show order into flat
// records, writes them as CSV and renders a console summary.
package report

import (
	"github.com/katalvlaran/lineup/assign"
	"github.com/katalvlaran/lineup/order"
	"github.com/katalvlaran/lineup/roster"
)

// AssignmentRecord is one performer-segment relation.
type AssignmentRecord struct {
	Segment   string
	Performer string
	Rating    int
}

// PerformerSummaryRecord lists a performer's segments in assignment order.
type PerformerSummaryRecord struct {
	Performer  string
	Experience string
	Segments   []string
	Count      int
}

// OrderRecord is one slot of the show order. Position is 1-based.
type OrderRecord struct {
	Position int
	Segment  string
}

// Records is the full projection of one run.
type Records struct {
	Assignments []AssignmentRecord
	Performers  []PerformerSummaryRecord
	Order       []OrderRecord
}

// Project builds the records. Assignments follow segment registration order
// and then assignment order within a segment; performer summaries follow
// registration order. A nil show order yields no order records.
func Project(r *roster.Roster, a *assign.Assignment, show *order.ShowOrder) Records {
	var recs Records
	for _, seg := range r.Segments {
		for _, p := range a.PerformersOf(seg.Index) {
			recs.Assignments = append(recs.Assignments, AssignmentRecord{
				Segment:   seg.Name,
				Performer: r.Performers[p].Name,
				Rating:    r.Rating(p, seg.Index),
			})
		}
	}

	recs.Performers = make([]PerformerSummaryRecord, 0, len(r.Performers))
	for _, perf := range r.Performers {
		held := a.SegmentsOf(perf.Index)
		names := make([]string, 0, len(held))
		for _, s := range held {
			names = append(names, r.Segments[s].Name)
		}
		recs.Performers = append(recs.Performers, PerformerSummaryRecord{
			Performer:  perf.Name,
			Experience: perf.Experience,
			Segments:   names,
			Count:      len(names),
		})
	}

	if show != nil {
		recs.Order = make([]OrderRecord, 0, len(show.Segments))
		for i, name := range show.Segments {
			recs.Order = append(recs.Order, OrderRecord{Position: i + 1, Segment: name})
		}
	}

	return recs
}
