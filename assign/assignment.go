package assign

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineup/roster"
)

var (
	// ErrFrozen is returned when adding to a frozen Assignment.
	ErrFrozen = errors.New("assign: assignment is frozen")

	// ErrAlreadyAssigned is returned when the pair is already related.
	ErrAlreadyAssigned = errors.New("assign: pair already assigned")

	// ErrIndexOutOfRange is returned for performer or segment indices outside the table.
	ErrIndexOutOfRange = errors.New("assign: index out of range")
)

// Assignment is the performer↔segment relation table. Both sides keep their
// entries in assignment order; a dense membership matrix answers Has in O(1).
type Assignment struct {
	segments int
	byPerf   [][]int
	bySeg    [][]int
	member   []bool
	size     int
	frozen   bool
}

// NewAssignment returns an empty table for the given dimensions.
func NewAssignment(performers, segments int) *Assignment {
	return &Assignment{
		segments: segments,
		byPerf:   make([][]int, performers),
		bySeg:    make([][]int, segments),
		member:   make([]bool, performers*segments),
	}
}

// Add relates performer p and segment s.
func (a *Assignment) Add(p, s int) error {
	if a.frozen {
		return ErrFrozen
	}
	if !a.inRange(p, s) {
		return fmt.Errorf("%w: performer %d, segment %d", ErrIndexOutOfRange, p, s)
	}
	cell := p*a.segments + s
	if a.member[cell] {
		return ErrAlreadyAssigned
	}
	a.member[cell] = true
	a.byPerf[p] = append(a.byPerf[p], s)
	a.bySeg[s] = append(a.bySeg[s], p)
	a.size++

	return nil
}

// Has reports whether p and s are related.
func (a *Assignment) Has(p, s int) bool {
	return a.inRange(p, s) && a.member[p*a.segments+s]
}

// SegmentsOf returns a copy of p's segments in assignment order.
func (a *Assignment) SegmentsOf(p int) []int {
	if p < 0 || p >= len(a.byPerf) {
		return nil
	}

	return append([]int(nil), a.byPerf[p]...)
}

// PerformersOf returns a copy of s's performers in assignment order.
func (a *Assignment) PerformersOf(s int) []int {
	if s < 0 || s >= len(a.bySeg) {
		return nil
	}

	return append([]int(nil), a.bySeg[s]...)
}

// PerformerLoad returns the number of segments p holds.
func (a *Assignment) PerformerLoad(p int) int { return len(a.byPerf[p]) }

// SegmentLoad returns the number of performers s holds.
func (a *Assignment) SegmentLoad(s int) int { return len(a.bySeg[s]) }

// Len returns the number of relations.
func (a *Assignment) Len() int { return a.size }

// Performers returns the performer dimension.
func (a *Assignment) Performers() int { return len(a.byPerf) }

// Segments returns the segment dimension.
func (a *Assignment) Segments() int { return a.segments }

// Freeze makes the table read-only.
func (a *Assignment) Freeze() { a.frozen = true }

// Frozen reports whether Freeze was called.
func (a *Assignment) Frozen() bool { return a.frozen }

// Clone returns an unfrozen deep copy.
func (a *Assignment) Clone() *Assignment {
	c := &Assignment{
		segments: a.segments,
		byPerf:   make([][]int, len(a.byPerf)),
		bySeg:    make([][]int, len(a.bySeg)),
		member:   append([]bool(nil), a.member...),
		size:     a.size,
	}
	for i, l := range a.byPerf {
		c.byPerf[i] = append([]int(nil), l...)
	}
	for i, l := range a.bySeg {
		c.bySeg[i] = append([]int(nil), l...)
	}

	return c
}

// UnderFilled reports segments below their capacity minimum and assigned
// performers below theirs. Performers with no segment at all are reported
// elsewhere as unassigned.
func (a *Assignment) UnderFilled(r *roster.Roster) []roster.Warning {
	var out []roster.Warning
	for _, s := range r.Segments {
		if n := a.SegmentLoad(s.Index); n < s.Capacity.Min {
			out = append(out, roster.Warning{
				Kind:    roster.WarnUnderMin,
				Subject: s.Name,
				Detail:  fmt.Sprintf("segment has %d of at least %d performers", n, s.Capacity.Min),
			})
		}
	}
	for _, p := range r.Performers {
		if n := a.PerformerLoad(p.Index); n > 0 && n < p.Capacity.Min {
			out = append(out, roster.Warning{
				Kind:    roster.WarnUnderMin,
				Subject: p.Name,
				Detail:  fmt.Sprintf("performer has %d of at least %d segments", n, p.Capacity.Min),
			})
		}
	}

	return out
}

func (a *Assignment) inRange(p, s int) bool {
	return p >= 0 && p < len(a.byPerf) && s >= 0 && s < a.segments
}
