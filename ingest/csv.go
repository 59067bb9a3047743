package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lineup/roster"
)

// Column aliases, matched case-insensitively against the header row.
var (
	nameColumns        = []string{"name", "performer", "dancer"}
	experienceColumns  = []string{"experience"}
	performerCapacity  = []string{"dances", "capacity"}
	mostColumns        = []string{"most"}
	okayColumns        = []string{"okay"}
	noColumns          = []string{"no"}
	segmentNameColumns = []string{"dance", "segment", "name"}
	segmentCapacity    = []string{"numdancers", "capacity", "size"}
)

// header indexes a CSV header row.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: header: %w", err)
	}
	h := make(header, len(row))
	for i, col := range row {
		h[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))] = i
	}

	return h, nil
}

// find returns the index of the first alias present, or -1.
func (h header) find(aliases []string) int {
	for _, a := range aliases {
		if i, ok := h[a]; ok {
			return i
		}
	}

	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return row[i]
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return cr
}

// ReadPerformersCSV reads the performer sheet:
//
//	Name,Experience,Dances,Most,Okay,No
//
// List cells are comma-separated segment names; blank and "nan" cells are empty.
func ReadPerformersCSV(r io.Reader) ([]roster.PerformerRecord, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	name := h.find(nameColumns)
	if name < 0 {
		return nil, fmt.Errorf("%w: name", ErrMissingColumn)
	}
	exp, capCol := h.find(experienceColumns), h.find(performerCapacity)
	most, okay, no := h.find(mostColumns), h.find(okayColumns), h.find(noColumns)

	var out []roster.PerformerRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", line, err)
		}
		rec := roster.PerformerRecord{
			Name:       cleanCell(cell(row, name)),
			Experience: cleanCell(cell(row, exp)),
			Capacity:   cleanCell(cell(row, capCol)),
			Most:       splitList(cell(row, most)),
			Okay:       splitList(cell(row, okay)),
			No:         splitList(cell(row, no)),
		}
		if err = checkPerformer(line, rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// ReadSegmentsCSV reads the segment sheet:
//
//	Dance,NumDancers,Rating_5,Rating_4,Rating_3,Rating_2,Rating_1
//
// Rating cells are comma-separated performer names.
func ReadSegmentsCSV(r io.Reader) ([]roster.SegmentRecord, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	name := h.find(segmentNameColumns)
	if name < 0 {
		return nil, fmt.Errorf("%w: dance", ErrMissingColumn)
	}
	capCol := h.find(segmentCapacity)
	var tierCols [roster.MaxTier + 1]int
	for t := roster.MinTier; t <= roster.MaxTier; t++ {
		tierCols[t] = h.find([]string{fmt.Sprintf("rating_%d", t)})
	}

	var out []roster.SegmentRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", line, err)
		}
		rec := roster.SegmentRecord{
			Name:     cleanCell(cell(row, name)),
			Capacity: normalizeCount(cell(row, capCol)),
			Ratings:  make(map[int][]string),
		}
		for t := roster.MinTier; t <= roster.MaxTier; t++ {
			if names := splitList(cell(row, tierCols[t])); len(names) > 0 {
				rec.Ratings[t] = names
			}
		}
		if err = checkSegment(line, rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}
