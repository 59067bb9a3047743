// Package ingest loads performer and segment records from the sign-up sheet
// CSV exports and from single-file YAML roster documents.
//
// Ingestion is where schema violations are caught: a record without a name
// is rejected with ErrInvalidRecord. Everything else (unknown names,
// malformed capacities) passes through to roster normalization as-is.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lineup/roster"
)

var (
	// ErrInvalidRecord marks a row that violates the record schema.
	ErrInvalidRecord = errors.New("ingest: invalid record")

	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.New("ingest: missing column")
)

// Document is a complete roster in one YAML file.
type Document struct {
	Performers     []roster.PerformerRecord `yaml:"performers" validate:"dive"`
	Segments       []roster.SegmentRecord   `yaml:"segments" validate:"dive"`
	ExclusionPairs [][]string               `yaml:"exclusion_pairs" validate:"dive,len=2"`
}

var validate = validator.New()

// emptyCell lists spreadsheet placeholders for a blank cell.
var emptyCell = map[string]bool{"": true, "nan": true, "none": true, "null": true}

// splitList turns a comma-separated cell into trimmed, non-empty names.
func splitList(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if emptyCell[strings.ToLower(part)] {
			continue
		}
		out = append(out, part)
	}

	return out
}

// cleanCell trims a single-value cell and blanks placeholders.
func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if emptyCell[strings.ToLower(cell)] {
		return ""
	}

	return cell
}

// normalizeCount rewrites spreadsheet floats such as "8.0" to "8".
func normalizeCount(cell string) string {
	cell = cleanCell(cell)
	if f, err := strconv.ParseFloat(cell, 64); err == nil && f >= 0 && f == float64(int64(f)) && strings.Contains(cell, ".") {
		return strconv.FormatInt(int64(f), 10)
	}

	return cell
}

func checkPerformer(row int, rec roster.PerformerRecord) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: performer row %d: %v", ErrInvalidRecord, row, err)
	}

	return nil
}

func checkSegment(row int, rec roster.SegmentRecord) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: segment row %d: %v", ErrInvalidRecord, row, err)
	}

	return nil
}

// LoadFiles reads the performer and segment CSV exports.
func LoadFiles(performersPath, segmentsPath string) ([]roster.PerformerRecord, []roster.SegmentRecord, error) {
	pf, err := os.Open(performersPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: %w", err)
	}
	defer pf.Close()
	performers, err := ReadPerformersCSV(pf)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", performersPath, err)
	}

	sf, err := os.Open(segmentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: %w", err)
	}
	defer sf.Close()
	segments, err := ReadSegmentsCSV(sf)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", segmentsPath, err)
	}

	return performers, segments, nil
}
