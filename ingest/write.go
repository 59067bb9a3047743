package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lineup/roster"
)

// WritePerformersCSV writes records in the layout ReadPerformersCSV reads.
func WritePerformersCSV(w io.Writer, recs []roster.PerformerRecord) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.Name, r.Experience, r.Capacity,
			strings.Join(r.Most, ", "), strings.Join(r.Okay, ", "), strings.Join(r.No, ", "),
		})
	}

	return writeSheet(w, []string{"Name", "Experience", "Dances", "Most", "Okay", "No"}, rows)
}

// WriteSegmentsCSV writes records in the layout ReadSegmentsCSV reads.
func WriteSegmentsCSV(w io.Writer, recs []roster.SegmentRecord) error {
	headers := []string{"Dance", "NumDancers"}
	for t := roster.MaxTier; t >= roster.MinTier; t-- {
		headers = append(headers, fmt.Sprintf("Rating_%d", t))
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		row := []string{r.Name, r.Capacity}
		for t := roster.MaxTier; t >= roster.MinTier; t-- {
			row = append(row, strings.Join(r.Ratings[t], ", "))
		}
		rows = append(rows, row)
	}

	return writeSheet(w, headers, rows)
}

func writeSheet(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	return nil
}
