package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Output file names written by WriteCSV.
const (
	AssignmentsFile = "assignments.csv"
	PerformersFile  = "performers.csv"
	OrderFile       = "show_order.csv"
)

// WriteCSV writes the three record files into dir, creating it if needed.
func WriteCSV(dir string, recs Records) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{AssignmentsFile, func(w io.Writer) error { return WriteAssignments(w, recs.Assignments) }},
		{PerformersFile, func(w io.Writer) error { return WritePerformers(w, recs.Performers) }},
		{OrderFile, func(w io.Writer) error { return WriteOrder(w, recs.Order) }},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("report: %s: %w", filepath.Base(path), err)
	}

	return f.Close()
}

// WriteAssignments writes Segment,Performer,Rating rows.
func WriteAssignments(w io.Writer, recs []AssignmentRecord) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{r.Segment, r.Performer, strconv.Itoa(r.Rating)})
	}

	return writeRows(w, []string{"Segment", "Performer", "Rating"}, rows)
}

// WritePerformers writes Performer,Experience,Segments,Count rows; Segments
// is a comma-separated cell.
func WritePerformers(w io.Writer, recs []PerformerSummaryRecord) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{r.Performer, r.Experience, strings.Join(r.Segments, ", "), strconv.Itoa(r.Count)})
	}

	return writeRows(w, []string{"Performer", "Experience", "Segments", "Count"}, rows)
}

// WriteOrder writes Position,Segment rows.
func WriteOrder(w io.Writer, recs []OrderRecord) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{strconv.Itoa(r.Position), r.Segment})
	}

	return writeRows(w, []string{"Position", "Segment"}, rows)
}

func writeRows(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
