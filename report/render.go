package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lineup/roster"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Bold(true).Width(18)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Summary is what Render prints.
type Summary struct {
	Records         Records
	Warnings        []roster.Warning
	Ceiling         int64
	ForestWeight    int64
	AdjacentOverlap int64
}

// Render writes a styled console summary of one run to w.
func Render(w io.Writer, s Summary) error {
	var stats strings.Builder
	line := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + value + "\n")
	}
	line("Relations", fmt.Sprintf("%d of at most %d", len(s.Records.Assignments), s.Ceiling))
	line("Forest weight", fmt.Sprintf("%d", s.ForestWeight))
	line("Adjacent overlap", fmt.Sprintf("%d", s.AdjacentOverlap))
	if len(s.Warnings) == 0 {
		line("Warnings", okStyle.Render("none"))
	} else {
		line("Warnings", warnStyle.Render(fmt.Sprintf("%d", len(s.Warnings))))
	}

	var running strings.Builder
	for _, o := range s.Records.Order {
		fmt.Fprintf(&running, "%3d. %s\n", o.Position, o.Segment)
	}
	if running.Len() == 0 {
		running.WriteString(subtleStyle.Render("No segments."))
	}

	var cast strings.Builder
	for _, p := range s.Records.Performers {
		segs := subtleStyle.Render("unassigned")
		if p.Count > 0 {
			segs = strings.Join(p.Segments, ", ")
		}
		fmt.Fprintf(&cast, "%s (%d): %s\n", p.Performer, p.Count, segs)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Lineup"),
		paneStyle.Render(strings.TrimRight(stats.String(), "\n")),
		headerStyle.Render("Show order"),
		paneStyle.Render(strings.TrimRight(running.String(), "\n")),
		headerStyle.Render("Cast"),
		paneStyle.Render(strings.TrimRight(cast.String(), "\n")),
	)
	if _, err := fmt.Fprintln(w, view); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	return nil
}
