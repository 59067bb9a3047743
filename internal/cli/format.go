package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/lineup/roster"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
)

// printSection prints a section header.
func printSection(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w)
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
}

// printSuccess prints a success message with a checkmark.
func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// printWarning prints a warning message with a warning symbol.
func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// printLabelValue prints an indented label-value pair.
func printLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueColor.Fprintln(w, value)
}

// printWarnings lists run warnings grouped under one header.
func printWarnings(w io.Writer, ws []roster.Warning) {
	if len(ws) == 0 {
		return
	}
	printSection(w, fmt.Sprintf("Warnings (%d)", len(ws)))
	for _, warning := range ws {
		printWarning(w, warning.String())
	}
}
