package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

// cellWidth is the printed width of one grid cell.
const cellWidth = 2

// PrintGrid writes the day grid, one row per line, fitted to width.
// Without color every cell shows its activity glyph.
func PrintGrid(w io.Writer, store *plan.Store, width int) {
	g := store.Granularity()
	colors := store.Colors()
	hours := view.HoursPerRow(g, width, cellWidth)

	for _, row := range view.GridRows(store.Grid(), g, hours) {
		var b strings.Builder
		b.WriteString(formatMuted(view.HourLabel(row.Hour)))
		b.WriteString(" ")
		for _, owner := range row.Owners {
			b.WriteString(formatCell(owner, colors))
		}
		_, _ = fmt.Fprintln(w, b.String())
	}
}

func formatCell(owner int, colors []plan.Color) string {
	if color.NoColor || owner < 0 || owner >= len(colors) {
		return view.Glyph(owner) + " "
	}
	return swatch(colors[owner], strings.Repeat(" ", cellWidth))
}

// PrintLegend writes one line per activity: glyph, color, name and hours.
func PrintLegend(w io.Writer, store *plan.Store) {
	shares := store.Breakdown()
	nameWidth := 0
	for _, s := range shares {
		nameWidth = max(nameWidth, len(s.Name))
	}

	g := store.Granularity()
	for i, s := range shares {
		line := fmt.Sprintf("  %s %s %-*s %6s h  %3d × %-3s %5.1f%%",
			view.Glyph(i),
			swatch(s.Color, "  "),
			nameWidth, s.Name,
			plan.FormatHours(s.Hours),
			s.Units, g,
			s.Percent,
		)
		if s.Hours == 0 {
			line = formatMuted(line)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

// PrintSummary writes the total, the free-time line and the status message.
func PrintSummary(w io.Writer, sum plan.Summary) {
	total := fmt.Sprintf("Total: %s / %d h", plan.FormatHours(sum.Total), plan.HoursPerDay)
	switch {
	case sum.Full:
		total += "  " + formatFull("FULL DAY")
	case sum.Over:
		total += "  " + formatWarning("OVER")
	}
	_, _ = fmt.Fprintln(w, formatHeader(total))

	if line := sum.FreeLine(); line != "" {
		_, _ = fmt.Fprintln(w, line)
	}

	msg := sum.Message
	if sum.Over {
		msg = formatWarning(msg)
	}
	_, _ = fmt.Fprintln(w, msg)
}
