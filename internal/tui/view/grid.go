package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/plan"
)

// GridLabelWidth is the width of the "HH:00 " row label.
const GridLabelWidth = 6

// rowHours lists the row lengths that divide a day evenly, longest first.
var rowHours = []int{24, 12, 8, 6, 4, 3, 2, 1}

// HoursPerRow returns the longest row, in hours, that fits in width when
// every cell is cellWidth columns wide. It never returns less than 1.
func HoursPerRow(g plan.Granularity, width, cellWidth int) int {
	if cellWidth < 1 {
		cellWidth = 1
	}
	for _, h := range rowHours {
		if GridLabelWidth+h*g.CellsPerHour()*cellWidth <= width {
			return h
		}
	}
	return 1
}

// GridRow is one printed line of the day grid.
type GridRow struct {
	Hour   int   // hour of the first cell
	Owners []int // owner index per cell, -1 when unfilled
}

// GridRows splits owners (one entry per cell, in order) into rows of
// hoursPerRow hours each.
func GridRows(owners []int, g plan.Granularity, hoursPerRow int) []GridRow {
	if hoursPerRow < 1 {
		hoursPerRow = 1
	}
	perRow := hoursPerRow * g.CellsPerHour()
	rows := make([]GridRow, 0, (len(owners)+perRow-1)/perRow)
	for start := 0; start < len(owners); start += perRow {
		end := min(start+perRow, len(owners))
		rows = append(rows, GridRow{
			Hour:   start / g.CellsPerHour(),
			Owners: owners[start:end],
		})
	}
	return rows
}

// HourLabel formats an hour as "HH:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Glyph is the one-character marker for an activity index, used when the
// grid is printed without color. Unfilled cells are "·".
func Glyph(owner int) string {
	const glyphs = "123456789abc"
	if owner < 0 || owner >= len(glyphs) {
		return "·"
	}
	return string(glyphs[owner])
}

// GridModel contains content and styles for the day grid.
type GridModel struct {
	InnerW   int
	Owners   []int // owner index per cell
	Unit     plan.Granularity
	Selected int // activity whose cells carry a marker, -1 for none

	CellStyles []lipgloss.Style // one per activity, background set
	EmptyStyle lipgloss.Style
	LabelStyle lipgloss.Style
	Bg         lipgloss.Color
}

// GridCellWidth is the width of one cell in the TUI grid.
const GridCellWidth = 2

// RenderGrid renders the day grid fitted to the inner width.
func RenderGrid(model GridModel) string {
	hours := HoursPerRow(model.Unit, model.InnerW, GridCellWidth)
	rows := GridRows(model.Owners, model.Unit, hours)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		b.WriteString(model.LabelStyle.Render(HourLabel(row.Hour) + " "))
		for _, owner := range row.Owners {
			b.WriteString(renderCell(model, owner))
		}
		lines = append(lines, b.String())
	}

	return FillBackground(strings.Join(lines, "\n"), model.InnerW, len(lines), model.Bg)
}

func renderCell(model GridModel, owner int) string {
	if owner < 0 || owner >= len(model.CellStyles) {
		return model.EmptyStyle.Render(strings.Repeat(" ", GridCellWidth))
	}
	content := strings.Repeat(" ", GridCellWidth)
	if owner == model.Selected {
		content = "▪ "
	}
	return model.CellStyles[owner].Render(content)
}

// GridHeight returns the number of lines RenderGrid produces.
func GridHeight(g plan.Granularity, innerW int) int {
	hours := HoursPerRow(g, innerW, GridCellWidth)
	return plan.HoursPerDay / hours
}
