package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PanelRow is one activity line.
type PanelRow struct {
	Name    string
	Hours   float64
	Units   int
	Percent float64
	Swatch  lipgloss.Style // background set to the activity color
}

// PanelModel contains content and styles for the activity panel.
type PanelModel struct {
	InnerW       int
	Rows         []PanelRow
	Selected     int
	CanIncrement bool

	RowStyle       lipgloss.Style
	SelectedStyle  lipgloss.Style
	MutedStyle     lipgloss.Style
	ButtonStyle    lipgloss.Style
	ButtonOffStyle lipgloss.Style
	Bg             lipgloss.Color
}

// RenderPanel renders one line per activity: marker, color, name, counter
// controls, hours and share of the day.
func RenderPanel(model PanelModel) string {
	nameW := 0
	for _, r := range model.Rows {
		nameW = max(nameW, lipgloss.Width(r.Name))
	}

	lines := make([]string, 0, len(model.Rows))
	for i, r := range model.Rows {
		lines = append(lines, renderPanelRow(model, i, r, nameW))
	}
	return FillBackground(strings.Join(lines, "\n"), model.InnerW, len(lines), model.Bg)
}

func renderPanelRow(model PanelModel, i int, r PanelRow, nameW int) string {
	style := model.RowStyle
	marker := "  "
	if i == model.Selected {
		style = model.SelectedStyle
		marker = "› "
	}

	plus := model.ButtonStyle.Render("[+]")
	if !model.CanIncrement {
		plus = model.ButtonOffStyle.Render("[+]")
	}

	name := r.Name + strings.Repeat(" ", nameW-lipgloss.Width(r.Name))
	counter := fmt.Sprintf(" %3d ", r.Units)
	detail := fmt.Sprintf("  %6s  %4s", FormatHours(r.Hours), FormatPercent(r.Percent))
	if r.Hours == 0 {
		detail = model.MutedStyle.Render(detail)
	} else {
		detail = style.Render(detail)
	}

	line := style.Render(marker) +
		r.Swatch.Render("  ") +
		style.Render(" "+name+" ") +
		model.ButtonStyle.Render("[-]") +
		style.Render(counter) +
		plus +
		detail

	if model.InnerW > 0 {
		line = ansi.Truncate(line, model.InnerW, "")
	}
	return line
}
