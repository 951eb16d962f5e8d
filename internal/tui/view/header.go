package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/plan"
)

// HeaderModel contains content and styles for the header line.
type HeaderModel struct {
	InnerW  int
	Title   string
	Units   []plan.Granularity
	Current plan.Granularity
	Full    bool
	Over    bool

	TitleStyle      lipgloss.Style
	UnitStyle       lipgloss.Style
	UnitActiveStyle lipgloss.Style
	FullBadgeStyle  lipgloss.Style
	OverBadgeStyle  lipgloss.Style
	Bg              lipgloss.Color
}

// RenderHeader renders the title, the unit selector and the day badge.
func RenderHeader(model HeaderModel) string {
	sep := lipgloss.NewStyle().Background(model.Bg).Render(" ")

	parts := []string{model.TitleStyle.Render(model.Title)}
	parts = append(parts, UnitSelector(model.Units, model.Current, model.UnitStyle, model.UnitActiveStyle, sep))

	switch {
	case model.Full:
		parts = append(parts, model.FullBadgeStyle.Render("FULL DAY"))
	case model.Over:
		parts = append(parts, model.OverBadgeStyle.Render("OVER 24H"))
	}

	line := strings.Join(parts, sep+sep)
	return FillBackground(line, model.InnerW, 1, model.Bg)
}

// UnitSelector renders the unit choices with the current one highlighted.
func UnitSelector(units []plan.Granularity, current plan.Granularity, style, active lipgloss.Style, sep string) string {
	labels := make([]string, 0, len(units))
	for _, g := range units {
		s := style
		if g == current {
			s = active
		}
		labels = append(labels, s.Render(g.String()))
	}
	return strings.Join(labels, sep)
}
