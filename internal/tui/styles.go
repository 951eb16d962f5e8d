// Package tui provides the terminal user interface for daygrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/theme"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg lipgloss.Color

	// Header
	TitleStyle      lipgloss.Style
	UnitStyle       lipgloss.Style
	UnitActiveStyle lipgloss.Style
	FullBadgeStyle  lipgloss.Style
	OverBadgeStyle  lipgloss.Style

	// Grid
	GridLabelStyle lipgloss.Style
	EmptyCellStyle lipgloss.Style
	GridBoxStyle   lipgloss.Style

	// Activity panel
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style
	MutedStyle       lipgloss.Style
	ButtonStyle      lipgloss.Style
	ButtonOffStyle   lipgloss.Style

	// Footer
	SummaryStyle       lipgloss.Style
	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	Modal view.ModalStyles

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{palette: p, colorBg: p.Bg}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.Bg)

	s.UnitStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.BgHighlight).
		Padding(0, 1)

	s.UnitActiveStyle = lipgloss.NewStyle().
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)

	s.FullBadgeStyle = lipgloss.NewStyle().
		Foreground(p.TextOnFull).
		Background(p.Full).
		Bold(true).
		Padding(0, 1)

	s.OverBadgeStyle = lipgloss.NewStyle().
		Foreground(p.TextOnWarning).
		Background(p.Warning).
		Bold(true).
		Padding(0, 1)

	s.GridLabelStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Background(p.EmptyCell)

	s.GridBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Bg).
		Background(p.Bg)

	s.RowStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg)

	s.RowSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgSelection).
		Bold(true)

	s.MutedStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.ButtonStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg).
		Bold(true)

	s.ButtonOffStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Faint(true)

	s.SummaryStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.Bg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.FgMuted).
		BorderBackground(p.Bg).
		Background(p.BgHighlight).
		Foreground(p.Fg).
		Padding(0, 1)

	s.PromptFocusedStyle = s.PromptStyle.
		BorderForeground(p.Accent).
		Background(p.BgSelection).
		Bold(true)

	modal := p.Modal
	body := lipgloss.NewStyle().Foreground(modal.Text).Background(modal.Bg)
	s.Modal = view.ModalStyles{
		Frame: body.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(modal.Border).
			Padding(1, 2).
			Width(52),
		Title:  body.Bold(true),
		Body:   body,
		Hint:   body.Foreground(modal.Muted),
		Key:    body.Foreground(p.Accent).Bold(true),
		Button: body.Background(p.BgHighlight).Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().
			Background(p.Warning).
			Foreground(p.TextOnWarning).
			Padding(0, 2).
			Underline(true),
		Bg: modal.Bg,
	}

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(p.Bg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	return s
}

// CellStyles returns one grid cell style per activity color.
func (s *Styles) CellStyles(colors []plan.Color) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		hex := c.Hex()
		styles[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(s.palette.TextOn(hex))
	}
	return styles
}
