// Package view renders the pieces of the daygrid TUI. Nothing here holds
// state: every function takes a model struct and returns a string.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	ModalContent     string
	ShowModal        bool
	ModalBg          lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}
	if state.ShowModal && state.ModalContent != "" {
		return overlay(state.BaseContent, state.ModalContent, state.Width, state.Height, state.ModalBg)
	}
	return state.BaseContent
}

// FillBackground pads every line of content to width and the block to
// height lines, painting the padding with bg. Extra lines are dropped; lines
// wider than width are left as they are.
func FillBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	pad := lipgloss.NewStyle().Background(bg)

	lines := strings.Split(content, "\n")
	lines = lines[:min(len(lines), height)]
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + pad.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}

// overlay draws box centered over a width x height screen of base.
func overlay(base, box string, width, height int, boxBg lipgloss.Color) string {
	boxLines := strings.Split(box, "\n")
	boxW := min(lipgloss.Width(box), width)
	if boxW == 0 {
		return base
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxW)/2, 0)

	rows := strings.Split(FillBackground(base, width, height, ""), "\n")
	for i, line := range boxLines {
		row := top + i
		if row >= len(rows) {
			break
		}
		rows[row] = ansi.Cut(rows[row], 0, left) +
			fitBoxLine(line, boxW, boxBg) +
			ansi.Cut(rows[row], left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

// fitBoxLine cuts or pads a box line to w columns. Styled spans inside the
// box end in a reset, so the box background is set again after each one.
func fitBoxLine(line string, w int, bg lipgloss.Color) string {
	switch lw := lipgloss.Width(line); {
	case lw > w:
		line = ansi.Cut(line, 0, w)
	case lw < w:
		line += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", w-lw))
	}
	if bg != "" {
		seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
		for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
			line = strings.ReplaceAll(line, reset, reset+seq)
		}
	}
	return line + ansi.ResetStyle
}
