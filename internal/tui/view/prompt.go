package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/daygrid/internal/tui/input"
)

const (
	promptMarker = "> "
	promptIndent = "  "
	ellipsis     = "..."
)

// PromptState captures prompt input state for rendering.
type PromptState struct {
	Value      string
	Cursor     string
	ModePrompt bool
}

// PromptContentWidth returns the usable width inside a prompt box.
func PromptContentWidth(width int, style lipgloss.Style) int {
	frameW, _ := style.GetFrameSize()
	return max(0, width-frameW)
}

// PromptLines returns the wrapped input line followed by one entry per
// matching command while the prompt is focused.
func PromptLines(state PromptState, contentWidth int, commands []input.PromptCommand) []string {
	lines := wrapIndented(state.Value+state.Cursor, promptMarker, contentWidth)
	if !state.ModePrompt {
		return lines
	}
	for _, cmd := range input.PromptMatchingCommands(state.Value, commands) {
		lines = append(lines, wrapIndented(suggestion(cmd), promptIndent, contentWidth)...)
	}
	return lines
}

// suggestion formats a command as "name usage  description".
func suggestion(cmd input.PromptCommand) string {
	head := strings.TrimSpace(cmd.Name + " " + cmd.Usage)
	return head + "  " + cmd.Description
}

// ClampPromptLines keeps at most maxLines lines and marks the last kept line
// with an ellipsis when something was dropped.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	clamped := append([]string(nil), lines[:maxLines]...)
	clamped[maxLines-1] = withEllipsis(clamped[maxLines-1], width)
	return clamped
}

// RenderPrompt renders the prompt box with the provided lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Width(PromptContentWidth(width, style)).Render(strings.Join(lines, "\n"))
}

// wrapIndented word-wraps s to width. The first line starts with marker and
// the rest are indented to line up under it.
func wrapIndented(s, marker string, width int) []string {
	textW := width - runewidth.StringWidth(marker)
	if textW <= 0 {
		return []string{""}
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(marker))

	lines := strings.Split(ansi.Wrap(s, textW, ""), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return lines
}

// withEllipsis appends an ellipsis to s, cutting s so the result fits width.
func withEllipsis(s string, width int) string {
	if width < len(ellipsis) {
		return strings.Repeat(".", max(width, 0))
	}
	return runewidth.Truncate(s+ellipsis, width, ellipsis)
}
