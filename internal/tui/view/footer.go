package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	SummaryText string
	StatusText  string
	HelpText    string
	PromptLines []string
	ShowPrompt  bool

	SummaryStyle lipgloss.Style
	StatusStyle  lipgloss.Style
	HelpStyle    lipgloss.Style
	PromptStyle  lipgloss.Style
	Bg           lipgloss.Color
}

// RenderFooter renders the summary, prompt or status, and help lines.
func RenderFooter(model FooterModel) string {
	lines := []string{footerLine(model.InnerW, model.SummaryStyle, model.SummaryText)}
	if model.ShowPrompt {
		lines = append(lines, RenderPrompt(model.InnerW, model.PromptStyle, model.PromptLines))
	} else {
		lines = append(lines, footerLine(model.InnerW, model.StatusStyle, model.StatusText))
	}
	lines = append(lines, footerLine(model.InnerW, model.HelpStyle, model.HelpText))

	content := strings.Join(lines, "\n")
	return FillBackground(content, model.InnerW, lipgloss.Height(content), model.Bg)
}

// FooterHeight returns the number of lines RenderFooter produces.
func FooterHeight(model FooterModel) int {
	h := 2
	if model.ShowPrompt {
		_, frameH := model.PromptStyle.GetFrameSize()
		return h + max(1, len(model.PromptLines)) + frameH
	}
	return h + 1
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
