package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles styles the confirm-delete and help modals.
type ModalStyles struct {
	Frame        lipgloss.Style // border, padding and width of the box
	Title        lipgloss.Style
	Body         lipgloss.Style
	Hint         lipgloss.Style
	Key          lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Bg           lipgloss.Color // kept across inner resets when overlaid
}

// Modal is a titled box with a body and a row of buttons. The first button
// is the default action.
type Modal struct {
	Title   string
	Body    string
	Buttons []string
}

// Render draws the modal box.
func (m Modal) Render(s ModalStyles) string {
	parts := []string{s.Title.Render(m.Title)}
	if m.Body != "" {
		parts = append(parts, "", m.Body)
	}
	if len(m.Buttons) > 0 {
		parts = append(parts, "", renderButtons(m.Buttons, s))
	}
	return s.Frame.Render(strings.Join(parts, "\n"))
}

func renderButtons(labels []string, s ModalStyles) string {
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if i == 0 {
			rendered[i] = s.ButtonActive.Render(label)
		} else {
			rendered[i] = s.Button.Render(label)
		}
	}
	return strings.Join(rendered, s.Body.Render(" "))
}
