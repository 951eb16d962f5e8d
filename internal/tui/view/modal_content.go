package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeleteModel describes what a reset would throw away.
type ConfirmDeleteModel struct {
	TotalHours float64
	Activities int // activities with time allocated
}

// ConfirmDeleteModal builds the "Delete data" confirmation.
func ConfirmDeleteModal(model ConfirmDeleteModel, s ModalStyles) Modal {
	return Modal{
		Title:   "Delete data",
		Body:    confirmDeleteBody(model, s),
		Buttons: []string{"[y/Enter] Delete", "[n/Esc] Cancel"},
	}
}

func confirmDeleteBody(model ConfirmDeleteModel, s ModalStyles) string {
	var lines []string
	if model.Activities > 0 {
		lines = append(lines,
			s.Body.Render(fmt.Sprintf("%s across %d activities", FormatHours(model.TotalHours), model.Activities)),
			"")
	}
	lines = append(lines,
		s.Body.Render("This deletes every saved allocation."),
		s.Body.Render("Are you sure?"),
		s.Hint.Render("Export first to keep a copy."))
	return strings.Join(lines, "\n")
}

// HelpEntry is one key binding shown in the help modal.
type HelpEntry struct {
	Keys        string
	Description string
}

// HelpModal builds the key binding list.
func HelpModal(entries []HelpEntry, s ModalStyles) Modal {
	return Modal{
		Title:   "Keys",
		Body:    helpBody(entries, s),
		Buttons: []string{"[Esc] Close"},
	}
}

// helpBody lines up descriptions after the widest key column.
func helpBody(entries []HelpEntry, s ModalStyles) string {
	keyW := 0
	for _, e := range entries {
		keyW = max(keyW, lipgloss.Width(e.Keys))
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		keys := e.Keys + strings.Repeat(" ", keyW-lipgloss.Width(e.Keys))
		lines[i] = s.Key.Render(keys) + s.Body.Render("  "+e.Description)
	}
	return strings.Join(lines, "\n")
}
