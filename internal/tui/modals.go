package tui

import "github.com/javiermolinar/daygrid/internal/tui/view"

var helpEntries = []view.HelpEntry{
	{Keys: "j/k ↑/↓", Description: "select activity"},
	{Keys: "l/+ →", Description: "add one unit"},
	{Keys: "h/- ←", Description: "remove one unit"},
	{Keys: "tab 1 2 3", Description: "smallest unit 15m, 30m, 60m"},
	{Keys: "/", Description: "command prompt"},
	{Keys: "e / i", Description: "export / import file"},
	{Keys: "y", Description: "copy export JSON"},
	{Keys: "D", Description: "delete saved data"},
	{Keys: "q", Description: "quit"},
}

// renderModal renders the current modal.
func (m Model) renderModal() string {
	styles := m.styles.Modal
	switch m.modalType {
	case ModalConfirmDelete:
		return view.ConfirmDeleteModal(m.confirmDeleteModel(), styles).Render(styles)
	case ModalHelp:
		return view.HelpModal(helpEntries, styles).Render(styles)
	default:
		return ""
	}
}

// confirmDeleteModel counts what a reset would clear.
func (m Model) confirmDeleteModel() view.ConfirmDeleteModel {
	allocated := 0
	for _, name := range m.store.Activities() {
		if m.store.Hours(name) > 0 {
			allocated++
		}
	}
	return view.ConfirmDeleteModel{TotalHours: m.store.TotalAllocated(), Activities: allocated}
}
