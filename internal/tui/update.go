package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
)

// Status display durations.
const (
	statusShort = 3 * time.Second
	statusLong  = 5 * time.Second
)

const msgStillLoading = "Still loading saved data"

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshLayout()
		return m, nil

	case commands.StateLoadedMsg:
		m.loading = false
		var cmd tea.Cmd
		if msg.State.Notice != nil {
			debuglog.LoadFallback(msg.State.Notice)
			cmd = m.setStatus("Saved data could not be read, starting from an empty day", statusLong)
		}
		warn, err := m.store.Apply(msg.State)
		if err != nil {
			debuglog.Error("restore", err)
			m.store.Reset()
			cmd = m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
			return m, cmd
		}
		if warn != nil {
			cmd = m.setStatus("Warning: "+warn.Error(), statusLong)
		}
		m.refreshLayout()
		return m, cmd

	case commands.LoadFailedMsg:
		m.loading = false
		debuglog.Error("load", msg.Err)
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), statusLong)
		return m, cmd

	case commands.SavedMsg:
		return m, nil

	case commands.ClearedMsg:
		cmd := m.setStatus("Saved data deleted", statusShort)
		return m, cmd

	case commands.ImportedMsg:
		return m.applyImport(msg)

	case commands.ExportedMsg:
		cmd := m.setStatus("Exported to "+msg.Path, statusShort)
		return m, cmd

	case commands.CopiedMsg:
		cmd := m.setStatus("Copied to clipboard", statusShort)
		return m, cmd

	case commands.ErrMsg:
		debuglog.Error("tui", msg.Err)
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), statusLong)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, statusShort)
		return m, cmd

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle prompt input when in prompt mode
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyImport replaces the allocation with an imported file and saves it.
func (m Model) applyImport(msg commands.ImportedMsg) (tea.Model, tea.Cmd) {
	warn, err := m.store.Replace(msg.Snapshot)
	if err != nil {
		cmd := m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
		return m, cmd
	}
	if msg.Unit.Valid() && msg.Unit != m.store.Granularity() {
		debuglog.GranularityChange(int(m.store.Granularity()), int(msg.Unit))
		_ = m.store.SetGranularity(msg.Unit)
		m.refreshLayout()
	}

	status := "Imported " + msg.Path
	if warn != nil {
		status += " (" + warn.Error() + ")"
	}
	cmd := tea.Batch(m.setStatus(status, statusShort), m.save())
	return m, cmd
}
