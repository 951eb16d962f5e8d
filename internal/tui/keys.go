package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
	"github.com/javiermolinar/daygrid/internal/tui/input"
)

// unitKeys maps the number row to a smallest unit.
var unitKeys = map[string]plan.Granularity{
	"1": plan.Unit15,
	"2": plan.Unit30,
	"3": plan.Unit60,
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debuglog.KeyPress(msg.String())

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// loadingBlocked lists the keys that change or replace the day. They are
// ignored until the saved state has been restored.
var loadingBlocked = map[string]bool{
	"l": true, "right": true, "+": true, "=": true,
	"h": true, "left": true, "-": true,
	"tab": true, "1": true, "2": true, "3": true,
	"/": true, "e": true, "i": true, "D": true,
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.store.Activities())

	key := msg.String()
	if m.loading && loadingBlocked[key] {
		cmd := m.setStatus(msgStillLoading, statusShort)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit

	// Selection
	case "j", "down":
		m.selected = (m.selected + 1) % n
	case "k", "up":
		m.selected = (m.selected - 1 + n) % n

	// Counter
	case "l", "right", "+", "=":
		return m.increment(m.activity())
	case "h", "left", "-":
		return m.decrement(m.activity())

	// Smallest unit
	case "tab":
		return m.setUnit(m.store.Granularity().Next())
	case "1", "2", "3":
		return m.setUnit(unitKeys[key])

	// Actions
	case "/":
		return m.openPrompt("/")
	case "e":
		return m.openPrompt("/export " + plan.ExportFileName)
	case "i":
		return m.openPrompt("/import " + plan.ExportFileName)
	case "y":
		return m, commands.CopyExport(m.store.Snapshot(), m.store.Granularity())
	case "D":
		m.mode = ModeModal
		m.modalType = ModalConfirmDelete
	case "?":
		m.mode = ModeModal
		m.modalType = ModalHelp
	}

	return m, nil
}

// handlePromptKeys handles keys while the prompt is focused.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleModalKeys handles keys when a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	default:
		switch msg.String() {
		case "esc", "enter", "q", "?":
			m.closeModal()
		}
	}
	return m, nil
}

// handleConfirmDeleteKeys handles keys in the delete confirmation modal.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.closeModal()
		return m, nil

	case "enter", "y":
		m.closeModal()
		return m.reset()
	}
	return m, nil
}

func (m *Model) openPrompt(value string) (tea.Model, tea.Cmd) {
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	return *m, textinput.Blink
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
}

// increment adds one unit to name and saves.
func (m Model) increment(name string) (tea.Model, tea.Cmd) {
	before := m.store.Hours(name)
	if err := m.store.Increment(name); err != nil {
		if errors.Is(err, plan.ErrDayFull) {
			cmd := m.setStatus("The whole day is allocated", statusShort)
			return m, cmd
		}
		cmd := m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
		return m, cmd
	}
	debuglog.AllocationChange(name, before, m.store.Hours(name), "increment")
	cmd := m.save()
	return m, cmd
}

// decrement removes one unit from name and saves.
func (m Model) decrement(name string) (tea.Model, tea.Cmd) {
	before := m.store.Hours(name)
	if before == 0 {
		return m, nil
	}
	if err := m.store.Decrement(name); err != nil {
		cmd := m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
		return m, cmd
	}
	debuglog.AllocationChange(name, before, m.store.Hours(name), "decrement")
	cmd := m.save()
	return m, cmd
}

// setAllocation sets name to hours and saves.
func (m Model) setAllocation(name string, hours float64) (tea.Model, tea.Cmd) {
	before := m.store.Hours(name)
	warn, err := m.store.SetAllocation(name, hours)
	if err != nil {
		cmd := m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
		return m, cmd
	}
	debuglog.AllocationChange(name, before, m.store.Hours(name), "set")

	var status tea.Cmd
	if warn != nil {
		status = m.setStatus("Warning: "+warn.Error(), statusLong)
	}
	cmd := tea.Batch(status, m.save())
	return m, cmd
}

// setUnit switches the smallest unit and saves. Hours are kept as they are.
func (m Model) setUnit(g plan.Granularity) (tea.Model, tea.Cmd) {
	from := m.store.Granularity()
	if g == from {
		return m, nil
	}
	if err := m.store.SetGranularity(g); err != nil {
		cmd := m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
		return m, cmd
	}
	debuglog.GranularityChange(int(from), int(g))
	m.refreshLayout()
	cmd := m.save()
	return m, cmd
}

// reset zeroes the day and deletes the saved data.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.store.Reset()
	m.rev++
	return m, m.writer.Clear(m.rev)
}
