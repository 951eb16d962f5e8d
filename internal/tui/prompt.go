package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
	"github.com/javiermolinar/daygrid/internal/tui/input"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

var promptCommands = []input.PromptCommand{
	{
		Name:        "/set",
		Usage:       "<activity> <hours>",
		Description: "Set the hours of an activity",
	},
	{
		Name:        "/unit",
		Usage:       "<15|30|60>",
		Description: "Change the smallest unit",
	},
	{
		Name:        "/export",
		Usage:       "[path]",
		Description: "Write the day to a JSON file",
	},
	{
		Name:        "/import",
		Usage:       "[path]",
		Description: "Replace the day with a JSON file",
	},
	{
		Name:        "/copy",
		Description: "Copy the export JSON to the clipboard",
	},
	{
		Name:        "/reset",
		Description: "Delete all saved data",
	},
	{
		Name:        "/help",
		Description: "Show key bindings",
	},
}

// handlePromptSubmit runs a submitted prompt line.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" {
		return m, nil
	}
	if m.loading {
		cmd := m.setStatus(msgStillLoading, statusShort)
		return m, cmd
	}
	c, err := input.ParseCommand(value)
	if err != nil {
		cmd := m.setStatus(err.Error(), statusShort)
		return m, cmd
	}

	switch c.Name {
	case "/set":
		if len(c.Args) != 2 {
			cmd := m.setStatus("Usage: /set <activity> <hours>", statusShort)
			return m, cmd
		}
		name, ok := m.store.Lookup(c.Args[0])
		if !ok {
			cmd := m.setStatus(fmt.Sprintf("Error: %v: %q", plan.ErrUnknownActivity, c.Args[0]), statusLong)
			return m, cmd
		}
		hours, err := strconv.ParseFloat(strings.TrimSuffix(c.Args[1], "h"), 64)
		if err != nil {
			cmd := m.setStatus(fmt.Sprintf("Error: %v, got %q", plan.ErrInvalidHours, c.Args[1]), statusLong)
			return m, cmd
		}
		return m.setAllocation(name, hours)

	case "/unit":
		g, err := plan.ParseGranularityString(c.Arg(0, ""))
		if err != nil {
			cmd := m.setStatus(fmt.Sprintf("Error: %v", err), statusLong)
			return m, cmd
		}
		return m.setUnit(g)

	case "/export":
		path := c.Arg(0, plan.ExportFileName)
		return m, commands.Export(path, m.store.Snapshot(), m.store.Granularity())

	case "/import":
		path := c.Arg(0, plan.ExportFileName)
		return m, commands.Import(path, m.store.Activities())

	case "/copy":
		return m, commands.CopyExport(m.store.Snapshot(), m.store.Granularity())

	case "/reset":
		m.mode = ModeModal
		m.modalType = ModalConfirmDelete
		return m, nil

	case "/help":
		m.mode = ModeModal
		m.modalType = ModalHelp
		return m, nil
	}

	cmd := m.setStatus("Unknown command: "+c.Name, statusShort)
	return m, cmd
}

func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:      m.prompt.Value(),
		Cursor:     m.promptCursor(),
		ModePrompt: m.mode == ModePrompt,
	}
	lines := view.PromptLines(state, contentWidth, promptCommands)
	return view.ClampPromptLines(lines, promptMaxContentLines, contentWidth)
}
