// Package tui provides the terminal user interface for daygrid.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/config"
	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
	"github.com/javiermolinar/daygrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalConfirmDelete
	ModalHelp
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   plan.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Allocation state; only Update mutates it
	store  *plan.Store
	writer *commands.Writer
	rev    uint64 // last revision handed to writer

	// State
	selected  int // index into store.Activities()
	mode      Mode
	modalType ModalType
	loading   bool

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	now func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithStore replaces the store built from the config.
func WithStore(store *plan.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithClock sets the time source used for status expiry.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// New creates a new TUI model. The saved state is read by Init.
func New(repo plan.Repository, cfg *config.Config, opts ...ModelOption) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "/set <activity> <hours>"
	ti.Prompt = ""

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		debuglog.Error("theme", err)
		t, _ = theme.Load(theme.DefaultName)
	}

	m := Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  NewStyles(t),
		writer:  commands.NewWriter(repo),
		mode:    ModeNormal,
		prompt:  ti,
		loading: true,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.store == nil {
		store, err := plan.NewStore(
			cfg.Plan.Activities,
			plan.WithColorMode(cfg.ColorMode()),
			plan.WithGranularity(cfg.Granularity()),
		)
		if err != nil {
			return Model{}, fmt.Errorf("creating plan: %w", err)
		}
		m.store = store
	}
	m.layout = m.buildLayoutCache(0, 0)

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadState(m.repo, m.store.Activities())
}

// Run starts the TUI.
func Run(repo plan.Repository, cfg *config.Config) error {
	model, err := New(repo, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// activity returns the selected activity name.
func (m Model) activity() string {
	names := m.store.Activities()
	if m.selected < 0 || m.selected >= len(names) {
		return ""
	}
	return names[m.selected]
}

// save hands the current state to the writer under a new revision.
func (m *Model) save() tea.Cmd {
	m.rev++
	return m.writer.Save(m.rev, m.store.Snapshot(), m.store.Granularity())
}

// setStatus shows msg until d has passed.
func (m *Model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now().Add(d)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
