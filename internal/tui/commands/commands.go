// Package commands provides TUI command constructors and message types.
package commands

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
)

// StateLoadedMsg is sent when the saved state has been read.
type StateLoadedMsg struct {
	State plan.State
}

// SavedMsg is sent after a snapshot was written. Stale writes are skipped
// and still report Saved false.
type SavedMsg struct {
	Rev   uint64
	Saved bool
}

// ClearedMsg is sent after saved data was deleted.
type ClearedMsg struct {
	Rev uint64
}

// ImportedMsg carries a decoded export file, ready to apply.
type ImportedMsg struct {
	Path     string
	Snapshot plan.Snapshot
	Unit     plan.Granularity
}

// ExportedMsg is sent when an export file was written.
type ExportedMsg struct {
	Path string
}

// CopiedMsg is sent when the export document was put on the clipboard.
type CopiedMsg struct{}

// LoadFailedMsg is sent when the saved state could not be read from storage.
type LoadFailedMsg struct {
	Err error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadState reads the saved snapshot and unit.
func LoadState(repo plan.Repository, names []string) tea.Cmd {
	return func() tea.Msg {
		state, err := plan.LoadState(context.Background(), repo, names)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return StateLoadedMsg{State: state}
	}
}

// Writer orders writes to a repository. Commands run concurrently, so
// every write carries a revision and a write older than the last one
// applied is dropped.
type Writer struct {
	mu   sync.Mutex
	repo plan.Repository
	last uint64
}

// NewWriter returns a Writer for repo.
func NewWriter(repo plan.Repository) *Writer {
	return &Writer{repo: repo}
}

// Save writes snap and g as revision rev. snap must not be shared with
// anything that mutates it.
func (w *Writer) Save(rev uint64, snap plan.Snapshot, g plan.Granularity) tea.Cmd {
	return func() tea.Msg {
		saved, err := w.apply(rev, func(ctx context.Context) error {
			return plan.SaveState(ctx, w.repo, snap, g)
		})
		debuglog.Persist(snap.Total(), int(g), err)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SavedMsg{Rev: rev, Saved: saved}
	}
}

// Clear deletes the saved data as revision rev.
func (w *Writer) Clear(rev uint64) tea.Cmd {
	return func() tea.Msg {
		_, err := w.apply(rev, func(ctx context.Context) error {
			return plan.ClearState(ctx, w.repo)
		})
		debuglog.Reset(err)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ClearedMsg{Rev: rev}
	}
}

func (w *Writer) apply(rev uint64, fn func(context.Context) error) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if rev <= w.last {
		return false, nil
	}
	if err := fn(context.Background()); err != nil {
		return false, err
	}
	w.last = rev
	return true, nil
}

// Export writes the export file to path.
func Export(path string, snap plan.Snapshot, g plan.Granularity) tea.Cmd {
	return func() tea.Msg {
		err := plan.WriteExportFile(path, snap, g)
		debuglog.Export(path, err)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

// Import reads the export file at path. The result is applied by the model.
func Import(path string, names []string) tea.Cmd {
	return func() tea.Msg {
		snap, g, err := plan.ReadExportFile(path, names)
		debuglog.Import(path, err)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ImportedMsg{Path: path, Snapshot: snap, Unit: g}
	}
}

// CopyExport puts the export document on the system clipboard.
func CopyExport(snap plan.Snapshot, g plan.Granularity) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := plan.EncodeExport(&buf, snap, g); err != nil {
			return ErrMsg{Err: err}
		}
		if err := clipboard.WriteAll(buf.String()); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return CopiedMsg{}
	}
}
