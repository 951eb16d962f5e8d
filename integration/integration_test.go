package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/daygrid/internal/db"
	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
	"github.com/javiermolinar/daygrid/internal/ui"
)

// openRepo opens the database at path with automatic cleanup.
func openRepo(t *testing.T, path string) *db.SQLite {
	t.Helper()
	repo, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// newStore creates a store over the default activities with stable colors.
func newStore(t *testing.T, opts ...plan.Option) *plan.Store {
	t.Helper()
	opts = append([]plan.Option{plan.WithColorMode(plan.ColorsStable)}, opts...)
	store, err := plan.NewStore(plan.DefaultActivities, opts...)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

// restore opens path and loads the saved state into a fresh store.
func restore(t *testing.T, path string) (*plan.Store, plan.State) {
	t.Helper()
	repo := openRepo(t, path)
	store := newStore(t)
	state, err := plan.LoadState(context.Background(), repo, store.Activities())
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	if _, err := store.Apply(state); err != nil {
		t.Fatalf("failed to apply state: %v", err)
	}
	return store, state
}

func setHours(t *testing.T, store *plan.Store, name string, hours float64) {
	t.Helper()
	if _, err := store.SetAllocation(name, hours); err != nil {
		t.Fatalf("SetAllocation(%s, %v): %v", name, hours, err)
	}
}

// assertRuns checks that cells [from, to] (1-based) are owned by owner.
func assertRuns(t *testing.T, grid []int, from, to, owner int) {
	t.Helper()
	for cell := from; cell <= to; cell++ {
		if got := grid[cell-1]; got != owner {
			t.Fatalf("cell %d owner = %d, want %d", cell, got, owner)
		}
	}
}

func TestSession_RestoresDayAcrossRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daygrid.db")

	repo, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	store := newStore(t)
	setHours(t, store, "Sleep", 8)
	setHours(t, store, "Gym", 1)
	if err := plan.SaveState(ctx, repo, store.Snapshot(), store.Granularity()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	restored, state := restore(t, path)
	if !state.Found || state.Notice != nil {
		t.Fatalf("state found=%v notice=%v", state.Found, state.Notice)
	}
	if !restored.Snapshot().Equal(store.Snapshot()) {
		t.Fatalf("restored = %v, want %v", restored.Snapshot(), store.Snapshot())
	}

	grid := restored.Grid()
	if len(grid) != 24 {
		t.Fatalf("cells = %d, want 24", len(grid))
	}
	assertRuns(t, grid, 1, 8, 0)
	assertRuns(t, grid, 9, 9, 2)
	assertRuns(t, grid, 10, 24, -1)
}

func TestSession_UnitChangeRecomputesCells(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daygrid.db")
	repo := openRepo(t, path)

	store := newStore(t)
	setHours(t, store, "Sleep", 8)
	setHours(t, store, "Gym", 1)
	if err := store.SetGranularity(plan.Unit15); err != nil {
		t.Fatal(err)
	}
	if err := plan.SaveState(ctx, repo, store.Snapshot(), store.Granularity()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	restored, _ := restore(t, path)
	if restored.Granularity() != plan.Unit15 {
		t.Fatalf("unit = %v, want 15m", restored.Granularity())
	}
	grid := restored.Grid()
	if len(grid) != 96 {
		t.Fatalf("cells = %d, want 96", len(grid))
	}
	assertRuns(t, grid, 1, 32, 0)
	assertRuns(t, grid, 33, 36, 2)
	assertRuns(t, grid, 37, 96, -1)
}

func TestSession_ResetClearsStorage(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daygrid.db")
	repo := openRepo(t, path)

	store := newStore(t)
	setHours(t, store, "Walk", 2)
	if err := plan.SaveState(ctx, repo, store.Snapshot(), store.Granularity()); err != nil {
		t.Fatal(err)
	}

	store.Reset()
	if err := plan.ClearState(ctx, repo); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Fatalf("keys = %v, want none", keys)
	}

	restored, state := restore(t, path)
	if state.Found {
		t.Fatal("state found after reset")
	}
	if restored.TotalAllocated() != 0 {
		t.Fatalf("total = %v, want 0", restored.TotalAllocated())
	}
	for i, owner := range restored.Grid() {
		if owner != -1 {
			t.Fatalf("cell %d owner = %d after reset", i+1, owner)
		}
	}
}

func TestSession_CorruptDataFallsBack(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daygrid.db")
	repo := openRepo(t, path)

	if err := repo.Put(ctx, plan.StorageKey, []byte(`{"Sleep":"eight"}`)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Put(ctx, plan.GranularityKey, []byte("45")); err != nil {
		t.Fatal(err)
	}

	restored, state := restore(t, path)
	var decodeErr *plan.DeserializationError
	if !errors.As(state.Notice, &decodeErr) {
		t.Fatalf("notice = %v, want DeserializationError", state.Notice)
	}
	if restored.TotalAllocated() != 0 {
		t.Fatalf("total = %v, want 0", restored.TotalAllocated())
	}
	if restored.Granularity() != plan.DefaultGranularity {
		t.Fatalf("unit = %v, want default", restored.Granularity())
	}
}

func TestExportImport_MovesDayBetweenDatabases(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	exportPath := filepath.Join(dir, plan.ExportFileName)

	source := openRepo(t, filepath.Join(dir, "source.db"))
	store := newStore(t, plan.WithGranularity(plan.Unit30))
	setHours(t, store, "Sleep", 7.5)
	setHours(t, store, "Piano", 1.5)
	if err := plan.SaveState(ctx, source, store.Snapshot(), store.Granularity()); err != nil {
		t.Fatal(err)
	}
	if err := ui.ExportFile(exportPath, store); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	targetPath := filepath.Join(dir, "target.db")
	target := openRepo(t, targetPath)
	imported := newStore(t)
	setHours(t, imported, "Guitar", 3)
	warn, err := ui.ImportFile(exportPath, imported)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if err := plan.SaveState(ctx, target, imported.Snapshot(), imported.Granularity()); err != nil {
		t.Fatal(err)
	}

	restored, _ := restore(t, targetPath)
	if !restored.Snapshot().Equal(store.Snapshot()) {
		t.Fatalf("restored = %v, want %v", restored.Snapshot(), store.Snapshot())
	}
	if restored.Hours("Guitar") != 0 {
		t.Fatalf("import kept Guitar = %v", restored.Hours("Guitar"))
	}
	if restored.Granularity() != plan.Unit30 {
		t.Fatalf("unit = %v, want 30m", restored.Granularity())
	}
}

func TestWriter_LastRevisionWinsOnSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daygrid.db")
	repo := openRepo(t, path)
	writer := commands.NewWriter(repo)

	older := plan.ZeroSnapshot(plan.DefaultActivities)
	older["Swim"] = 1
	newer := older.Clone()
	newer["Swim"] = 2

	if msg := writer.Save(2, newer, plan.Unit60)(); msg != (commands.SavedMsg{Rev: 2, Saved: true}) {
		t.Fatalf("save rev 2 = %#v", msg)
	}
	if msg := writer.Save(1, older, plan.Unit60)(); msg != (commands.SavedMsg{Rev: 1, Saved: false}) {
		t.Fatalf("save rev 1 = %#v", msg)
	}

	restored, _ := restore(t, path)
	if got := restored.Hours("Swim"); got != 2 {
		t.Fatalf("Swim = %v, want 2", got)
	}
}
