package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/daygrid/internal/plan"
)

func TestPutGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "savedActivities", []byte(`{"Sleep":8}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := repo.Get(ctx, "savedActivities")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(got) != `{"Sleep":8}` {
		t.Errorf("Get = %s, want {\"Sleep\":8}", got)
	}
}

func TestGet_Missing(t *testing.T) {
	repo := newTestRepo(t)

	got, ok, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || got != nil {
		t.Errorf("Get(missing) = %q, %v; want nil, false", got, ok)
	}
}

func TestPut_Overwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)
	repo.now = func() time.Time { return first }
	if err := repo.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	repo.now = func() time.Time { return second }
	if err := repo.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatal(err)
	}

	got, _, _ := repo.Get(ctx, "k")
	if string(got) != "two" {
		t.Errorf("Get = %q, want two", got)
	}
	ts, ok, err := repo.UpdatedAt(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("UpdatedAt = %v, %v, %v", ts, ok, err)
	}
	if !ts.Equal(second) {
		t.Errorf("UpdatedAt = %v, want %v", ts, second)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 {
		t.Errorf("Keys = %v, want one key", keys)
	}
}

func TestPut_NilValue(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "empty", nil); err != nil {
		t.Fatalf("Put(nil) failed: %v", err)
	}
	got, ok, err := repo.Get(ctx, "empty")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if len(got) != 0 {
		t.Errorf("Get = %q, want empty", got)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := repo.Put(ctx, k, []byte(k)); err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.Delete(ctx, "a", "c", "missing"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete() with no keys failed: %v", err)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != "b" {
		t.Errorf("Keys = %v, want [b]", keys)
	}
}

func TestUpdatedAt_Missing(t *testing.T) {
	repo := newTestRepo(t)
	_, ok, err := repo.UpdatedAt(context.Background(), "missing")
	if err != nil {
		t.Fatalf("UpdatedAt failed: %v", err)
	}
	if ok {
		t.Error("expected ok = false")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	snap := plan.ZeroSnapshot(plan.DefaultActivities)
	snap["Sleep"] = 8
	if err := plan.SaveState(ctx, repo, snap, plan.Unit15); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	state, err := plan.LoadState(ctx, reopened, plan.DefaultActivities)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if !state.Found || !state.Snapshot.Equal(snap) || state.Unit != plan.Unit15 {
		t.Errorf("state = %+v", state)
	}
}

func TestNew_BadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.db")); err == nil {
		t.Error("expected error for a path in a missing directory")
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
