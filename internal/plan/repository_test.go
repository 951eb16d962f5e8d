package plan

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memRepo is an in-memory Repository.
type memRepo struct {
	data    map[string][]byte
	updated map[string]time.Time
	failGet error
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string][]byte{}, updated: map[string]time.Time{}}
}

func (r *memRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	if r.failGet != nil {
		return nil, false, r.failGet
	}
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *memRepo) Put(_ context.Context, key string, value []byte) error {
	r.data[key] = append([]byte(nil), value...)
	r.updated[key] = time.Now()
	return nil
}

func (r *memRepo) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(r.data, k)
		delete(r.updated, k)
	}
	return nil
}

func (r *memRepo) UpdatedAt(_ context.Context, key string) (time.Time, bool, error) {
	ts, ok := r.updated[key]
	return ts, ok, nil
}

func (r *memRepo) Close() error { return nil }

func TestLoadState_Absent(t *testing.T) {
	state, err := LoadState(context.Background(), newMemRepo(), DefaultActivities)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if state.Found || state.Notice != nil || state.Unit != 0 {
		t.Errorf("state = %+v, want empty", state)
	}
	if state.Snapshot.Total() != 0 || len(state.Snapshot) != len(DefaultActivities) {
		t.Errorf("snapshot = %v, want all zero", state.Snapshot)
	}
}

func TestSaveLoadState(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	snap := ZeroSnapshot(DefaultActivities)
	snap["Sleep"] = 7.5
	snap["Walk"] = 1

	if err := SaveState(ctx, repo, snap, Unit30); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	state, err := LoadState(ctx, repo, DefaultActivities)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if !state.Found || state.Notice != nil {
		t.Fatalf("state = %+v", state)
	}
	if !state.Snapshot.Equal(snap) {
		t.Errorf("snapshot = %v, want %v", state.Snapshot, snap)
	}
	if state.Unit != Unit30 {
		t.Errorf("unit = %v, want 30m", state.Unit)
	}

	// Last write wins.
	snap["Sleep"] = 9
	if err := SaveState(ctx, repo, snap, Unit15); err != nil {
		t.Fatal(err)
	}
	state, _ = LoadState(ctx, repo, DefaultActivities)
	if state.Snapshot["Sleep"] != 9 || state.Unit != Unit15 {
		t.Errorf("state after second save = %+v", state)
	}
}

func TestLoadState_CorruptFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	_ = repo.Put(ctx, StorageKey, []byte(`{"Sleep": "lots"}`))
	_ = repo.Put(ctx, GranularityKey, []byte(`17`))

	state, err := LoadState(ctx, repo, DefaultActivities)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if state.Found {
		t.Error("Found = true for corrupt data")
	}
	var de *DeserializationError
	if !errors.As(state.Notice, &de) {
		t.Fatalf("Notice = %v, want *DeserializationError", state.Notice)
	}
	if state.Unit != 0 {
		t.Errorf("Unit = %v, want 0 for invalid stored unit", state.Unit)
	}

	s := newTestStore(t)
	mustSet(t, s, "Gym", 3)
	if _, err := s.Apply(state); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if s.TotalAllocated() != 0 {
		t.Errorf("TotalAllocated() = %v, want 0 after fallback", s.TotalAllocated())
	}
}

func TestLoadState_StorageError(t *testing.T) {
	repo := newMemRepo()
	repo.failGet = errors.New("disk on fire")
	if _, err := LoadState(context.Background(), repo, DefaultActivities); err == nil {
		t.Error("expected storage error")
	}
}

func TestClearState(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	if err := SaveState(ctx, repo, Snapshot{"Sleep": 1}, Unit60); err != nil {
		t.Fatal(err)
	}
	if err := ClearState(ctx, repo); err != nil {
		t.Fatalf("ClearState failed: %v", err)
	}
	if len(repo.data) != 0 {
		t.Errorf("repo still holds %v", repo.data)
	}
}

func TestStore_ApplyKeepsUnitWhenNoneStored(t *testing.T) {
	s := newTestStore(t, WithGranularity(Unit15))
	state := State{Snapshot: Snapshot{"Sleep": 4}, Found: true}
	if _, err := s.Apply(state); err != nil {
		t.Fatal(err)
	}
	if s.Granularity() != Unit15 {
		t.Errorf("granularity = %v, want 15m", s.Granularity())
	}
	if s.Hours("Sleep") != 4 {
		t.Errorf("Hours(Sleep) = %v", s.Hours("Sleep"))
	}
}

func TestStore_ApplyFailureLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t, WithGranularity(Unit60))
	mustSet(t, s, "Sleep", 6)

	state := State{Snapshot: Snapshot{"Napping": 2}, Unit: Unit15, Found: true}
	if _, err := s.Apply(state); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("Apply = %v, want ErrUnknownActivity", err)
	}
	if s.Granularity() != Unit60 {
		t.Errorf("granularity = %v, want 60m after failed apply", s.Granularity())
	}
	if s.Hours("Sleep") != 6 {
		t.Errorf("Hours(Sleep) = %v, want 6 after failed apply", s.Hours("Sleep"))
	}
}
