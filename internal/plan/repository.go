package plan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Repository is the durable key-value store behind a session.
type Repository interface {
	// Get returns the value for key. The bool is false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// UpdatedAt returns when key was last written.
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)

	// Close releases any resources held by the repository.
	Close() error
}

// State is what a session restores at startup.
type State struct {
	Snapshot Snapshot
	Unit     Granularity // zero when no unit was stored
	Found    bool        // false when nothing was stored
	Notice   error       // non-nil when stored data was unreadable
}

// LoadState reads the persisted snapshot and unit. Unreadable data is not an
// error: the snapshot falls back to all-zero and Notice explains why. Only
// storage failures are returned as errors.
func LoadState(ctx context.Context, repo Repository, names []string) (State, error) {
	state := State{Snapshot: ZeroSnapshot(names)}

	data, ok, err := repo.Get(ctx, StorageKey)
	if err != nil {
		return State{}, fmt.Errorf("loading snapshot: %w", err)
	}
	if ok {
		snap, err := UnmarshalSnapshot(data, names)
		if err != nil {
			state.Notice = err
		} else {
			state.Snapshot = snap
			state.Found = true
		}
	}

	raw, ok, err := repo.Get(ctx, GranularityKey)
	if err != nil {
		return State{}, fmt.Errorf("loading smallest unit: %w", err)
	}
	if ok {
		minutes, convErr := strconv.Atoi(string(raw))
		if convErr == nil {
			g, gErr := ParseGranularity(minutes)
			convErr = gErr
			if gErr == nil {
				state.Unit = g
			}
		}
		if convErr != nil {
			state.Notice = errors.Join(state.Notice, &DeserializationError{Source: GranularityKey, Err: convErr})
		}
	}

	return state, nil
}

// SaveState writes the full snapshot and unit. Each call overwrites the
// previous one, so the last write wins.
func SaveState(ctx context.Context, repo Repository, snap Snapshot, g Granularity) error {
	data, err := MarshalSnapshot(snap)
	if err != nil {
		return err
	}
	if err := repo.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	if g.Valid() {
		if err := repo.Put(ctx, GranularityKey, []byte(strconv.Itoa(int(g)))); err != nil {
			return fmt.Errorf("saving smallest unit: %w", err)
		}
	}
	return nil
}

// ClearState removes everything SaveState writes.
func ClearState(ctx context.Context, repo Repository) error {
	if err := repo.Delete(ctx, StorageKey, GranularityKey); err != nil {
		return fmt.Errorf("deleting saved data: %w", err)
	}
	return nil
}

// Apply loads a restored state into the store. A state that was not found
// or could not be read leaves the store at zero. On error the store is
// unchanged.
func (s *Store) Apply(state State) (*OverAllocationWarning, error) {
	var warn *OverAllocationWarning
	if state.Found {
		w, err := s.Replace(state.Snapshot)
		if err != nil {
			return nil, err
		}
		warn = w
	} else {
		s.Reset()
	}
	if state.Unit.Valid() {
		s.unit = state.Unit
	}
	return warn, nil
}
