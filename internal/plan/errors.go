package plan

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrNoActivities       = errors.New("at least one activity is required")
	ErrEmptyActivity      = errors.New("activity name cannot be empty")
	ErrDuplicateActivity  = errors.New("duplicate activity name")
	ErrInvalidGranularity = errors.New("smallest unit must be 15, 30 or 60 minutes")
	ErrInvalidHours       = errors.New("hours must be a finite, non-negative number")
)

// Domain errors.
var (
	ErrUnknownActivity = errors.New("unknown activity")
	ErrDayFull         = errors.New("all 24 hours are already allocated")
)

// DeserializationError reports persisted or imported data that could not be
// turned into a snapshot. Callers fall back to an all-zero snapshot.
type DeserializationError struct {
	Source string // e.g. "savedActivities" or a file path
	Err    error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Source, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// OverAllocationWarning is returned alongside a successful write that left
// more than a full day allocated. It never blocks the write.
type OverAllocationWarning struct {
	Total float64
}

func (w *OverAllocationWarning) Error() string {
	return fmt.Sprintf("%s hours allocated, only %d in a day", formatHours(w.Total), HoursPerDay)
}

func overAllocation(total float64) *OverAllocationWarning {
	if total > float64(HoursPerDay)+epsilon {
		return &OverAllocationWarning{Total: total}
	}
	return nil
}
