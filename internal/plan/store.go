// Package plan holds the day allocation model: the ordered activities, their
// allocated hours, the chosen granularity and the mapping from grid cells to
// the activity that owns them.
package plan

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// DefaultActivities is the activity list used when none is configured.
var DefaultActivities = []string{"Sleep", "Another", "Gym", "Swim", "Walk", "Piano", "Guitar"}

// Store is the single mutable allocation state of a session.
type Store struct {
	names  []string
	index  map[string]int
	hours  []float64 // aligned with names
	unit   Granularity
	colors []Color
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	mode   ColorMode
	rng    *rand.Rand
	colors []Color
	unit   Granularity
}

// WithColorMode selects random or name-derived colors.
func WithColorMode(mode ColorMode) Option {
	return func(o *storeOptions) { o.mode = mode }
}

// WithRand sets the source for random colors.
func WithRand(rng *rand.Rand) Option {
	return func(o *storeOptions) { o.rng = rng }
}

// WithColors fixes the color sequence. It must have one entry per activity.
func WithColors(colors []Color) Option {
	return func(o *storeOptions) { o.colors = colors }
}

// WithGranularity sets the initial unit.
func WithGranularity(g Granularity) Option {
	return func(o *storeOptions) { o.unit = g }
}

// NewStore creates a store with every activity at zero hours. Colors are
// assigned once here and stay fixed for the store's lifetime.
func NewStore(names []string, opts ...Option) (*Store, error) {
	o := storeOptions{mode: ColorsRandom, unit: DefaultGranularity}
	for _, opt := range opts {
		opt(&o)
	}

	if len(names) == 0 {
		return nil, ErrNoActivities
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptyActivity
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateActivity, name)
		}
		index[name] = i
	}
	if !o.unit.Valid() {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidGranularity, int(o.unit))
	}

	colors := o.colors
	if colors == nil {
		colors = AssignColors(o.mode, names, o.rng)
	}
	if len(colors) != len(names) {
		return nil, fmt.Errorf("got %d colors for %d activities", len(colors), len(names))
	}

	return &Store{
		names:  append([]string(nil), names...),
		index:  index,
		hours:  make([]float64, len(names)),
		unit:   o.unit,
		colors: append([]Color(nil), colors...),
	}, nil
}

// Activities returns the declared activity order.
func (s *Store) Activities() []string {
	return append([]string(nil), s.names...)
}

// Colors returns the color sequence, aligned with Activities.
func (s *Store) Colors() []Color {
	return append([]Color(nil), s.colors...)
}

// Color returns the color assigned to name.
func (s *Store) Color(name string) (Color, bool) {
	i, ok := s.index[name]
	if !ok {
		return Color{}, false
	}
	return s.colors[i], true
}

// Lookup resolves a case-insensitive name to its declared spelling.
func (s *Store) Lookup(name string) (string, bool) {
	if _, ok := s.index[name]; ok {
		return name, true
	}
	for _, n := range s.names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// Granularity returns the current unit.
func (s *Store) Granularity() Granularity {
	return s.unit
}

// SetGranularity changes the unit. Allocated hours are not rescaled.
func (s *Store) SetGranularity(g Granularity) error {
	if !g.Valid() {
		return fmt.Errorf("%w, got %d", ErrInvalidGranularity, int(g))
	}
	s.unit = g
	return nil
}

// Hours returns the allocation for name (0 for unknown names).
func (s *Store) Hours(name string) float64 {
	i, ok := s.index[name]
	if !ok {
		return 0
	}
	return s.hours[i]
}

// Units returns the allocation of name counted in whole cells of the
// current granularity, as shown on the counter.
func (s *Store) Units(name string) int {
	return int(math.Floor(s.Hours(name)*60/float64(s.unit) + epsilon))
}

// SetAllocation replaces the hours for name, clamped to [0, 24]. The sum is
// not enforced: a non-nil warning reports a day that is now over-allocated.
func (s *Store) SetAllocation(name string, hours float64) (*OverAllocationWarning, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, name)
	}
	if !validHours(hours) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidHours, hours)
	}
	s.hours[i] = math.Min(hours, HoursPerDay)
	return overAllocation(s.TotalAllocated()), nil
}

// TotalAllocated sums the allocations in declared order.
func (s *Store) TotalAllocated() float64 {
	total := 0.0
	for _, h := range s.hours {
		total += h
	}
	return total
}

// Remaining returns the unallocated hours. Negative when over-allocated.
func (s *Store) Remaining() float64 {
	return HoursPerDay - s.TotalAllocated()
}

// IsFull reports whether the whole day is allocated.
func (s *Store) IsFull() bool {
	return s.TotalAllocated() >= HoursPerDay-epsilon
}

// CanIncrement reports whether the increment controls are enabled.
func (s *Store) CanIncrement() bool {
	return !s.IsFull()
}

// Increment adds one cell of time to name. It fails with ErrDayFull once the
// day is allocated and never pushes the total past 24 hours.
func (s *Store) Increment(name string) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, name)
	}
	if !s.CanIncrement() {
		return ErrDayFull
	}
	step := math.Min(s.unit.StepHours(), s.Remaining())
	s.hours[i] = math.Min(s.hours[i]+step, HoursPerDay)
	return nil
}

// Decrement removes one cell of time from name, stopping at zero.
func (s *Store) Decrement(name string) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, name)
	}
	s.hours[i] = math.Max(0, s.hours[i]-s.unit.StepHours())
	return nil
}

// Reset zeroes every activity. The granularity is kept.
func (s *Store) Reset() {
	for i := range s.hours {
		s.hours[i] = 0
	}
}

// Snapshot returns a copy of the current allocations.
func (s *Store) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.names))
	for i, name := range s.names {
		snap[name] = s.hours[i]
	}
	return snap
}

// Replace swaps the whole allocation for snap, as an import does. Names
// missing from snap become zero. Values are not clamped; a total above 24
// is reported as a warning. On error the store is unchanged.
func (s *Store) Replace(snap Snapshot) (*OverAllocationWarning, error) {
	next := make([]float64, len(s.names))
	for name, hours := range snap {
		i, ok := s.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, name)
		}
		if !validHours(hours) {
			return nil, fmt.Errorf("%s: %w, got %v", name, ErrInvalidHours, hours)
		}
		next[i] = hours
	}
	s.hours = next
	return overAllocation(s.TotalAllocated()), nil
}

// Classify returns the color of cell under the current state.
func (s *Store) Classify(cell int) (Color, bool) {
	return Classify(cell, s.unit, s.names, s.Snapshot(), s.colors)
}

// Grid returns the owner index of every cell; element k is cell k+1 and -1
// marks an unfilled cell.
func (s *Store) Grid() []int {
	return Owners(s.unit, s.names, s.Snapshot())
}
