package plan

import (
	"fmt"
	"strconv"
)

// Day constants.
const (
	HoursPerDay   = 24
	MinutesPerDay = HoursPerDay * 60
)

// epsilon absorbs float noise when comparing hour totals.
const epsilon = 1e-9

// Granularity is the smallest schedulable unit in minutes.
type Granularity int

const (
	Unit15 Granularity = 15
	Unit30 Granularity = 30
	Unit60 Granularity = 60
)

// DefaultGranularity is used until the user picks another unit.
const DefaultGranularity = Unit60

// Granularities lists the supported units in display order.
func Granularities() []Granularity {
	return []Granularity{Unit15, Unit30, Unit60}
}

// ParseGranularity validates a minute value.
func ParseGranularity(minutes int) (Granularity, error) {
	g := Granularity(minutes)
	if !g.Valid() {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidGranularity, minutes)
	}
	return g, nil
}

// ParseGranularityString accepts "15", "30", "60" with an optional "m" suffix.
func ParseGranularityString(s string) (Granularity, error) {
	trimmed := s
	if n := len(trimmed); n > 0 && (trimmed[n-1] == 'm' || trimmed[n-1] == 'M') {
		trimmed = trimmed[:n-1]
	}
	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidGranularity, s)
	}
	return ParseGranularity(minutes)
}

// Valid returns true for 15, 30 and 60.
func (g Granularity) Valid() bool {
	switch g {
	case Unit15, Unit30, Unit60:
		return true
	default:
		return false
	}
}

// CellsPerDay returns how many grid cells subdivide the day.
func (g Granularity) CellsPerDay() int {
	if !g.Valid() {
		return 0
	}
	return MinutesPerDay / int(g)
}

// StepHours is the size of one cell in hours.
func (g Granularity) StepHours() float64 {
	return float64(g) / 60
}

// CellsPerHour returns 4, 2 or 1.
func (g Granularity) CellsPerHour() int {
	if !g.Valid() {
		return 0
	}
	return 60 / int(g)
}

// Next cycles 15 -> 30 -> 60 -> 15.
func (g Granularity) Next() Granularity {
	switch g {
	case Unit15:
		return Unit30
	case Unit30:
		return Unit60
	default:
		return Unit15
	}
}

func (g Granularity) String() string {
	return strconv.Itoa(int(g)) + "m"
}
