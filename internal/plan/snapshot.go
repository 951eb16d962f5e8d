package plan

import (
	"math"
	"sort"
	"strconv"
)

// Snapshot maps every activity name to its allocated hours.
type Snapshot map[string]float64

// ZeroSnapshot returns a snapshot with every name at 0.
func ZeroSnapshot(names []string) Snapshot {
	s := make(Snapshot, len(names))
	for _, name := range names {
		s[name] = 0
	}
	return s
}

// Total sums all values. Keys are visited in sorted order so the result
// does not depend on map iteration.
func (s Snapshot) Total() float64 {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0.0
	for _, k := range keys {
		total += s[k]
	}
	return total
}

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both snapshots hold the same keys and values.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

func validHours(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h >= 0
}

// formatHours prints hours without trailing zeros: 8, 7.5, 0.25.
func formatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

// FormatHours is the display form used by the CLI and TUI.
func FormatHours(h float64) string {
	return formatHours(h)
}
