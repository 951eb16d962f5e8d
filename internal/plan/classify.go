package plan

// Owner returns the index into names of the activity occupying cell, or -1
// when the cell falls in unallocated time or outside [1, g.CellsPerDay()].
//
// Activities are walked in declared order, accumulating hours. The first
// activity whose cumulative end reaches the cell's time point wins, so a
// boundary tie goes to the earlier activity and zero-hour activities are
// skipped.
func Owner(cell int, g Granularity, names []string, snap Snapshot) int {
	if cell < 1 || cell > g.CellsPerDay() {
		return -1
	}

	timeInHours := float64(cell) * g.StepHours()
	cumulative := 0.0
	for i, name := range names {
		hours := snap[name]
		if cumulative+hours >= timeInHours {
			return i
		}
		cumulative += hours
	}
	return -1
}

// Classify returns the color of the activity owning cell. The bool is false
// for an unfilled cell.
func Classify(cell int, g Granularity, names []string, snap Snapshot, colors []Color) (Color, bool) {
	i := Owner(cell, g, names, snap)
	if i < 0 || i >= len(colors) {
		return Color{}, false
	}
	return colors[i], true
}

// Owners classifies every cell of the day. Element k holds the owner of
// cell k+1.
func Owners(g Granularity, names []string, snap Snapshot) []int {
	n := g.CellsPerDay()
	owners := make([]int, n)
	for i := range owners {
		owners[i] = Owner(i+1, g, names, snap)
	}
	return owners
}
