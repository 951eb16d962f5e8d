package plan

import (
	"fmt"
	"math"
)

// Status messages, keyed on free hours.
const (
	MsgLotsOfTime    = "You have a lot of time to do stuff!"
	MsgAlmostUsed    = "You've almost used all your time!"
	MsgNoTimeWasted  = "Well done! No time wasted!"
	MsgOverAllocated = "You've planned more than a day!"
)

// plentyThreshold is the free time above which the day is still wide open.
const plentyThreshold = 4

// Summary describes how much of the day is left.
type Summary struct {
	Total   float64
	Free    float64 // rounded to two decimals, negative when over-allocated
	Full    bool
	Over    bool
	Message string
}

// Summarize builds the summary for a total allocation.
func Summarize(total float64) Summary {
	free := math.Round((HoursPerDay-total)*100) / 100
	s := Summary{Total: total, Free: free}

	switch {
	case free < 0:
		s.Over = true
		s.Message = MsgOverAllocated
	case free == 0:
		s.Full = true
		s.Message = MsgNoTimeWasted
	case free > plentyThreshold:
		s.Message = MsgLotsOfTime
	default:
		s.Message = MsgAlmostUsed
	}
	return s
}

// FreeLine returns e.g. "Still 3.5 hours free.", or "" when nothing is free.
func (s Summary) FreeLine() string {
	if s.Free <= 0 {
		return ""
	}
	unit := "hours"
	if s.Free <= 1 {
		unit = "hour"
	}
	return fmt.Sprintf("Still %s %s free.", formatHours(s.Free), unit)
}

// Share is one activity's part of the day.
type Share struct {
	Name    string
	Hours   float64
	Units   int // counter value at the current granularity
	Cells   int // grid cells colored with this activity
	Percent float64
	Color   Color
}

// Breakdown lists every activity in declared order with its share of the day.
func (s *Store) Breakdown() []Share {
	cells := make([]int, len(s.names))
	for _, owner := range s.Grid() {
		if owner >= 0 {
			cells[owner]++
		}
	}

	shares := make([]Share, 0, len(s.names))
	for i, name := range s.names {
		shares = append(shares, Share{
			Name:    name,
			Hours:   s.hours[i],
			Units:   s.Units(name),
			Cells:   cells[i],
			Percent: s.hours[i] * 100 / HoursPerDay,
			Color:   s.colors[i],
		})
	}
	return shares
}

// Summary returns the summary for the current total.
func (s *Store) Summary() Summary {
	return Summarize(s.TotalAllocated())
}
