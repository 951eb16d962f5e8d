// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"

	"github.com/javiermolinar/daygrid/internal/plan"
)

// FormatHours formats hours as "1.5h".
func FormatHours(h float64) string {
	return plan.FormatHours(h) + "h"
}

// FormatPercent formats a share of the day as "33%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}
