package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/javiermolinar/daygrid/internal/plan"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Full day: green, the goal state
	colorFull = color.New(color.FgGreen, color.Bold)

	// Warnings: yellow to make it pop
	colorWarning = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// applyColorMode turns color off when asked to, or when stdout cannot
// show it at all.
func applyColorMode(noColor bool) {
	if noColor || termenv.NewOutput(os.Stdout).Profile == termenv.Ascii {
		DisableColor()
	}
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// swatch renders text on the activity color.
func swatch(c plan.Color, text string) string {
	r, g, b := c.RGB()
	return color.RGB(0, 0, 0).AddBgRGB(int(r), int(g), int(b)).Sprint(text)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatFull formats the full-day indicator.
func formatFull(s string) string {
	return colorFull.Sprint(s)
}

// formatWarning formats warnings.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
