package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Leg and destination names: bold cyan
	colorLeg = color.New(color.FgCyan, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Times and dates: green
	colorTime = color.New(color.FgGreen)

	// Notes and suggestions: yellow
	colorNote = color.New(color.FgYellow)

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

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatLeg formats a leg or destination name.
func formatLeg(s string) string {
	return colorLeg.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatTime formats times and dates.
func formatTime(s string) string {
	return colorTime.Sprint(s)
}

// formatNote formats notes and suggestion text.
func formatNote(s string) string {
	return colorNote.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
