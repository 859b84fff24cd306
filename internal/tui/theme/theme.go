// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme, as hex strings.
type Theme struct {
	Name        string
	Bg          string // base background
	BgHighlight string // activity blocks, subtle highlight
	BgSelection string // cursor, selection
	Fg          string // primary foreground
	FgMuted     string // empty slots, secondary text
	Accent      string // title, borders
	Block       string // placed activity blocks
	Preview     string // drag/grab preview ghost
	Warning     string // confirmations, grabbed mode
	ModalBorder string
	ModalBg     string
}

var builtin = map[string]*Theme{
	"dark": {
		Name:        "dark",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Block:       "#94e2d5",
		Preview:     "#f9e2af",
		Warning:     "#fab387",
		ModalBorder: "#89b4fa",
		ModalBg:     "#181825",
	},
	"light": {
		Name:        "light",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Block:       "#179299",
		Preview:     "#df8e1d",
		Warning:     "#fe640b",
		ModalBorder: "#1e66f5",
		ModalBg:     "#e6e9ef",
	},
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load returns a theme by name. Unknown names fall back to dark.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "dark"
	}
	t, ok := builtin[strings.ToLower(name)]
	if !ok {
		return builtin["dark"], fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// Available lists the built-in theme names.
func Available() []string {
	return []string{"dark", "light"}
}

// IsAvailable reports whether a theme name exists.
func IsAvailable(name string) bool {
	_, ok := builtin[strings.ToLower(name)]
	return ok
}
