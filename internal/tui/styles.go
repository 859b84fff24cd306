package tui

import (
	"github.com/charmbracelet/lipgloss"

	"wayfarer/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg        lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorAccent    lipgloss.Color
	colorBlock     lipgloss.Color
	colorPreview   lipgloss.Color
	colorSelection lipgloss.Color
	colorWarning   lipgloss.Color

	TitleStyle     lipgloss.Style
	RangeStyle     lipgloss.Style
	DayHeaderStyle lipgloss.Style
	TimeColStyle   lipgloss.Style

	EmptyCellStyle    lipgloss.Style
	BlockStyle        lipgloss.Style
	BlockSelStyle     lipgloss.Style
	PreviewStyle      lipgloss.Style
	GrabbedStyle      lipgloss.Style
	CursorStyle       lipgloss.Style

	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalLabelStyle lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorFg:        theme.Color(t.Fg),
		colorFgMuted:   theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorBlock:     theme.Color(t.Block),
		colorPreview:   theme.Color(t.Preview),
		colorSelection: theme.Color(t.BgSelection),
		colorWarning:   theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.RangeStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.DayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorFg)
	s.TimeColStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.EmptyCellStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.BlockStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorBlock)
	s.BlockSelStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorAccent).
		Bold(true)
	s.PreviewStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorPreview)
	s.GrabbedStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorWarning).
		Bold(true)
	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorSelection)

	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.WarningStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(t.ModalBorder)).
		Background(theme.Color(t.ModalBg)).
		Padding(1, 2)
	s.ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.ModalLabelStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	return s
}
