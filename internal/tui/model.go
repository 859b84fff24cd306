// Package tui provides the interactive week calendar for arranging a
// leg's activities.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wayfarer/internal/config"
	"wayfarer/internal/schedule"
	"wayfarer/internal/trip"
	"wayfarer/internal/tui/commands"
	"wayfarer/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeGrabbed      // keyboard repositioning via the controller
	ModeModal
	ModePrompt // editing the leg's date range
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalAssign
	ModalActivityForm
	ModalConfirmDelete
)

// Position is a cursor position in the grid.
type Position struct {
	Col int // 0=Monday, 6=Sunday
	Row int // snap-step rows from opening time
}

// Model is the main TUI model.
type Model struct {
	store  trip.Store
	config *config.Config

	theme  *theme.Theme
	styles *Styles

	legs    []*trip.Leg
	legIdx  int
	weekIdx int

	layout     schedule.Layout
	controller *schedule.Controller

	cursor Position
	mode   Mode

	// Modal state
	modalType      ModalType
	assignIdx      int
	formTitle      textinput.Model
	formStart      textinput.Model
	formDuration   int
	formFocus      int
	confirmID      string
	confirmMessage string

	// Date range prompt
	prompt textinput.Model

	// Mouse drag tracking
	dragging bool
	pressY   int

	// Requested leg to open with, by name or slug
	openLeg string

	width   int
	height  int
	loading bool

	statusMsg  string
	statusTime time.Time
	err        error
}

// New creates a new TUI model.
func New(store trip.Store, cfg *config.Config, openLeg string) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}

	layout := schedule.Layout{
		OpenMinutes:  trip.TimeToMinutes(cfg.Schedule.DayStart),
		CloseMinutes: trip.TimeToMinutes(cfg.Schedule.DayEnd),
		HourHeight:   cfg.Schedule.HourHeight,
		SnapMinutes:  cfg.Schedule.SnapMinutes,
	}

	title := textinput.New()
	title.Placeholder = "Activity title"
	title.CharLimit = 120
	title.Width = 32

	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.CharLimit = 5
	start.Width = 8

	prompt := textinput.New()
	prompt.Placeholder = "YYYY-MM-DD YYYY-MM-DD"
	prompt.CharLimit = 21
	prompt.Width = 24

	return &Model{
		store:        store,
		config:       cfg,
		theme:        t,
		styles:       NewStyles(t),
		layout:       layout,
		controller:   schedule.NewController(layout),
		formTitle:    title,
		formStart:    start,
		formDuration: trip.MinDuration,
		prompt:       prompt,
		openLeg:      openLeg,
		loading:      true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadLegs(m.store)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.LegsLoadedMsg:
		m.legs = msg.Legs
		m.loading = false
		if m.openLeg != "" {
			if leg := trip.FindLeg(m.legs, m.openLeg); leg != nil {
				for i, l := range m.legs {
					if l == leg {
						m.legIdx = i
					}
				}
			}
			m.openLeg = ""
		}
		m.clampSelection()
		return m, nil

	case commands.LegSavedMsg:
		trip.ReplaceLeg(m.legs, msg.Leg)
		m.clampSelection()
		if msg.Status != "" {
			return m.withStatus(msg.Status)
		}
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		return m.withStatus(fmt.Sprintf("Error: %v", msg.Err))

	case commands.StatusMsgCmd:
		return m.withStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Textinput updates for modal and prompt modes.
	var cmd tea.Cmd
	switch m.mode {
	case ModePrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case ModeModal:
		if m.modalType == ModalActivityForm {
			switch m.formFocus {
			case 0:
				m.formTitle, cmd = m.formTitle.Update(msg)
			case 1:
				m.formStart, cmd = m.formStart.Update(msg)
			}
		}
	}
	return m, cmd
}

func (m Model) withStatus(status string) (tea.Model, tea.Cmd) {
	m.statusMsg = status
	m.statusTime = time.Now().Add(3 * time.Second)
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// Run starts the TUI. openLeg selects the initial leg by name; empty
// means the first leg.
func Run(store trip.Store, cfg *config.Config, openLeg string) error {
	p := tea.NewProgram(
		New(store, cfg, openLeg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
