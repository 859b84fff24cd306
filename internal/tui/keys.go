package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wayfarer/internal/schedule"
	"wayfarer/internal/trip"
	"wayfarer/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeGrabbed:
		return m.handleGrabbedKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		} else if m.weekIdx > 0 {
			m.weekIdx--
			m.cursor.Col = trip.DaysPerWeek - 1
		}
	case "l", "right":
		if m.cursor.Col < trip.DaysPerWeek-1 {
			m.cursor.Col++
		} else if m.weekIdx < len(m.weeks())-1 {
			m.weekIdx++
			m.cursor.Col = 0
		}
	case "j", "down":
		if m.cursor.Row < m.gridRows()-1 {
			m.cursor.Row++
		}
	case "k", "up":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}

	// Week paging
	case "H", "shift+left":
		if m.weekIdx > 0 {
			m.weekIdx--
		}
	case "L", "shift+right":
		if m.weekIdx < len(m.weeks())-1 {
			m.weekIdx++
		}

	// Leg cycling
	case "tab":
		if len(m.legs) > 0 {
			m.legIdx = (m.legIdx + 1) % len(m.legs)
			m.weekIdx = 0
			m.clampSelection()
		}
	case "shift+tab":
		if len(m.legs) > 0 {
			m.legIdx = (m.legIdx - 1 + len(m.legs)) % len(m.legs)
			m.weekIdx = 0
			m.clampSelection()
		}

	// Assign a catalog activity at the cursor
	case "a":
		leg := m.currentLeg()
		if leg == nil || len(leg.Activities) == 0 {
			return m.withStatus("No catalog activities for this leg")
		}
		if m.cursorDate() == "" {
			return m.withStatus("Pick a day inside the leg's range")
		}
		m.mode = ModeModal
		m.modalType = ModalAssign
		m.assignIdx = 0

	// New custom activity at the cursor
	case "n":
		if m.currentLeg() == nil {
			return m.withStatus("Add a leg first: wayfarer add [destination]")
		}
		if m.cursorDate() == "" {
			return m.withStatus("Pick a day inside the leg's range")
		}
		m.mode = ModeModal
		m.modalType = ModalActivityForm
		m.formTitle.SetValue("")
		m.formStart.SetValue(trip.MinutesToTime(m.rowMinutes(m.cursor.Row)))
		m.formDuration = 2 * trip.DurationStep
		m.formFocus = 0
		m.formTitle.Focus()
		m.formStart.Blur()

	// Delete the activity under the cursor
	case "d":
		act := m.cursorActivity()
		if act == nil {
			return m, nil
		}
		m.mode = ModeModal
		m.modalType = ModalConfirmDelete
		m.confirmID = act.ID
		m.confirmMessage = fmt.Sprintf("Delete %q at %s?", act.Title, act.Start)

	// Resize the activity under the cursor
	case "+", "=":
		act := m.cursorActivity()
		if act == nil {
			return m, nil
		}
		grown := m.layout.GrowDuration(act.StartMinutes(), act.Duration)
		if grown == act.Duration {
			return m, nil
		}
		return m.updateActivity(act.ID, act.Start, act.Date, grown,
			fmt.Sprintf("Resized to %s", trip.MinutesToTime(act.StartMinutes()+grown)))
	case "-":
		act := m.cursorActivity()
		if act == nil {
			return m, nil
		}
		shrunk := m.layout.ShrinkDuration(act.Duration)
		if shrunk == act.Duration {
			return m, nil
		}
		return m.updateActivity(act.ID, act.Start, act.Date, shrunk,
			fmt.Sprintf("Resized to %s", trip.MinutesToTime(act.StartMinutes()+shrunk)))

	// Grab for keyboard repositioning
	case "enter", " ":
		act := m.cursorActivity()
		leg := m.currentLeg()
		if act == nil || leg == nil {
			return m, nil
		}
		if err := m.controller.Grab(act, leg.StartDate, leg.EndDate); err != nil {
			return m.withStatus(err.Error())
		}
		m.mode = ModeGrabbed

	// Edit the leg's date range
	case "r":
		leg := m.currentLeg()
		if leg == nil {
			return m, nil
		}
		m.mode = ModePrompt
		if leg.HasRange() {
			m.prompt.SetValue(leg.StartDate + " " + leg.EndDate)
		} else {
			m.prompt.SetValue("")
		}
		m.prompt.Focus()

	case "esc":
		m.statusMsg = ""
	}

	return m, nil
}

// handleGrabbedKeys drives the controller's keyboard path.
func (m Model) handleGrabbedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		_ = m.controller.NudgeEarlier()
	case "j", "down":
		_ = m.controller.NudgeLater()
	case "h", "left":
		_ = m.controller.NudgeDay(-1)
	case "l", "right":
		_ = m.controller.NudgeDay(1)

	case "enter", " ":
		commit, ok := m.controller.Confirm()
		m.mode = ModeNormal
		if !ok {
			return m, nil
		}
		return m.applyCommit(commit)

	case "esc", "q":
		m.controller.Cancel()
		m.mode = ModeNormal
	}
	return m, nil
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalAssign:
		return m.handleAssignKeys(msg)
	case ModalActivityForm:
		return m.handleFormKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmKeys(msg)
	}
	m.closeModal()
	return m, nil
}

func (m Model) handleAssignKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	leg := m.currentLeg()
	switch msg.String() {
	case "j", "down":
		if m.assignIdx < len(leg.Activities)-1 {
			m.assignIdx++
		}
	case "k", "up":
		if m.assignIdx > 0 {
			m.assignIdx--
		}
	case "enter":
		act := leg.Activities[m.assignIdx]
		date := m.cursorDate()
		start := schedule.ProposeStart(leg, date, act.RecommendedDuration(), m.layout.OpenMinutes)
		m.closeModal()
		return m, commands.MutateLeg(m.store, leg.Name,
			fmt.Sprintf("Assigned %q to %s %s", act.Title, date, start),
			func(l *trip.Leg) error {
				_, err := l.Assign(act, date, start)
				return err
			})
	case "esc", "q":
		m.closeModal()
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.formFocus = (m.formFocus + 1) % 3
		} else {
			m.formFocus = (m.formFocus + 2) % 3
		}
		m.formTitle.Blur()
		m.formStart.Blur()
		switch m.formFocus {
		case 0:
			m.formTitle.Focus()
		case 1:
			m.formStart.Focus()
		}
		return m, nil

	case "left", "right":
		if m.formFocus == 2 {
			if msg.String() == "left" {
				m.formDuration -= trip.DurationStep
			} else {
				m.formDuration += trip.DurationStep
			}
			if m.formDuration < trip.MinDuration {
				m.formDuration = trip.MinDuration
			}
			if m.formDuration > trip.MaxDuration {
				m.formDuration = trip.MaxDuration
			}
			return m, nil
		}

	case "enter":
		title := strings.TrimSpace(m.formTitle.Value())
		start := strings.TrimSpace(m.formStart.Value())
		if title == "" {
			return m.withStatus("Title cannot be empty")
		}
		if len(start) != 5 || trip.MinutesToTime(trip.TimeToMinutes(start)) != start {
			return m.withStatus("Start must be HH:MM")
		}
		leg := m.currentLeg()
		date := m.cursorDate()
		duration := m.formDuration
		m.closeModal()
		return m, commands.MutateLeg(m.store, leg.Name,
			fmt.Sprintf("Added %q on %s", title, date),
			func(l *trip.Leg) error {
				_, err := l.AddCustom(title, "", start, duration, date)
				return err
			})

	case "esc":
		m.closeModal()
		return m, nil
	}

	// Forward everything else to the focused input.
	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.formTitle, cmd = m.formTitle.Update(msg)
	case 1:
		m.formStart, cmd = m.formStart.Update(msg)
	}
	return m, cmd
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		leg := m.currentLeg()
		id := m.confirmID
		m.closeModal()
		return m, commands.MutateLeg(m.store, leg.Name, "Deleted",
			func(l *trip.Leg) error {
				return l.Remove(id)
			})
	case "n", "esc", "q":
		m.closeModal()
	}
	return m, nil
}

// handlePromptKeys handles the date range prompt.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		fields := strings.Fields(m.prompt.Value())
		if len(fields) != 2 {
			return m.withStatus("Enter two dates: YYYY-MM-DD YYYY-MM-DD")
		}
		leg := m.currentLeg()
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, commands.MutateLeg(m.store, leg.Name, "Range updated",
			func(l *trip.Leg) error {
				_, err := l.SetDateRange(fields[0], fields[1])
				return err
			})

	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.formTitle.Blur()
	m.formStart.Blur()
}

// applyCommit persists a controller commit to the current leg.
func (m Model) applyCommit(commit schedule.Commit) (tea.Model, tea.Cmd) {
	leg := m.currentLeg()
	if leg == nil {
		return m, nil
	}
	return m, commands.MutateLeg(m.store, leg.Name,
		fmt.Sprintf("Moved to %s %s", commit.Date, commit.Start),
		func(l *trip.Leg) error {
			return l.Update(commit.ID, commit.Start, commit.Date, commit.Duration)
		})
}

// updateActivity persists a field change on one activity.
func (m Model) updateActivity(id, start, date string, duration int, status string) (tea.Model, tea.Cmd) {
	leg := m.currentLeg()
	if leg == nil {
		return m, nil
	}
	return m, commands.MutateLeg(m.store, leg.Name, status,
		func(l *trip.Leg) error {
			return l.Update(id, start, date, duration)
		})
}
