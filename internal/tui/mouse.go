package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg drives the controller's pointer path. Vertical motion
// in terminal rows is translated to the layout's pixel space; the
// horizontal position within the day column feeds day-shift detection.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal && !m.dragging {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		col, row, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = Position{Col: col, Row: row}
		act := m.activityAt(col, row)
		leg := m.currentLeg()
		if act == nil || leg == nil {
			return m, nil
		}
		if err := m.controller.BeginDrag(act, leg.StartDate, leg.EndDate); err != nil {
			return m, nil
		}
		m.dragging = true
		m.pressY = msg.Y

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		deltaPx := float64(msg.Y-m.pressY) * m.rowPixels()
		col, _, ok := m.cellAt(msg.X, msg.Y)
		fraction := 0.5
		if ok {
			fraction = m.columnFraction(msg.X, col)
		}
		_, _ = m.controller.Move(deltaPx, fraction)

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		commit, ok := m.controller.Release()
		if !ok {
			return m, nil
		}
		return m.applyCommit(commit)
	}

	return m, nil
}
