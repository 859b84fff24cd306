package tui

import (
	"wayfarer/internal/trip"
)

// Fixed geometry of the rendered grid: header rows above the first slot
// row and the width of the time gutter. The mouse path depends on these.
const (
	gridHeaderRows = 4 // title, range, blank, day headers
	timeGutter     = 7 // "HH:MM  "
	minColWidth    = 9
)

func (m *Model) currentLeg() *trip.Leg {
	if m.legIdx < 0 || m.legIdx >= len(m.legs) {
		return nil
	}
	return m.legs[m.legIdx]
}

func (m *Model) weeks() []trip.Week {
	leg := m.currentLeg()
	if leg == nil {
		return nil
	}
	return leg.Weeks()
}

func (m *Model) currentWeek() (trip.Week, bool) {
	weeks := m.weeks()
	if m.weekIdx < 0 || m.weekIdx >= len(weeks) {
		return trip.Week{}, false
	}
	return weeks[m.weekIdx], true
}

// clampSelection keeps legIdx, weekIdx and the cursor valid after the
// leg list or a leg's range changes.
func (m *Model) clampSelection() {
	if len(m.legs) == 0 {
		m.legIdx, m.weekIdx = 0, 0
		return
	}
	if m.legIdx >= len(m.legs) {
		m.legIdx = len(m.legs) - 1
	}
	if m.legIdx < 0 {
		m.legIdx = 0
	}
	weeks := m.weeks()
	if m.weekIdx >= len(weeks) {
		m.weekIdx = len(weeks) - 1
	}
	if m.weekIdx < 0 {
		m.weekIdx = 0
	}
	if maxRow := m.gridRows() - 1; m.cursor.Row > maxRow {
		m.cursor.Row = maxRow
	}
	if m.cursor.Col > trip.DaysPerWeek-1 {
		m.cursor.Col = trip.DaysPerWeek - 1
	}
}

// gridRows is the number of snap-step rows between opening and closing.
func (m *Model) gridRows() int {
	if m.layout.SnapMinutes <= 0 {
		return 0
	}
	return (m.layout.CloseMinutes - m.layout.OpenMinutes) / m.layout.SnapMinutes
}

// rowMinutes converts a grid row to minutes since midnight.
func (m *Model) rowMinutes(row int) int {
	return m.layout.OpenMinutes + row*m.layout.SnapMinutes
}

// minutesRow converts minutes since midnight to the covering grid row.
func (m *Model) minutesRow(minutes int) int {
	return (minutes - m.layout.OpenMinutes) / m.layout.SnapMinutes
}

// rowPixels is the pixel height of one grid row under the layout's
// hour-height, used to translate terminal rows to drag deltas.
func (m *Model) rowPixels() float64 {
	return float64(m.layout.HourHeight) * float64(m.layout.SnapMinutes) / 60.0
}

// dateAt returns the ISO date of a week column, or "" for placeholder
// slots outside the leg's range.
func (m *Model) dateAt(col int) string {
	week, ok := m.currentWeek()
	if !ok || col < 0 || col >= trip.DaysPerWeek {
		return ""
	}
	return week[col]
}

// cursorDate is the date under the cursor, "" when on a placeholder.
func (m *Model) cursorDate() string {
	return m.dateAt(m.cursor.Col)
}

// activityAt returns the activity covering a grid cell, or nil.
func (m *Model) activityAt(col, row int) *trip.ScheduledActivity {
	leg := m.currentLeg()
	date := m.dateAt(col)
	if leg == nil || date == "" {
		return nil
	}
	cellStart := m.rowMinutes(row)
	cellEnd := cellStart + m.layout.SnapMinutes
	for _, act := range leg.PlannedOn(date) {
		if act.StartMinutes() < cellEnd && act.EndMinutes() > cellStart {
			return act
		}
	}
	return nil
}

// cursorActivity is the activity under the cursor, or nil.
func (m *Model) cursorActivity() *trip.ScheduledActivity {
	return m.activityAt(m.cursor.Col, m.cursor.Row)
}

// colWidth is the rendered width of one day column.
func (m *Model) colWidth() int {
	if m.width <= 0 {
		return minColWidth
	}
	w := (m.width - timeGutter) / trip.DaysPerWeek
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

// cellAt translates terminal coordinates to a grid cell. ok is false
// outside the grid.
func (m *Model) cellAt(x, y int) (col, row int, ok bool) {
	row = y - gridHeaderRows
	if row < 0 || row >= m.gridRows() {
		return 0, 0, false
	}
	if x < timeGutter {
		return 0, 0, false
	}
	col = (x - timeGutter) / m.colWidth()
	if col < 0 || col >= trip.DaysPerWeek {
		return 0, 0, false
	}
	return col, row, true
}

// columnFraction maps a terminal column to the horizontal fraction
// within the cursor's day column, for drag day-shift detection.
func (m *Model) columnFraction(x, col int) float64 {
	w := m.colWidth()
	within := x - timeGutter - col*w
	if within < 0 {
		within = 0
	}
	if within >= w {
		within = w - 1
	}
	return float64(within) / float64(w)
}
