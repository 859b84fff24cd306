package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"wayfarer/internal/trip"
)

// View renders the TUI.
func (m Model) View() string {
	if m.loading {
		return "Loading..."
	}

	leg := m.currentLeg()
	if leg == nil {
		return m.styles.HelpStyle.Render(
			"\n  No legs yet.\n\n  Add one first:  wayfarer add [destination]\n\n  q to quit\n")
	}

	if m.mode == ModeModal && m.modalType != ModalNone {
		return m.renderModal()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(leg))
	b.WriteString(m.renderGrid(leg))
	b.WriteString(m.renderFooter(leg))
	return b.String()
}

func (m Model) renderHeader(leg *trip.Leg) string {
	weeks := m.weeks()
	title := leg.Name
	if leg.Country != "" {
		title += "  " + leg.Country
	}

	right := ""
	if len(weeks) > 0 {
		right = fmt.Sprintf("week %d/%d", m.weekIdx+1, len(weeks))
	}

	line1 := m.styles.TitleStyle.Render(title)
	if right != "" {
		pad := m.width - lipgloss.Width(line1) - len(right) - 2
		if pad < 1 {
			pad = 1
		}
		line1 += strings.Repeat(" ", pad) + m.styles.RangeStyle.Render(right)
	}

	line2 := ""
	if leg.HasRange() {
		line2 = m.styles.RangeStyle.Render(leg.StartDate + " to " + leg.EndDate)
	} else {
		line2 = m.styles.WarningStyle.Render("No date range set. Press r to set one.")
	}

	return " " + line1 + "\n " + line2 + "\n\n"
}

// renderGrid draws the day headers and one row per snap step.
func (m Model) renderGrid(leg *trip.Leg) string {
	week, ok := m.currentWeek()
	if !ok {
		return m.styles.HelpStyle.Render("  No weeks to show. Press r to set the leg's dates.\n")
	}

	colW := m.colWidth()
	var b strings.Builder

	// Day header row
	b.WriteString(strings.Repeat(" ", timeGutter))
	for col := 0; col < trip.DaysPerWeek; col++ {
		label := trip.WeekdayShortName(col)
		if week[col] != "" {
			label += " " + week[col][5:] // "MM-DD"
		}
		b.WriteString(m.styles.DayHeaderStyle.Render(padCell(label, colW)))
	}
	b.WriteString("\n")

	for row := 0; row < m.gridRows(); row++ {
		b.WriteString(m.styles.TimeColStyle.Render(
			padCell(trip.MinutesToTime(m.rowMinutes(row)), timeGutter)))
		for col := 0; col < trip.DaysPerWeek; col++ {
			b.WriteString(m.renderCell(leg, week, col, row, colW))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell picks the content and style of one grid cell. Preview
// ghosts win over placed blocks; the cursor highlights empty cells.
func (m Model) renderCell(leg *trip.Leg, week trip.Week, col, row, colW int) string {
	date := week[col]
	if date == "" {
		return padCell("", colW)
	}

	cellStart := m.rowMinutes(row)
	cellEnd := cellStart + m.layout.SnapMinutes
	underCursor := col == m.cursor.Col && row == m.cursor.Row

	// Drag preview ghost
	if preview, ok := m.controller.DragPreview(); ok && preview.Date == date {
		start := m.layout.Snap(preview.StartMinutes)
		if dur := m.dragDuration(leg); start < cellEnd && start+dur > cellStart {
			label := ""
			if m.minutesRow(start) == row {
				label = " " + trip.MinutesToTime(start)
			}
			return m.styles.PreviewStyle.Render(padCell(label, colW))
		}
	}

	// Keyboard grab ghost
	if start, grabDate, ok := m.controller.GrabbedPosition(); ok && grabDate == date {
		if dur := m.dragDuration(leg); start < cellEnd && start+dur > cellStart {
			label := ""
			if m.minutesRow(start) == row {
				label = " " + trip.MinutesToTime(start)
			}
			return m.styles.GrabbedStyle.Render(padCell(label, colW))
		}
	}

	if act := m.activityAt(col, row); act != nil {
		label := ""
		if m.minutesRow(act.StartMinutes()) == row {
			label = " " + act.Title
		}
		style := m.styles.BlockStyle
		if underCursor {
			style = m.styles.BlockSelStyle
		}
		return style.Render(padCell(label, colW))
	}

	if underCursor {
		return m.styles.CursorStyle.Render(padCell("", colW))
	}
	return m.styles.EmptyCellStyle.Render(padCell(" ·", colW))
}

// dragDuration is the duration of the activity being dragged or
// grabbed, falling back to one snap step.
func (m Model) dragDuration(leg *trip.Leg) int {
	if act := leg.Find(m.controller.ActiveID()); act != nil {
		return act.Duration
	}
	return m.layout.SnapMinutes
}

func (m Model) renderFooter(leg *trip.Leg) string {
	var b strings.Builder
	b.WriteString("\n")

	if m.mode == ModePrompt {
		b.WriteString(" " + m.styles.WarningStyle.Render("Dates: ") + m.prompt.View() + "\n")
		b.WriteString(" " + m.styles.HelpStyle.Render("enter save · esc cancel") + "\n")
		return b.String()
	}

	if m.statusMsg != "" {
		b.WriteString(" " + m.styles.StatusStyle.Render(m.statusMsg) + "\n")
	}

	help := "hjkl move · H/L week · tab leg · a assign · n new · enter grab · d delete · +/- resize · r dates · q quit"
	if m.mode == ModeGrabbed {
		help = "arrows move block · enter place · esc cancel"
	}
	b.WriteString(" " + m.styles.HelpStyle.Render(ansi.Truncate(help, max(m.width-2, 20), "…")) + "\n")
	return b.String()
}

func (m Model) renderModal() string {
	var content string
	switch m.modalType {
	case ModalAssign:
		content = m.renderAssignModal()
	case ModalActivityForm:
		content = m.renderFormModal()
	case ModalConfirmDelete:
		content = m.styles.ModalTitleStyle.Render("Confirm") + "\n\n" +
			m.confirmMessage + "\n\n" +
			m.styles.ModalLabelStyle.Render("y delete · n cancel")
	}

	box := m.styles.ModalStyle.Render(content)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderAssignModal() string {
	leg := m.currentLeg()
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Assign activity"))
	b.WriteString("\n" + m.styles.ModalLabelStyle.Render("on "+m.cursorDate()) + "\n\n")
	for i, act := range leg.Activities {
		marker := "  "
		line := act.Title
		if act.Start != "" && act.End != "" {
			line += fmt.Sprintf("  (%s-%s)", act.Start, act.End)
		}
		if i == m.assignIdx {
			marker = "> "
			line = m.styles.TitleStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString("\n" + m.styles.ModalLabelStyle.Render("j/k select · enter assign · esc cancel"))
	return b.String()
}

func (m Model) renderFormModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("New activity"))
	b.WriteString("\n" + m.styles.ModalLabelStyle.Render("on "+m.cursorDate()) + "\n\n")
	b.WriteString(m.styles.ModalLabelStyle.Render("Title    ") + m.formTitle.View() + "\n")
	b.WriteString(m.styles.ModalLabelStyle.Render("Start    ") + m.formStart.View() + "\n")

	duration := fmt.Sprintf("%d min", m.formDuration)
	if m.formFocus == 2 {
		duration = "< " + duration + " >"
	}
	b.WriteString(m.styles.ModalLabelStyle.Render("Duration ") + duration + "\n")
	b.WriteString("\n" + m.styles.ModalLabelStyle.Render("tab next field · enter save · esc cancel"))
	return b.String()
}

// padCell fits a label to an exact display width.
func padCell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
