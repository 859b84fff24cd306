package ui

import (
	"fmt"
	"sort"
	"strings"

	"wayfarer/internal/trip"
)

// scheduleEntry is one flattened row of the consolidated schedule.
type scheduleEntry struct {
	Date  string
	Start string
	End   string
	Title string
	Leg   string
}

// flattenSchedule collects every scheduled activity across all legs,
// sorted by date then start time. Activities without a date are skipped.
func flattenSchedule(legs []*trip.Leg) []scheduleEntry {
	var entries []scheduleEntry
	for _, leg := range legs {
		for _, act := range leg.Planned {
			if !act.Scheduled() {
				continue
			}
			entries = append(entries, scheduleEntry{
				Date:  act.Date,
				Start: act.Start,
				End:   act.End(),
				Title: act.Title,
				Leg:   leg.Name,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].Start < entries[j].Start
	})
	return entries
}

// buildScheduleText renders the consolidated schedule as plain text,
// grouped by date. This is what the clipboard copy receives.
func buildScheduleText(legs []*trip.Leg) string {
	entries := flattenSchedule(legs)
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	currentDate := ""
	for _, e := range entries {
		if e.Date != currentDate {
			if currentDate != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(formatDayHeading(e.Date) + "\n")
			currentDate = e.Date
		}
		fmt.Fprintf(&sb, "  %s-%s  %s (%s)\n", e.Start, e.End, e.Title, e.Leg)
	}
	return sb.String()
}

// formatDayHeading renders an ISO date as e.g. "Fri, May 10 2024".
// Malformed dates fall back to the raw string.
func formatDayHeading(dateISO string) string {
	t, err := trip.ParseDate(dateISO)
	if err != nil {
		return dateISO
	}
	return t.Format("Mon, Jan 2 2006")
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// legSummary renders one line describing a leg's range and counts.
func legSummary(leg *trip.Leg) string {
	rangeStr := "no dates set"
	if leg.HasRange() {
		rangeStr = fmt.Sprintf("%s to %s (%d days)", leg.StartDate, leg.EndDate, len(leg.Dates()))
	}
	return fmt.Sprintf("%s  %s  %d planned", rangeStr, formatMuted("|"), len(leg.Planned))
}
