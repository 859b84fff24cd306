// Package schedule implements the calendar interaction core: first-fit slot
// placement, time-to-pixel layout math, and the drag/resize/keyboard
// controller that commits snapped, clamped activity moves.
package schedule

import (
	"slices"
	"strings"

	"wayfarer/internal/trip"
)

// EarliestStart returns the earliest start (minutes since midnight) at or
// after openMinutes where an activity of the given duration fits between
// the day's existing activities. Activities are scanned in start order and
// the first sufficient gap wins. When no gap fits, the end of the last
// activity is returned; placement never caps against a closing time, that
// is the caller's concern.
func EarliestStart(day []*trip.ScheduledActivity, duration, openMinutes int) int {
	sorted := slices.Clone(day)
	slices.SortFunc(sorted, func(a, b *trip.ScheduledActivity) int {
		return strings.Compare(a.Start, b.Start)
	})

	cursor := openMinutes
	for _, a := range sorted {
		if a.StartMinutes()-cursor >= duration {
			return cursor
		}
		if end := a.EndMinutes(); end > cursor {
			cursor = end
		}
	}
	return cursor
}

// ProposeStart is EarliestStart over a leg's activities on a date, used
// when a catalog activity is first assigned.
func ProposeStart(leg *trip.Leg, dateISO string, duration, openMinutes int) string {
	return trip.MinutesToTime(EarliestStart(leg.PlannedOn(dateISO), duration, openMinutes))
}
