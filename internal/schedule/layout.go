package schedule

import (
	"math"

	"wayfarer/internal/trip"
)

// Day-shift thresholds: the cursor's fractional position within a day
// column past which a horizontal drag proposes a neighbouring date.
const (
	dayShiftNextFraction = 0.75
	dayShiftPrevFraction = 0.25
)

// Layout maps between schedule time and calendar pixels. All methods are
// pure; a Layout is cheap to copy.
type Layout struct {
	OpenMinutes  int // schedule opening time, minutes since midnight
	CloseMinutes int // schedule closing time
	HourHeight   int // pixels per hour
	SnapMinutes  int // committed starts are rounded to this granularity
}

// TopOffset returns the vertical pixel offset of an activity starting at
// startMinutes, rounded to the nearest pixel.
func (l Layout) TopOffset(startMinutes int) int {
	return int(math.Round(float64(startMinutes-l.OpenMinutes) / 60 * float64(l.HourHeight)))
}

// BlockHeight returns the rendered height in pixels for a duration.
func (l Layout) BlockHeight(duration int) int {
	return int(math.Round(float64(duration) / 60 * float64(l.HourHeight)))
}

// PixelsToMinutes converts a vertical pixel delta to a minute delta.
// The result is fractional; snapping is deferred to commit time so drag
// previews stay smooth.
func (l Layout) PixelsToMinutes(deltaPx float64) float64 {
	return deltaPx / float64(l.HourHeight) * 60
}

// Snap rounds minutes to the layout's granularity. Exact midpoints round
// toward the earlier slot.
func (l Layout) Snap(minutes float64) int {
	steps := int(math.Ceil(minutes/float64(l.SnapMinutes) - 0.5))
	return steps * l.SnapMinutes
}

// ClampStart bounds a start time so the activity neither begins before
// opening nor extends past closing.
func (l Layout) ClampStart(start, duration int) int {
	latest := l.CloseMinutes - duration
	if start > latest {
		start = latest
	}
	if start < l.OpenMinutes {
		start = l.OpenMinutes
	}
	return start
}

// GrowDuration applies one resize step upward. The step is truncated so
// the activity's end never passes the closing bound, and the result never
// exceeds MaxDuration nor shrinks below the current duration.
func (l Layout) GrowDuration(start, duration int) int {
	grown := duration + trip.DurationStep
	if start+grown > l.CloseMinutes {
		grown = l.CloseMinutes - start
	}
	if grown > trip.MaxDuration {
		grown = trip.MaxDuration
	}
	if grown < duration {
		return duration
	}
	return grown
}

// ShrinkDuration applies one resize step downward, flooring at the
// minimum duration.
func (l Layout) ShrinkDuration(duration int) int {
	shrunk := duration - trip.DurationStep
	if shrunk < trip.MinDuration {
		return trip.MinDuration
	}
	return shrunk
}

// DayShift maps the cursor's horizontal fraction within a day column to a
// day delta: +1 past the right threshold, -1 past the left, 0 otherwise.
func DayShift(fractionX float64) int {
	switch {
	case fractionX > dayShiftNextFraction:
		return 1
	case fractionX < dayShiftPrevFraction:
		return -1
	default:
		return 0
	}
}
