package trip

import (
	"errors"
	"time"
)

// Date validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

const dateLayout = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ValidDate returns true if s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// CorrectRange normalizes an inverted date range. When start is after end,
// both boundaries collapse to the later date, so the range stays a single
// valid day rather than inverted. Well-ordered ranges pass through unchanged.
func CorrectRange(startISO, endISO string) (string, string) {
	if startISO > endISO {
		return startISO, startISO
	}
	return startISO, endISO
}

// DateRange returns the inclusive sequence of calendar dates from startISO
// to endISO, one entry per day. Dates are advanced with local calendar
// arithmetic, never UTC offsets, so the sequence is stable across daylight
// saving transitions. Returns nil when start is after end.
func DateRange(startISO, endISO string) []string {
	if startISO > endISO {
		return nil
	}
	start, err := ParseDate(startISO)
	if err != nil {
		return nil
	}
	end, err := ParseDate(endISO)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates
}

// DateWithinRange reports whether dateISO falls inside [startISO, endISO].
// Lexicographic comparison is valid for fixed-width zero-padded dates.
func DateWithinRange(dateISO, startISO, endISO string) bool {
	return dateISO >= startISO && dateISO <= endISO
}

// ShiftDate returns the date days calendar days after dateISO.
// Negative days shift backwards. Returns dateISO unchanged if it is
// malformed.
func ShiftDate(dateISO string, days int) string {
	d, err := ParseDate(dateISO)
	if err != nil {
		return dateISO
	}
	return FormatDate(d.AddDate(0, 0, days))
}
