package trip

import "time"

// DaysPerWeek is the number of columns in a calendar week page.
const DaysPerWeek = 7

// Week is one Mon-Sun calendar page. Each slot holds an ISO date or the
// empty string for a placeholder outside the trip's date range.
type Week [DaysPerWeek]string

// HasDate returns true if the week contains the given date.
func (w Week) HasDate(dateISO string) bool {
	return w.IndexOf(dateISO) >= 0
}

// IndexOf returns the column (0=Monday) holding dateISO, or -1.
func (w Week) IndexOf(dateISO string) int {
	if dateISO == "" {
		return -1
	}
	for i, d := range w {
		if d == dateISO {
			return i
		}
	}
	return -1
}

// FirstDate returns the earliest real date in the week, or "".
func (w Week) FirstDate() string {
	for _, d := range w {
		if d != "" {
			return d
		}
	}
	return ""
}

// Paginate partitions an ordered date sequence into Mon-Sun week pages.
// The first page is left-padded with placeholders so the first date lands
// in its weekday column, and the last page is right-padded to a full week.
// The result is deterministic for a given sequence.
func Paginate(dates []string) []Week {
	if len(dates) == 0 {
		return nil
	}

	first, err := ParseDate(dates[0])
	if err != nil {
		return nil
	}

	var weeks []Week
	var current Week
	col := mondayIndex(first.Weekday())

	for _, d := range dates {
		current[col] = d
		col++
		if col == DaysPerWeek {
			weeks = append(weeks, current)
			current = Week{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, current)
	}
	return weeks
}

// WeekOf returns the index of the week page containing dateISO, or 0.
func WeekOf(weeks []Week, dateISO string) int {
	for i, w := range weeks {
		if w.HasDate(dateISO) {
			return i
		}
	}
	return 0
}

// WeekdayShortName returns the short column header (0=Monday).
func WeekdayShortName(col int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if col < 0 || col > 6 {
		return ""
	}
	return names[col]
}

// mondayIndex converts a time.Weekday to a Monday-based column index.
func mondayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
