// Package trip defines the core domain types for wayfarer: destinations,
// trip legs, scheduled activities, and the calendar date arithmetic that
// drives the week view.
package trip

import (
	"errors"
	"slices"
	"strings"
)

// Domain errors.
var (
	ErrLegNotFound  = errors.New("trip leg not found")
	ErrEmptyLegName = errors.New("leg name cannot be empty")
	ErrDateOutside  = errors.New("date is outside the leg's date range")
)

// Destination is a read-only catalog entry.
type Destination struct {
	Name        string            `json:"name"`
	Country     string            `json:"country"`
	Description string            `json:"description"`
	Activities  []CatalogActivity `json:"activities"`
}

// Leg is one destination's portion of an itinerary: a date range, the
// destination's activity catalog, and the activities planned so far.
// The leg name is the unique key across the stored list.
type Leg struct {
	Name        string               `json:"name"`
	Country     string               `json:"country"`
	Description string               `json:"description"`
	Notes       string               `json:"notes"`
	StartDate   string               `json:"startDate"` // "YYYY-MM-DD"
	EndDate     string               `json:"endDate"`   // "YYYY-MM-DD"
	Activities  []CatalogActivity    `json:"activities"`
	Planned     []*ScheduledActivity `json:"plannedActivities"`
}

// NewLeg creates a leg from a catalog destination. The date range starts
// empty; scheduling requires SetDateRange first.
func NewLeg(d Destination) (*Leg, error) {
	if d.Name == "" {
		return nil, ErrEmptyLegName
	}
	return &Leg{
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		Activities:  slices.Clone(d.Activities),
	}, nil
}

// Slug returns the URL-safe lookup key for the leg name.
func (l *Leg) Slug() string {
	return Slugify(l.Name)
}

// Slugify lowercases a name and replaces whitespace runs with hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// HasRange returns true once both range boundaries are set.
func (l *Leg) HasRange() bool {
	return l.StartDate != "" && l.EndDate != ""
}

// SetDateRange updates the leg's date range. An inverted range collapses to
// the later date. Planned activities whose date falls outside the new range
// are pruned; the number removed is returned. Unscheduled activities are
// kept.
func (l *Leg) SetDateRange(startISO, endISO string) (pruned int, err error) {
	if !ValidDate(startISO) || !ValidDate(endISO) {
		return 0, ErrInvalidDateFormat
	}
	l.StartDate, l.EndDate = CorrectRange(startISO, endISO)

	kept := l.Planned[:0]
	for _, a := range l.Planned {
		if a.Scheduled() && !DateWithinRange(a.Date, l.StartDate, l.EndDate) {
			pruned++
			continue
		}
		kept = append(kept, a)
	}
	l.Planned = kept
	return pruned, nil
}

// Dates returns the leg's inclusive calendar date sequence.
func (l *Leg) Dates() []string {
	if !l.HasRange() {
		return nil
	}
	return DateRange(l.StartDate, l.EndDate)
}

// Weeks returns the leg's Mon-Sun calendar pages.
func (l *Leg) Weeks() []Week {
	return Paginate(l.Dates())
}

// Contains reports whether dateISO lies inside the leg's date range.
func (l *Leg) Contains(dateISO string) bool {
	return l.HasRange() && DateWithinRange(dateISO, l.StartDate, l.EndDate)
}

// Assign places a catalog activity on a date at the given start time,
// deriving the duration from the catalog recommendation. The new activity
// is returned with its generated ID.
func (l *Leg) Assign(act CatalogActivity, dateISO, start string) (*ScheduledActivity, error) {
	if !l.Contains(dateISO) {
		return nil, ErrDateOutside
	}
	sa, err := NewScheduledActivity(act.Title, act.Description, start, act.RecommendedDuration(), dateISO)
	if err != nil {
		return nil, err
	}
	l.Planned = append(l.Planned, sa)
	return sa, nil
}

// AddCustom places a user-defined activity on a date.
func (l *Leg) AddCustom(title, description, start string, duration int, dateISO string) (*ScheduledActivity, error) {
	if dateISO != "" && !l.Contains(dateISO) {
		return nil, ErrDateOutside
	}
	sa, err := NewScheduledActivity(title, description, start, duration, dateISO)
	if err != nil {
		return nil, err
	}
	l.Planned = append(l.Planned, sa)
	return sa, nil
}

// Find returns the planned activity with the given ID, or nil.
func (l *Leg) Find(id string) *ScheduledActivity {
	for _, a := range l.Planned {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Update applies new start, date, and duration to a planned activity.
// The date, when set, must lie inside the leg's range.
func (l *Leg) Update(id, start, dateISO string, duration int) error {
	a := l.Find(id)
	if a == nil {
		return ErrActivityNotFound
	}
	if dateISO != "" && !l.Contains(dateISO) {
		return ErrDateOutside
	}
	a.Start = start
	a.Date = dateISO
	a.Duration = clampDuration(duration, MaxDuration)
	return nil
}

// Remove deletes a planned activity by ID.
func (l *Leg) Remove(id string) error {
	for i, a := range l.Planned {
		if a.ID == id {
			l.Planned = append(l.Planned[:i], l.Planned[i+1:]...)
			return nil
		}
	}
	return ErrActivityNotFound
}

// PlannedOn returns the activities scheduled on a date, sorted by start
// time ascending.
func (l *Leg) PlannedOn(dateISO string) []*ScheduledActivity {
	var out []*ScheduledActivity
	for _, a := range l.Planned {
		if a.Date == dateISO && a.Date != "" {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b *ScheduledActivity) int {
		return strings.Compare(a.Start, b.Start)
	})
	return out
}

// FindLeg returns the stored leg whose slug matches name, or nil.
// A missing leg is a recoverable condition; callers fall back to the
// leg list rather than failing.
func FindLeg(legs []*Leg, name string) *Leg {
	slug := Slugify(name)
	for _, l := range legs {
		if l.Slug() == slug {
			return l
		}
	}
	return nil
}

// ReplaceLeg swaps the stored leg with the same name, returning false if
// no match exists.
func ReplaceLeg(legs []*Leg, updated *Leg) bool {
	for i, l := range legs {
		if l.Name == updated.Name {
			legs[i] = updated
			return true
		}
	}
	return false
}
