package trip

import (
	"errors"

	"github.com/google/uuid"
)

// Activity validation errors.
var (
	ErrEmptyTitle       = errors.New("activity title cannot be empty")
	ErrActivityNotFound = errors.New("activity not found")
)

// Duration bounds in minutes.
const (
	MinDuration = 30
	MaxDuration = 480
	// MaxAssignDuration caps the duration derived from a catalog
	// recommendation when an activity is first placed on a date.
	MaxAssignDuration = 240
)

// DurationStep is the fixed resize increment in minutes.
const DurationStep = 30

// CatalogActivity is a destination's recommended activity. Start and End
// are the recommended "HH:MM" times; they only seed the duration when the
// activity is assigned to a date.
type CatalogActivity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// RecommendedDuration returns the catalog entry's end-start span in
// minutes, clamped to [MinDuration, MaxAssignDuration].
func (c CatalogActivity) RecommendedDuration() int {
	d := TimeToMinutes(c.End) - TimeToMinutes(c.Start)
	return clampDuration(d, MaxAssignDuration)
}

// ScheduledActivity is an activity placed on the calendar. Date is an ISO
// date or empty for unscheduled entries. The ID is stable across edits so
// rendered blocks never rely on list positions.
type ScheduledActivity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`    // "HH:MM"
	Duration    int    `json:"duration"` // minutes
	Date        string `json:"date"`     // "YYYY-MM-DD" or ""
}

// NewScheduledActivity creates a scheduled activity with a fresh ID.
// The duration is clamped to [MinDuration, MaxDuration].
func NewScheduledActivity(title, description, start string, duration int, dateISO string) (*ScheduledActivity, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &ScheduledActivity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Start:       start,
		Duration:    clampDuration(duration, MaxDuration),
		Date:        dateISO,
	}, nil
}

// StartMinutes returns the start time as minutes since midnight.
func (a *ScheduledActivity) StartMinutes() int {
	return TimeToMinutes(a.Start)
}

// EndMinutes returns the end time as minutes since midnight.
func (a *ScheduledActivity) EndMinutes() int {
	return a.StartMinutes() + a.Duration
}

// End returns the computed end time in "HH:MM" format.
func (a *ScheduledActivity) End() string {
	return MinutesToTime(a.EndMinutes())
}

// Scheduled returns true if the activity has been placed on a date.
func (a *ScheduledActivity) Scheduled() bool {
	return a.Date != ""
}

func clampDuration(d, upper int) int {
	if d < MinDuration {
		return MinDuration
	}
	if d > upper {
		return upper
	}
	return d
}
