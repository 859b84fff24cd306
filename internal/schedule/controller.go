package schedule

import (
	"errors"

	"wayfarer/internal/trip"
)

// Controller errors.
var (
	ErrNotIdle     = errors.New("an interaction is already in progress")
	ErrNotDragging = errors.New("no drag in progress")
	ErrNotGrabbed  = errors.New("no activity grabbed")
)

// State is the controller's interaction state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateGrabbed
)

// Preview is the transient, uncommitted position of an activity during a
// drag. It is an explicit value threaded from Move to Release, never a
// side-channel field on the activity itself, so its lifetime is exactly
// press-to-release.
type Preview struct {
	StartMinutes float64 // unsnapped, for smooth visual feedback
	Date         string
}

// Commit is the single result of a finished interaction: the snapped,
// clamped start, the (possibly shifted) date, and the duration. The ID
// identifies the activity; the owner applies the commit to its leg and
// persists.
type Commit struct {
	ID       string
	Start    string // "HH:MM"
	Date     string // "YYYY-MM-DD"
	Duration int
}

// Controller drives interactive repositioning of one activity block.
// Pointer path: idle -> dragging -> idle. Keyboard path: idle -> grabbed
// -> idle, toggled by grab/confirm. One interaction at a time; a commit is
// emitted only on release or confirm.
type Controller struct {
	layout Layout
	state  State

	// Captured at press/grab time.
	id         string
	origStart  int
	origDate   string
	duration   int
	rangeStart string
	rangeEnd   string

	// Pointer drag preview.
	preview    Preview
	hasPreview bool

	// Keyboard working position, always snapped and clamped.
	workStart int
	workDate  string
}

// NewController creates a controller with the given layout.
func NewController(layout Layout) *Controller {
	return &Controller{layout: layout}
}

// Layout returns the controller's layout.
func (c *Controller) Layout() Layout {
	return c.layout
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// BeginDrag captures the activity's start and date and enters the
// dragging state. rangeStart/rangeEnd bound any day shift proposed during
// the drag.
func (c *Controller) BeginDrag(a *trip.ScheduledActivity, rangeStart, rangeEnd string) error {
	if c.state != StateIdle {
		return ErrNotIdle
	}
	c.capture(a, rangeStart, rangeEnd)
	c.state = StateDragging
	return nil
}

// Move updates the drag preview from a vertical pixel delta and the
// cursor's horizontal fraction within the day column. Previews that would
// start before opening time are ignored, leaving the previous preview in
// place. A proposed day shift is accepted only if the resulting date stays
// inside the leg's range; otherwise the drag continues vertically on the
// original date.
func (c *Controller) Move(deltaPx, fractionX float64) (Preview, error) {
	if c.state != StateDragging {
		return Preview{}, ErrNotDragging
	}

	start := float64(c.origStart) + c.layout.PixelsToMinutes(deltaPx)
	if start < float64(c.layout.OpenMinutes) {
		return c.preview, nil
	}

	date := c.origDate
	if shift := DayShift(fractionX); shift != 0 {
		proposed := trip.ShiftDate(c.origDate, shift)
		if trip.DateWithinRange(proposed, c.rangeStart, c.rangeEnd) {
			date = proposed
		}
	}

	c.preview = Preview{StartMinutes: start, Date: date}
	c.hasPreview = true
	return c.preview, nil
}

// ActiveID returns the ID of the activity being dragged or grabbed, or
// "" when idle.
func (c *Controller) ActiveID() string {
	if c.state == StateIdle {
		return ""
	}
	return c.id
}

// DragPreview returns the current drag preview for rendering, if one
// exists.
func (c *Controller) DragPreview() (Preview, bool) {
	if c.state != StateDragging || !c.hasPreview {
		return Preview{}, false
	}
	return c.preview, true
}

// Release ends the drag. If a preview exists, its start is snapped to the
// grid and clamped into the open/close bounds, and exactly one commit is
// returned. The preview is discarded regardless of outcome.
func (c *Controller) Release() (Commit, bool) {
	if c.state != StateDragging {
		return Commit{}, false
	}

	committed := c.hasPreview
	var commit Commit
	if committed {
		start := c.layout.ClampStart(c.layout.Snap(c.preview.StartMinutes), c.duration)
		commit = Commit{
			ID:       c.id,
			Start:    trip.MinutesToTime(start),
			Date:     c.preview.Date,
			Duration: c.duration,
		}
	}
	c.reset()
	return commit, committed
}

// Grab enters the keyboard repositioning state for an activity. The grab
// key acts as a toggle; Confirm releases it.
func (c *Controller) Grab(a *trip.ScheduledActivity, rangeStart, rangeEnd string) error {
	if c.state != StateIdle {
		return ErrNotIdle
	}
	c.capture(a, rangeStart, rangeEnd)
	c.workStart = c.layout.ClampStart(a.StartMinutes(), a.Duration)
	c.workDate = a.Date
	c.state = StateGrabbed
	return nil
}

// NudgeEarlier moves the grabbed activity one snap step earlier, clamped
// at the opening bound.
func (c *Controller) NudgeEarlier() error {
	if c.state != StateGrabbed {
		return ErrNotGrabbed
	}
	c.workStart = c.layout.ClampStart(c.workStart-c.layout.SnapMinutes, c.duration)
	return nil
}

// NudgeLater moves the grabbed activity one snap step later, clamped so
// it never extends past closing.
func (c *Controller) NudgeLater() error {
	if c.state != StateGrabbed {
		return ErrNotGrabbed
	}
	c.workStart = c.layout.ClampStart(c.workStart+c.layout.SnapMinutes, c.duration)
	return nil
}

// NudgeDay shifts the grabbed activity's date by delta days. The shift is
// rejected when the resulting date leaves the leg's range.
func (c *Controller) NudgeDay(delta int) error {
	if c.state != StateGrabbed {
		return ErrNotGrabbed
	}
	proposed := trip.ShiftDate(c.workDate, delta)
	if trip.DateWithinRange(proposed, c.rangeStart, c.rangeEnd) {
		c.workDate = proposed
	}
	return nil
}

// GrabbedPosition returns the grabbed activity's working start and date
// for rendering.
func (c *Controller) GrabbedPosition() (startMinutes int, dateISO string, ok bool) {
	if c.state != StateGrabbed {
		return 0, "", false
	}
	return c.workStart, c.workDate, true
}

// Confirm releases the keyboard grab and emits the single commit.
func (c *Controller) Confirm() (Commit, bool) {
	if c.state != StateGrabbed {
		return Commit{}, false
	}
	commit := Commit{
		ID:       c.id,
		Start:    trip.MinutesToTime(c.workStart),
		Date:     c.workDate,
		Duration: c.duration,
	}
	c.reset()
	return commit, true
}

// Cancel aborts the current interaction and discards any preview. Safe to
// call in any state.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) capture(a *trip.ScheduledActivity, rangeStart, rangeEnd string) {
	c.id = a.ID
	c.origStart = a.StartMinutes()
	c.origDate = a.Date
	c.duration = a.Duration
	c.rangeStart = rangeStart
	c.rangeEnd = rangeEnd
}

func (c *Controller) reset() {
	*c = Controller{layout: c.layout}
}
