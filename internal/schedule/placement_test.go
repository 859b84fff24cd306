package schedule

import (
	"testing"

	"wayfarer/internal/trip"
)

func activityAt(t *testing.T, start string, duration int) *trip.ScheduledActivity {
	t.Helper()
	a, err := trip.NewScheduledActivity("block", "", start, duration, "2024-03-07")
	if err != nil {
		t.Fatalf("NewScheduledActivity: %v", err)
	}
	return a
}

func TestEarliestStart(t *testing.T) {
	const open = 360 // 06:00

	t.Run("empty day opens at opening time", func(t *testing.T) {
		if got := EarliestStart(nil, 60, open); got != open {
			t.Errorf("got %s, want 06:00", trip.MinutesToTime(got))
		}
	})

	t.Run("first fit, not last fit", func(t *testing.T) {
		// A 09:00-10:00 block leaves a 180-minute gap from opening;
		// a 30-minute candidate must land at 06:00, not after the block.
		day := []*trip.ScheduledActivity{activityAt(t, "09:00", 60)}
		got := EarliestStart(day, 30, open)
		if trip.MinutesToTime(got) != "06:00" {
			t.Errorf("got %s, want 06:00", trip.MinutesToTime(got))
		}
	})

	t.Run("gap between activities", func(t *testing.T) {
		day := []*trip.ScheduledActivity{
			activityAt(t, "06:00", 120), // 06:00-08:00
			activityAt(t, "09:00", 60),  // 09:00-10:00
		}
		got := EarliestStart(day, 60, open)
		if trip.MinutesToTime(got) != "08:00" {
			t.Errorf("got %s, want 08:00", trip.MinutesToTime(got))
		}
	})

	t.Run("gap too small is skipped", func(t *testing.T) {
		day := []*trip.ScheduledActivity{
			activityAt(t, "06:00", 120), // 06:00-08:00
			activityAt(t, "08:30", 60),  // 08:30-09:30, 30-min gap before
		}
		got := EarliestStart(day, 60, open)
		if trip.MinutesToTime(got) != "09:30" {
			t.Errorf("got %s, want 09:30", trip.MinutesToTime(got))
		}
	})

	t.Run("no gap appends after last activity", func(t *testing.T) {
		day := []*trip.ScheduledActivity{
			activityAt(t, "06:00", 240), // 06:00-10:00
			activityAt(t, "10:00", 240), // 10:00-14:00
		}
		got := EarliestStart(day, 300, open)
		if trip.MinutesToTime(got) != "14:00" {
			t.Errorf("got %s, want 14:00", trip.MinutesToTime(got))
		}
	})

	t.Run("unsorted input is scanned in start order", func(t *testing.T) {
		day := []*trip.ScheduledActivity{
			activityAt(t, "09:00", 60),
			activityAt(t, "06:00", 60),
		}
		got := EarliestStart(day, 60, open)
		if trip.MinutesToTime(got) != "07:00" {
			t.Errorf("got %s, want 07:00", trip.MinutesToTime(got))
		}
	})

	t.Run("overlapping stored blocks do not rewind the cursor", func(t *testing.T) {
		day := []*trip.ScheduledActivity{
			activityAt(t, "06:00", 240), // 06:00-10:00
			activityAt(t, "07:00", 60),  // contained in the first
		}
		got := EarliestStart(day, 60, open)
		if trip.MinutesToTime(got) != "10:00" {
			t.Errorf("got %s, want 10:00", trip.MinutesToTime(got))
		}
	})
}

func TestProposeStart(t *testing.T) {
	leg, err := trip.NewLeg(trip.Destination{Name: "Capri"})
	if err != nil {
		t.Fatalf("NewLeg: %v", err)
	}
	if _, err := leg.SetDateRange("2024-03-06", "2024-03-10"); err != nil {
		t.Fatalf("SetDateRange: %v", err)
	}
	if _, err := leg.AddCustom("Morning Swim", "", "06:00", 120, "2024-03-07"); err != nil {
		t.Fatalf("AddCustom: %v", err)
	}

	if got := ProposeStart(leg, "2024-03-07", 60, 360); got != "08:00" {
		t.Errorf("got %s, want 08:00", got)
	}
	// Other days are unaffected.
	if got := ProposeStart(leg, "2024-03-08", 60, 360); got != "06:00" {
		t.Errorf("got %s, want 06:00", got)
	}
}
