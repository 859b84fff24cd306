package trip

import (
	"slices"
	"testing"
)

func TestCorrectRange(t *testing.T) {
	tests := []struct {
		name                 string
		start, end           string
		wantStart, wantEnd   string
	}{
		{"ordered", "2024-03-01", "2024-03-05", "2024-03-01", "2024-03-05"},
		{"single day", "2024-03-01", "2024-03-01", "2024-03-01", "2024-03-01"},
		{"inverted collapses to later", "2024-03-10", "2024-03-01", "2024-03-10", "2024-03-10"},
		{"inverted across months", "2024-04-02", "2024-03-28", "2024-04-02", "2024-04-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := CorrectRange(tt.start, tt.end)
			if gotStart != tt.wantStart || gotEnd != tt.wantEnd {
				t.Errorf("got (%s, %s), want (%s, %s)", gotStart, gotEnd, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	t.Run("three days", func(t *testing.T) {
		got := DateRange("2024-03-01", "2024-03-03")
		want := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("single day", func(t *testing.T) {
		got := DateRange("2024-03-01", "2024-03-01")
		if len(got) != 1 || got[0] != "2024-03-01" {
			t.Errorf("got %v, want one entry", got)
		}
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		if got := DateRange("2024-03-05", "2024-03-01"); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("month boundary", func(t *testing.T) {
		got := DateRange("2024-02-28", "2024-03-01")
		want := []string{"2024-02-28", "2024-02-29", "2024-03-01"} // 2024 is a leap year
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("spring DST transition window", func(t *testing.T) {
		// 2024-03-10 is the US spring-forward date; local calendar
		// arithmetic must still yield one entry per day.
		got := DateRange("2024-03-09", "2024-03-11")
		want := []string{"2024-03-09", "2024-03-10", "2024-03-11"}
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		if got := DateRange("03/01/2024", "2024-03-03"); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestDateWithinRange(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"inside", "2024-03-05", true},
		{"at start", "2024-03-01", true},
		{"at end", "2024-03-10", true},
		{"before", "2024-02-29", false},
		{"after", "2024-03-11", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateWithinRange(tt.date, "2024-03-01", "2024-03-10"); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShiftDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		days int
		want string
	}{
		{"forward", "2024-03-01", 1, "2024-03-02"},
		{"backward", "2024-03-01", -1, "2024-02-29"},
		{"across month", "2024-03-31", 1, "2024-04-01"},
		{"zero", "2024-03-15", 0, "2024-03-15"},
		{"malformed passes through", "not-a-date", 1, "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShiftDate(tt.date, tt.days); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
