package trip

import "testing"

func TestPaginate(t *testing.T) {
	t.Run("ten days starting wednesday", func(t *testing.T) {
		// 2024-03-06 is a Wednesday; ten days span two week pages.
		weeks := Paginate(DateRange("2024-03-06", "2024-03-15"))
		if len(weeks) != 2 {
			t.Fatalf("got %d weeks, want 2", len(weeks))
		}
		first := weeks[0]
		if first[0] != "" || first[1] != "" {
			t.Errorf("Mon/Tue placeholders not empty: %q %q", first[0], first[1])
		}
		if first[2] != "2024-03-06" {
			t.Errorf("first real date at slot 2 = %q, want 2024-03-06", first[2])
		}
		if first[6] != "2024-03-10" {
			t.Errorf("Sunday slot = %q, want 2024-03-10", first[6])
		}
		second := weeks[1]
		if second[0] != "2024-03-11" {
			t.Errorf("second week Monday = %q, want 2024-03-11", second[0])
		}
		if second[4] != "2024-03-15" {
			t.Errorf("second week Friday = %q, want 2024-03-15", second[4])
		}
		for col := 5; col < 7; col++ {
			if second[col] != "" {
				t.Errorf("trailing slot %d = %q, want placeholder", col, second[col])
			}
		}
	})

	t.Run("monday start fills from slot zero", func(t *testing.T) {
		// 2024-03-04 is a Monday.
		weeks := Paginate(DateRange("2024-03-04", "2024-03-10"))
		if len(weeks) != 1 {
			t.Fatalf("got %d weeks, want 1", len(weeks))
		}
		for col, d := range weeks[0] {
			if d == "" {
				t.Errorf("slot %d empty, want a date", col)
			}
		}
	})

	t.Run("single sunday lands in last slot", func(t *testing.T) {
		// 2024-03-10 is a Sunday.
		weeks := Paginate([]string{"2024-03-10"})
		if len(weeks) != 1 {
			t.Fatalf("got %d weeks, want 1", len(weeks))
		}
		if weeks[0][6] != "2024-03-10" {
			t.Errorf("Sunday slot = %q", weeks[0][6])
		}
		for col := 0; col < 6; col++ {
			if weeks[0][col] != "" {
				t.Errorf("slot %d = %q, want placeholder", col, weeks[0][col])
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if weeks := Paginate(nil); weeks != nil {
			t.Errorf("got %v, want nil", weeks)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		dates := DateRange("2024-03-06", "2024-03-15")
		a := Paginate(dates)
		b := Paginate(dates)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("week %d differs between runs", i)
			}
		}
	})
}

func TestWeekLookups(t *testing.T) {
	weeks := Paginate(DateRange("2024-03-06", "2024-03-15"))

	if idx := WeekOf(weeks, "2024-03-12"); idx != 1 {
		t.Errorf("WeekOf = %d, want 1", idx)
	}
	if idx := WeekOf(weeks, "2024-01-01"); idx != 0 {
		t.Errorf("WeekOf for absent date = %d, want fallback 0", idx)
	}
	if col := weeks[0].IndexOf("2024-03-08"); col != 4 {
		t.Errorf("IndexOf Friday = %d, want 4", col)
	}
	if col := weeks[0].IndexOf(""); col != -1 {
		t.Errorf("IndexOf empty = %d, want -1", col)
	}
	if d := weeks[0].FirstDate(); d != "2024-03-06" {
		t.Errorf("FirstDate = %q", d)
	}
}

func TestWeekdayShortName(t *testing.T) {
	if got := WeekdayShortName(0); got != "Mon" {
		t.Errorf("got %q, want Mon", got)
	}
	if got := WeekdayShortName(6); got != "Sun" {
		t.Errorf("got %q, want Sun", got)
	}
	if got := WeekdayShortName(7); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
