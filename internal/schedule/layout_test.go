package schedule

import "testing"

func testLayout() Layout {
	return Layout{
		OpenMinutes:  360,  // 06:00
		CloseMinutes: 1320, // 22:00
		HourHeight:   60,
		SnapMinutes:  30,
	}
}

func TestTopOffset(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"at opening", 360, 0},
		{"one hour in", 420, 60},
		{"half hour in", 390, 30},
		{"ten hours in", 960, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.TopOffset(tt.start); got != tt.want {
				t.Errorf("TopOffset(%d) = %d, want %d", tt.start, got, tt.want)
			}
		})
	}

	t.Run("rounds to nearest pixel", func(t *testing.T) {
		short := Layout{OpenMinutes: 360, CloseMinutes: 1320, HourHeight: 50, SnapMinutes: 30}
		// 20 minutes at 50px/h is 16.66px.
		if got := short.TopOffset(380); got != 17 {
			t.Errorf("got %d, want 17", got)
		}
	})
}

func TestBlockHeight(t *testing.T) {
	l := testLayout()
	if got := l.BlockHeight(60); got != 60 {
		t.Errorf("got %d, want 60", got)
	}
	if got := l.BlockHeight(90); got != 90 {
		t.Errorf("got %d, want 90", got)
	}
	short := Layout{OpenMinutes: 360, CloseMinutes: 1320, HourHeight: 50, SnapMinutes: 30}
	// 45 minutes at 50px/h is 37.5px, rounded up.
	if got := short.BlockHeight(45); got != 38 {
		t.Errorf("got %d, want 38", got)
	}
}

func TestPixelsToMinutes(t *testing.T) {
	l := testLayout()
	if got := l.PixelsToMinutes(60); got != 60 {
		t.Errorf("got %v, want 60", got)
	}
	if got := l.PixelsToMinutes(45); got != 45 {
		t.Errorf("got %v, want 45", got)
	}
	if got := l.PixelsToMinutes(-30); got != -30 {
		t.Errorf("got %v, want -30", got)
	}
	t.Run("fractional result preserved", func(t *testing.T) {
		if got := l.PixelsToMinutes(10); got != 10 {
			t.Errorf("got %v, want 10", got)
		}
	})
}

func TestSnap(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name    string
		minutes float64
		want    int
	}{
		{"already aligned", 600, 600},
		{"rounds down", 610, 600},
		{"rounds up", 625, 630},
		{"midpoint rounds to earlier slot", 645, 630},
		{"just past midpoint rounds up", 646, 660},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Snap(tt.minutes); got != tt.want {
				t.Errorf("Snap(%v) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestClampStart(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name     string
		start    int
		duration int
		want     int
	}{
		{"inside bounds", 600, 60, 600},
		{"before opening", 300, 60, 360},
		{"would pass closing", 1300, 60, 1260},
		{"exactly at closing boundary", 1260, 60, 1260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ClampStart(tt.start, tt.duration); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGrowDuration(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name     string
		start    int
		duration int
		want     int
	}{
		{"full step", 600, 60, 90},
		{"clamped by closing bound", 1290, 30, 30}, // 21:30 start, 22:00 close
		{"partial step to closing", 1230, 60, 90},  // 20:30 start, ends exactly at close
		{"capped at max duration", 360, 480, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.GrowDuration(tt.start, tt.duration); got != tt.want {
				t.Errorf("GrowDuration(%d, %d) = %d, want %d", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestShrinkDuration(t *testing.T) {
	l := testLayout()
	if got := l.ShrinkDuration(90); got != 60 {
		t.Errorf("got %d, want 60", got)
	}
	if got := l.ShrinkDuration(30); got != 30 {
		t.Errorf("got %d, want floor of 30", got)
	}
	if got := l.ShrinkDuration(45); got != 30 {
		t.Errorf("got %d, want 30", got)
	}
}

func TestDayShift(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{0.9, 1},
		{0.76, 1},
		{0.75, 0},
		{0.5, 0},
		{0.25, 0},
		{0.24, -1},
		{0.1, -1},
	}

	for _, tt := range tests {
		if got := DayShift(tt.fraction); got != tt.want {
			t.Errorf("DayShift(%v) = %d, want %d", tt.fraction, got, tt.want)
		}
	}
}
