package availability

import (
	"testing"
	"time"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestClampDays(t *testing.T) {
	tests := []struct {
		in       int
		fallback int
		want     int
	}{
		{0, 0, 7},
		{-3, 0, 7},
		{0, 5, 5},
		{-1, 14, 14},
		{0, 99, 7},
		{0, -2, 7},
		{1, 5, 1},
		{7, 0, 7},
		{14, 0, 14},
		{15, 5, 14},
		{100, 0, 14},
	}
	for _, tt := range tests {
		if got := ClampDays(tt.in, tt.fallback); got != tt.want {
			t.Errorf("ClampDays(%d, %d) = %d, want %d", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestParseStart(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty means now", func(t *testing.T) {
		got, err := ParseStart("", kolkata, now)
		if err != nil {
			t.Fatalf("ParseStart: %v", err)
		}
		if !got.Equal(now) {
			t.Errorf("got %v, want %v", got, now)
		}
	})

	t.Run("date-only anchors to local day", func(t *testing.T) {
		got, err := ParseStart("2026-03-02", kolkata, now)
		if err != nil {
			t.Fatalf("ParseStart: %v", err)
		}
		want := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("explicit offset honored", func(t *testing.T) {
		got, err := ParseStart("2026-03-02T09:00:00+05:30", kolkata, now)
		if err != nil {
			t.Fatalf("ParseStart: %v", err)
		}
		want := time.Date(2026, 3, 2, 9, 0, 0, 0, kolkata)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("offset-less treated as UTC", func(t *testing.T) {
		got, err := ParseStart("2026-03-02T09:00:00", kolkata, now)
		if err != nil {
			t.Fatalf("ParseStart: %v", err)
		}
		want := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := ParseStart("not-a-date", kolkata, now); err == nil {
			t.Error("expected error for garbage input")
		}
	})
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:30", 1050, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseHHMM(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHHMM(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseHHMM(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComputeGridBasicWalk(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-24 * time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	if len(grid) != 1 {
		t.Fatalf("got %d days, want 1", len(grid))
	}
	day := grid[0]
	if day.Date != "2026-03-02" {
		t.Errorf("Date = %q, want 2026-03-02", day.Date)
	}
	if len(day.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(day.Slots))
	}

	first := day.Slots[0]
	if first.Label != "09:00 AM" {
		t.Errorf("Label = %q, want 09:00 AM", first.Label)
	}
	wantUTC := time.Date(2026, 3, 2, 3, 30, 0, 0, time.UTC) // 09:00 IST
	if !first.StartUTC.Equal(wantUTC) {
		t.Errorf("StartUTC = %v, want %v", first.StartUTC, wantUTC)
	}
	if !first.Available {
		t.Error("first slot should be available")
	}
	if second := day.Slots[1]; second.Label != "09:30 AM" {
		t.Errorf("second Label = %q, want 09:30 AM", second.Label)
	}
}

func TestComputeGridTrailingSlotOverhangsWindow(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	// 09:00-09:50 with 30-minute slots: 09:30 starts inside the window
	// and is offered even though it ends past 09:50.
	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:50", SlotMinutes: 30, Active: true},
		},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	slots := grid[0].Slots
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[0].Label != "09:00 AM" || slots[1].Label != "09:30 AM" {
		t.Errorf("labels = %q, %q, want 09:00 AM, 09:30 AM", slots[0].Label, slots[1].Label)
	}
}

func TestComputeGridDayWithoutRule(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     2,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			// Rule only for Tuesday.
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("got %d days, want 2", len(grid))
	}
	if len(grid[0].Slots) != 0 {
		t.Errorf("Monday should have no slots, got %d", len(grid[0].Slots))
	}
	if len(grid[1].Slots) != 2 {
		t.Errorf("Tuesday should have 2 slots, got %d", len(grid[1].Slots))
	}
}

func TestComputeGridInactiveRuleIgnored(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: false},
		},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	if len(grid[0].Slots) != 0 {
		t.Errorf("inactive rule produced %d slots, want 0", len(grid[0].Slots))
	}
}

func TestComputeGridTakenSlot(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)
	nineAM := time.Date(2026, 3, 2, 9, 0, 0, 0, kolkata)

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
		Taken: map[int64]struct{}{nineAM.Unix(): {}},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	slots := grid[0].Slots
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[0].Available {
		t.Error("09:00 slot should be unavailable (booked)")
	}
	if !slots[1].Available {
		t.Error("09:30 slot should remain available")
	}
}

func TestComputeGridBlackoutOverlap(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	// Blackout 09:15-09:45 straddles both 30-minute slots.
	blackout := Blackout{
		Start: time.Date(2026, 3, 2, 9, 15, 0, 0, kolkata),
		End:   time.Date(2026, 3, 2, 9, 45, 0, 0, kolkata),
	}

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
		Blackouts: []Blackout{blackout},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	for i, sl := range grid[0].Slots {
		if sl.Available {
			t.Errorf("slot %d (%s) should be blacked out", i, sl.Label)
		}
	}
}

func TestComputeGridBlackoutTouchingEdgeDoesNotBlock(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	// Blackout ends exactly when the 09:00 slot begins. Half-open
	// intervals: no overlap.
	blackout := Blackout{
		Start: time.Date(2026, 3, 2, 8, 0, 0, 0, kolkata),
		End:   time.Date(2026, 3, 2, 9, 0, 0, 0, kolkata),
	}

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
		Blackouts: []Blackout{blackout},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	if !grid[0].Slots[0].Available {
		t.Error("09:00 slot should be available when blackout ends at 09:00")
	}
}

func TestComputeGridPastSlotsUnavailable(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	// It's 09:10 local: the 09:00 slot has started, 09:30 has not.
	now := time.Date(2026, 3, 2, 9, 10, 0, 0, kolkata)

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      now,
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	slots := grid[0].Slots
	if slots[0].Available {
		t.Error("09:00 slot is in the past and should be unavailable")
	}
	if !slots[1].Available {
		t.Error("09:30 slot is in the future and should be available")
	}
}

func TestComputeGridAfternoonLabels(t *testing.T) {
	kolkata := mustLoc(t, "Asia/Kolkata")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	grid, err := ComputeGrid(GridInput{
		Location: kolkata,
		Start:    monday,
		Days:     1,
		Now:      monday.Add(-time.Hour),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "14:00", SlotMinutes: 60, Active: true},
		},
	})
	if err != nil {
		t.Fatalf("ComputeGrid: %v", err)
	}
	if got := grid[0].Slots[0].Label; got != "01:00 PM" {
		t.Errorf("Label = %q, want 01:00 PM", got)
	}
}

func TestComputeGridMalformedRuleTime(t *testing.T) {
	_, err := ComputeGrid(GridInput{
		Location: time.UTC,
		Start:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Days:     1,
		Now:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Rules: []Rule{
			{DayOfWeek: 1, StartTime: "bad", EndTime: "10:00", SlotMinutes: 30, Active: true},
		},
	})
	if err == nil {
		t.Error("expected error for malformed rule time")
	}
}
