package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minDays     = 1
	maxDays     = 14
	defaultDays = 7
)

// Rule is one recurring weekly window in the doctor's local zone.
type Rule struct {
	DayOfWeek   int // 0 = Sunday .. 6 = Saturday
	StartTime   string
	EndTime     string
	SlotMinutes int
	Active      bool
}

// Blackout is a half-open [Start, End) interval during which slots are
// unavailable. Instants, zone-independent.
type Blackout struct {
	Start time.Time
	End   time.Time
}

// Slot is one bookable interval in the materialized grid.
type Slot struct {
	StartLocal      time.Time
	StartUTC        time.Time
	Label           string
	DurationMinutes int
	Available       bool
}

// DaySlots groups the slots of one local calendar day.
type DaySlots struct {
	Date  string // "2006-01-02" in the doctor's zone
	Slots []Slot
}

// GridInput carries everything the pure grid computation needs.
type GridInput struct {
	Location *time.Location
	Start    time.Time // any instant inside the first requested day
	Days     int
	Now      time.Time
	Rules    []Rule
	// Taken holds the exact UTC start instants of live appointments.
	Taken     map[int64]struct{}
	Blackouts []Blackout
}

// ClampDays normalizes the requested grid span to [1,14]. Zero or
// negative input selects fallback when that is itself a valid span,
// otherwise 7.
func ClampDays(days, fallback int) int {
	if days <= 0 {
		if fallback >= minDays && fallback <= maxDays {
			return fallback
		}
		return defaultDays
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// ParseStart parses the grid anchor. Date-only input is anchored to that
// calendar day in loc. Timestamps with an explicit offset are honored;
// offset-less timestamps are treated as UTC before conversion. The zero
// string means "now".
func ParseStart(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" {
		return now.In(loc), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start date %q", s)
}

// parseHHMM converts "HH:MM" to minutes after local midnight.
func parseHHMM(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("malformed hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("malformed minute in %q", s)
	}
	return h*60 + m, nil
}

// ComputeGrid materializes the slot grid for in.Days local calendar days
// starting at the day containing in.Start. Days without an active rule
// produce an empty slot list.
func ComputeGrid(in GridInput) ([]DaySlots, error) {
	days := ClampDays(in.Days, 0)

	byWeekday := make(map[int]Rule, len(in.Rules))
	for _, r := range in.Rules {
		if r.Active {
			byWeekday[r.DayOfWeek] = r
		}
	}

	startLocal := in.Start.In(in.Location)
	d0 := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, in.Location)
	nowLocal := in.Now.In(in.Location)

	out := make([]DaySlots, 0, days)
	for d := 0; d < days; d++ {
		// AddDate walks calendar days so DST transitions don't shift
		// the local midnight anchor.
		dayStart := d0.AddDate(0, 0, d)
		day := DaySlots{
			Date:  dayStart.Format("2006-01-02"),
			Slots: []Slot{},
		}

		rule, ok := byWeekday[int(dayStart.Weekday())]
		if !ok {
			out = append(out, day)
			continue
		}

		startMin, err := parseHHMM(rule.StartTime)
		if err != nil {
			return nil, fmt.Errorf("rule for weekday %d: %w", rule.DayOfWeek, err)
		}
		endMin, err := parseHHMM(rule.EndTime)
		if err != nil {
			return nil, fmt.Errorf("rule for weekday %d: %w", rule.DayOfWeek, err)
		}
		slotMin := rule.SlotMinutes
		if slotMin <= 0 {
			slotMin = 15
		}

		cursor := dayStart.Add(time.Duration(startMin) * time.Minute)
		end := dayStart.Add(time.Duration(endMin) * time.Minute)

		// A slot is emitted whenever it starts inside the window, so the
		// trailing slot may run past the window end. A 09:00-09:50 window
		// with 30-minute slots offers both 09:00 and 09:30.
		for cursor.Before(end) {
			next := cursor.Add(time.Duration(slotMin) * time.Minute)
			slot := Slot{
				StartLocal:      cursor,
				StartUTC:        cursor.UTC(),
				Label:           cursor.Format("03:04 PM"),
				DurationMinutes: slotMin,
				Available:       true,
			}

			if cursor.Before(nowLocal) {
				slot.Available = false
			}
			if slot.Available {
				if _, taken := in.Taken[cursor.Unix()]; taken {
					slot.Available = false
				}
			}
			if slot.Available {
				for _, b := range in.Blackouts {
					if cursor.Before(b.End) && next.After(b.Start) {
						slot.Available = false
						break
					}
				}
			}

			day.Slots = append(day.Slots, slot)
			cursor = next
		}

		out = append(out, day)
	}

	return out, nil
}
