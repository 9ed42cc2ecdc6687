package availability

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestValidateRules(t *testing.T) {
	valid := RuleInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 30}

	tests := []struct {
		name    string
		rules   []RuleInput
		wantErr bool
	}{
		{"empty set is fine", nil, false},
		{"single valid rule", []RuleInput{valid}, false},
		{"default duration allowed", []RuleInput{{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"}}, false},
		{"day out of range", []RuleInput{{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}}, true},
		{"negative day", []RuleInput{{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"}}, true},
		{"duplicate day", []RuleInput{valid, valid}, true},
		{"end before start", []RuleInput{{DayOfWeek: 3, StartTime: "17:00", EndTime: "09:00"}}, true},
		{"end equals start", []RuleInput{{DayOfWeek: 3, StartTime: "09:00", EndTime: "09:00"}}, true},
		{"malformed start", []RuleInput{{DayOfWeek: 3, StartTime: "9am", EndTime: "17:00"}}, true},
		{"duration too short", []RuleInput{{DayOfWeek: 4, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 2}}, true},
		{"duration too long", []RuleInput{{DayOfWeek: 4, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 90}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRules(tt.rules)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRules() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRule) {
				t.Errorf("error %v should wrap ErrInvalidRule", err)
			}
		})
	}
}

func TestResolveLocation(t *testing.T) {
	s := &availabilityService{defTZ: "UTC", logger: slog.Default()}

	t.Run("override wins", func(t *testing.T) {
		loc, err := s.resolveLocation("Europe/Berlin", "Asia/Kolkata")
		if err != nil {
			t.Fatalf("resolveLocation: %v", err)
		}
		if loc.String() != "Europe/Berlin" {
			t.Errorf("got %s, want Europe/Berlin", loc)
		}
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		if _, err := s.resolveLocation("Mars/Olympus", "Asia/Kolkata"); !errors.Is(err, ErrInvalidTimeZone) {
			t.Errorf("got %v, want ErrInvalidTimeZone", err)
		}
	})

	t.Run("stored zone used", func(t *testing.T) {
		loc, err := s.resolveLocation("", "Asia/Kolkata")
		if err != nil {
			t.Fatalf("resolveLocation: %v", err)
		}
		if loc.String() != "Asia/Kolkata" {
			t.Errorf("got %s, want Asia/Kolkata", loc)
		}
	})

	t.Run("invalid stored zone falls back", func(t *testing.T) {
		loc, err := s.resolveLocation("", "Not/AZone")
		if err != nil {
			t.Fatalf("resolveLocation: %v", err)
		}
		if loc != time.UTC && loc.String() != "UTC" {
			t.Errorf("got %s, want UTC fallback", loc)
		}
	})
}

// Booking resolves zones through the same helper, so an invalid stored
// zone must land on the configured default there too, not on UTC.
func TestResolveLocationSharedFallback(t *testing.T) {
	t.Run("invalid stored zone uses configured default", func(t *testing.T) {
		loc, err := ResolveLocation("", "Not/AZone", "Asia/Kolkata")
		if err != nil {
			t.Fatalf("ResolveLocation: %v", err)
		}
		if loc.String() != "Asia/Kolkata" {
			t.Errorf("got %s, want Asia/Kolkata", loc)
		}
	})

	t.Run("invalid stored and default degrade to UTC", func(t *testing.T) {
		loc, err := ResolveLocation("", "Not/AZone", "Also/Bad")
		if err != nil {
			t.Fatalf("ResolveLocation: %v", err)
		}
		if loc != time.UTC {
			t.Errorf("got %s, want UTC", loc)
		}
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		if _, err := ResolveLocation("Mars/Olympus", "Asia/Kolkata", "UTC"); !errors.Is(err, ErrInvalidTimeZone) {
			t.Errorf("got %v, want ErrInvalidTimeZone", err)
		}
	})
}
