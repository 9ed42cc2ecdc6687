package booking

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/caresetu/caresetu_backend/config"
)

func TestBookRejectsMissingStartTime(t *testing.T) {
	s := &bookingService{logger: slog.Default(), now: time.Now}

	_, err := s.Book(context.Background(), BookRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Book without startTime = %v, want ErrInvalidInput", err)
	}
}

func TestBookRejectsUnknownMode(t *testing.T) {
	s := &bookingService{logger: slog.Default(), now: time.Now}

	_, err := s.Book(context.Background(), BookRequest{
		StartTime: "2030-01-01T09:00:00Z",
		Mode:      "telepathy",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Book with bad mode = %v, want ErrInvalidInput", err)
	}
}

func TestNewCarriesSchedulingTimeZone(t *testing.T) {
	svc, ok := New(nil, nil, nil, config.SchedulingConfig{DefaultTimeZone: "Asia/Kolkata"}).(*bookingService)
	if !ok {
		t.Fatal("unexpected service type")
	}
	if svc.defTZ != "Asia/Kolkata" {
		t.Errorf("defTZ = %q, want Asia/Kolkata", svc.defTZ)
	}

	svc = New(nil, nil, nil, config.SchedulingConfig{}).(*bookingService)
	if svc.defTZ != "UTC" {
		t.Errorf("defTZ = %q, want UTC when unset", svc.defTZ)
	}
}

func TestPublishToleratesNilConnection(t *testing.T) {
	s := &bookingService{logger: slog.Default(), now: time.Now}
	// Must not panic when messaging is not configured.
	s.publish("caresetu.appointment.created", nil)
}
