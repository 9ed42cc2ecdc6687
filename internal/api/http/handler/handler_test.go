package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/internal/service/availability"
	"github.com/caresetu/caresetu_backend/internal/service/booking"
	"github.com/caresetu/caresetu_backend/internal/service/doctor"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

type stubAvailability struct {
	weekly func(availability.WeeklyRequest) (*availability.WeeklyResponse, error)
}

func (s *stubAvailability) WeeklyAvailability(_ context.Context, req availability.WeeklyRequest) (*availability.WeeklyResponse, error) {
	return s.weekly(req)
}
func (s *stubAvailability) SetWeeklySchedule(context.Context, uuid.UUID, []availability.RuleInput) error {
	return nil
}
func (s *stubAvailability) SearchAvailableDoctors(context.Context, availability.SearchRequest) ([]availability.DoctorAvailability, error) {
	return nil, nil
}
func (s *stubAvailability) ListTimeOff(context.Context, uuid.UUID) ([]availability.TimeOffEntry, error) {
	return nil, nil
}
func (s *stubAvailability) CreateTimeOff(context.Context, uuid.UUID, availability.TimeOffInput) (*availability.TimeOffEntry, error) {
	return nil, nil
}
func (s *stubAvailability) DeleteTimeOff(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubBooking struct {
	book func(booking.BookRequest) (*booking.AppointmentView, error)
}

func (s *stubBooking) Book(_ context.Context, req booking.BookRequest) (*booking.AppointmentView, error) {
	return s.book(req)
}
func (s *stubBooking) Cancel(context.Context, uuid.UUID, uuid.UUID, string) (*booking.AppointmentView, error) {
	return nil, booking.ErrAppointmentNotFound
}
func (s *stubBooking) Complete(context.Context, uuid.UUID, uuid.UUID) (*booking.AppointmentView, error) {
	return nil, booking.ErrAppointmentNotFound
}
func (s *stubBooking) ListMine(context.Context, uuid.UUID, booking.ListFilter) ([]booking.AppointmentView, error) {
	return nil, nil
}
func (s *stubBooking) ListForDoctor(context.Context, uuid.UUID, booking.DoctorListFilter) ([]booking.AppointmentView, error) {
	return nil, nil
}

type stubDoctors struct{}

func (stubDoctors) GetByUserID(context.Context, uuid.UUID) (*doctor.Profile, error) {
	return nil, doctor.ErrNotFound
}
func (stubDoctors) IsApproved(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

// fakeAuth injects claims the way the auth middleware would.
func fakeAuth(userID uuid.UUID, role string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(token.CtxKeyClaims, &token.Claims{UserID: userID, Role: role})
		return c.Next()
	}
}

func TestGetWeeklyStatusCodes(t *testing.T) {
	doctorID := uuid.New()

	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{"success", "/doctors/" + doctorID.String() + "/availability", nil, http.StatusOK},
		{"unknown doctor", "/doctors/" + doctorID.String() + "/availability", availability.ErrDoctorNotFound, http.StatusNotFound},
		{"bad timezone", "/doctors/" + doctorID.String() + "/availability?tz=Nope", availability.ErrInvalidTimeZone, http.StatusBadRequest},
		{"malformed id", "/doctors/not-a-uuid/availability", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAvailability{
				weekly: func(req availability.WeeklyRequest) (*availability.WeeklyResponse, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &availability.WeeklyResponse{
						DoctorID:  req.DoctorID,
						TimeZone:  "UTC",
						WeekStart: "2026-03-02",
						Days:      []availability.DayView{},
					}, nil
				},
			}
			h := NewAvailabilityHandler(stub, stubDoctors{})

			app := fiber.New()
			app.Get("/doctors/:doctorId/availability", h.GetWeekly)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.wantStatus, body)
			}
		})
	}
}

func TestBookErrorMapping(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"doctor missing", booking.ErrDoctorNotFound, http.StatusNotFound},
		{"not verified", booking.ErrDoctorNotVerified, http.StatusForbidden},
		{"past time", booking.ErrPastTime, http.StatusBadRequest},
		{"invalid slot", booking.ErrInvalidSlot, http.StatusBadRequest},
		{"slot taken", booking.ErrSlotTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubBooking{
				book: func(req booking.BookRequest) (*booking.AppointmentView, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &booking.AppointmentView{
						ID:        uuid.New(),
						DoctorID:  req.DoctorID,
						PatientID: req.PatientID,
						StartTime: time.Now().Add(time.Hour),
						Status:    "confirmed",
					}, nil
				},
			}
			h := NewAppointmentHandler(stub, &stubAvailability{}, stubDoctors{})

			app := fiber.New()
			app.Post("/appointments/book", fakeAuth(patientID, "patient"), h.Book)

			payload, _ := json.Marshal(map[string]any{
				"doctorId":  doctorID,
				"startTime": "2030-01-01T09:00:00Z",
			})
			req := httptest.NewRequest(http.MethodPost, "/appointments/book", strings.NewReader(string(payload)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.wantStatus, body)
			}
		})
	}
}

func TestBookRequiresAuthentication(t *testing.T) {
	h := NewAppointmentHandler(&stubBooking{}, &stubAvailability{}, stubDoctors{})

	app := fiber.New()
	app.Post("/appointments/book", h.Book)

	req := httptest.NewRequest(http.MethodPost, "/appointments/book", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
