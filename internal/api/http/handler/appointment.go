package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/internal/service/availability"
	"github.com/caresetu/caresetu_backend/internal/service/booking"
	"github.com/caresetu/caresetu_backend/internal/service/doctor"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

type AppointmentHandler struct {
	booking      booking.Service
	availability availability.Service
	doctors      doctor.Service
	logger       *slog.Logger
}

func NewAppointmentHandler(b booking.Service, a availability.Service, d doctor.Service) *AppointmentHandler {
	return &AppointmentHandler{
		booking:      b,
		availability: a,
		doctors:      d,
		logger:       slog.Default().With("handler", "appointment"),
	}
}

// Book handles POST /appointments/book
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		DoctorID  uuid.UUID `json:"doctorId"`
		StartTime string    `json:"startTime"`
		Reason    string    `json:"reason"`
		Mode      string    `json:"mode"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DoctorID == uuid.Nil {
		return badRequest(c, "doctorId is required")
	}

	appt, err := h.booking.Book(c.Context(), booking.BookRequest{
		PatientID: claims.UserID,
		DoctorID:  body.DoctorID,
		StartTime: body.StartTime,
		Reason:    body.Reason,
		Mode:      body.Mode,
	})
	if err != nil {
		return h.mapBookingError(c, err)
	}
	return created(c, fiber.Map{
		"appointmentId": appt.ID,
		"doctorId":      appt.DoctorID,
		"startTime":     appt.StartTime,
		"endTime":       appt.EndTime,
		"status":        appt.Status,
	})
}

// ListMine handles GET /appointments/my
func (h *AppointmentHandler) ListMine(c fiber.Ctx) error {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return unauthorized(c, "authentication required")
	}

	var query struct {
		Status string `query:"status"`
		Limit  int    `query:"limit"`
		Offset int    `query:"offset"`
	}
	if err := c.Bind().Query(&query); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	appts, err := h.booking.ListMine(c.Context(), claims.UserID, booking.ListFilter{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return h.mapBookingError(c, err)
	}
	return ok(c, appts)
}

// Cancel handles PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return unauthorized(c, "authentication required")
	}
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// Body is optional for cancellation.
	_ = c.Bind().JSON(&body)

	appt, err := h.booking.Cancel(c.Context(), claims.UserID, appointmentID, body.Reason)
	if err != nil {
		return h.mapBookingError(c, err)
	}
	return ok(c, appt)
}

// UpdateStatus handles PATCH /appointments/:id/status (doctor only).
// The only transition a doctor drives over the API is completion.
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	profile, err := h.ownDoctorProfile(c)
	if err != nil {
		return h.mapBookingError(c, err)
	}
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Status != "completed" {
		return badRequest(c, "status must be \"completed\"")
	}

	appt, err := h.booking.Complete(c.Context(), profile.ID, appointmentID)
	if err != nil {
		return h.mapBookingError(c, err)
	}
	return ok(c, appt)
}

// ListForDoctor handles GET /doctor/appointments
func (h *AppointmentHandler) ListForDoctor(c fiber.Ctx) error {
	profile, err := h.ownDoctorProfile(c)
	if err != nil {
		return h.mapBookingError(c, err)
	}

	var query struct {
		Status string `query:"status"`
		Date   string `query:"date"`
		Limit  int    `query:"limit"`
		Offset int    `query:"offset"`
	}
	if err := c.Bind().Query(&query); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	filter := booking.DoctorListFilter{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if query.Date != "" {
		loc, lerr := time.LoadLocation(profile.TimeZone)
		if lerr != nil {
			loc = time.UTC
		}
		day, derr := time.ParseInLocation("2006-01-02", query.Date, loc)
		if derr != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		filter.From = day
		filter.To = day.AddDate(0, 0, 1)
	}

	appts, err := h.booking.ListForDoctor(c.Context(), profile.ID, filter)
	if err != nil {
		return h.mapBookingError(c, err)
	}
	return ok(c, appts)
}

// SearchDoctors handles GET /appointments/doctors/available
func (h *AppointmentHandler) SearchDoctors(c fiber.Ctx) error {
	var query struct {
		Date           string `query:"date"`
		Specialization string `query:"specialization"`
		City           string `query:"city"`
	}
	if err := c.Bind().Query(&query); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	results, err := h.availability.SearchAvailableDoctors(c.Context(), availability.SearchRequest{
		Date:           query.Date,
		Specialization: query.Specialization,
		City:           query.City,
	})
	if err != nil {
		h.logger.Error("doctor search failed", "error", err)
		return internalError(c)
	}
	return ok(c, results)
}

func (h *AppointmentHandler) ownDoctorProfile(c fiber.Ctx) (*doctor.Profile, error) {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return nil, errUnauthenticated
	}
	return h.doctors.GetByUserID(c.Context(), claims.UserID)
}

func (h *AppointmentHandler) mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errUnauthenticated):
		return unauthorized(c, err.Error())
	case errors.Is(err, booking.ErrDoctorNotFound),
		errors.Is(err, doctor.ErrNotFound):
		return notFound(c, "doctor not found")
	case errors.Is(err, booking.ErrAppointmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrDoctorNotVerified):
		return forbidden(c, err.Error())
	case errors.Is(err, booking.ErrNotOwner):
		return forbidden(c, err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrPastTime),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrNotYetStarted),
		errors.Is(err, booking.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		h.logger.Error("unexpected booking error", "error", err)
		return internalError(c)
	}
}
