package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/internal/service/availability"
	"github.com/caresetu/caresetu_backend/internal/service/doctor"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

type AvailabilityHandler struct {
	availability availability.Service
	doctors      doctor.Service
	logger       *slog.Logger
}

func NewAvailabilityHandler(a availability.Service, d doctor.Service) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: a,
		doctors:      d,
		logger:       slog.Default().With("handler", "availability"),
	}
}

// GetWeekly handles GET /doctors/:doctorId/availability?start&days&tz
func (h *AvailabilityHandler) GetWeekly(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var query struct {
		Start string `query:"start"`
		Days  int    `query:"days"`
		TZ    string `query:"tz"`
	}
	if err := c.Bind().Query(&query); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	resp, err := h.availability.WeeklyAvailability(c.Context(), availability.WeeklyRequest{
		DoctorID:   doctorID,
		Start:      query.Start,
		Days:       query.Days,
		TZOverride: query.TZ,
	})
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}
	return ok(c, resp)
}

// SetSchedule handles POST /doctors/:doctorId/availability/set
func (h *AvailabilityHandler) SetSchedule(c fiber.Ctx) error {
	profile, err := h.ownDoctorProfile(c)
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}
	if !profile.Approved {
		return h.mapAvailabilityError(c, errNotVerified)
	}

	var body struct {
		Availability []availability.RuleInput `json:"availability"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.availability.SetWeeklySchedule(c.Context(), profile.ID, body.Availability); err != nil {
		return h.mapAvailabilityError(c, err)
	}
	return created(c, fiber.Map{
		"doctorId":     profile.ID,
		"availability": body.Availability,
	})
}

// ListTimeOff handles GET /doctors/:doctorId/time-off
func (h *AvailabilityHandler) ListTimeOff(c fiber.Ctx) error {
	profile, err := h.ownDoctorProfile(c)
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}

	entries, err := h.availability.ListTimeOff(c.Context(), profile.ID)
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}
	return ok(c, entries)
}

// CreateTimeOff handles POST /doctors/:doctorId/time-off
func (h *AvailabilityHandler) CreateTimeOff(c fiber.Ctx) error {
	profile, err := h.ownDoctorProfile(c)
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}

	var body availability.TimeOffInput
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.availability.CreateTimeOff(c.Context(), profile.ID, body)
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}
	return created(c, entry)
}

// DeleteTimeOff handles DELETE /doctors/:doctorId/time-off/:id
func (h *AvailabilityHandler) DeleteTimeOff(c fiber.Ctx) error {
	profile, err := h.ownDoctorProfile(c)
	if err != nil {
		return h.mapAvailabilityError(c, err)
	}
	timeOffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid time off id")
	}

	if err := h.availability.DeleteTimeOff(c.Context(), profile.ID, timeOffID); err != nil {
		return h.mapAvailabilityError(c, err)
	}
	return noContent(c)
}

// ownDoctorProfile resolves the authenticated user's doctor profile and
// checks it matches the doctorId path parameter.
func (h *AvailabilityHandler) ownDoctorProfile(c fiber.Ctx) (*doctor.Profile, error) {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return nil, errUnauthenticated
	}
	pathID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return nil, errBadDoctorID
	}

	profile, err := h.doctors.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if profile.ID != pathID {
		return nil, errNotOwnProfile
	}
	return profile, nil
}

var (
	errUnauthenticated = errors.New("authentication required")
	errBadDoctorID     = errors.New("invalid doctor id")
	errNotOwnProfile   = errors.New("doctor profile does not match")
	errNotVerified     = errors.New("doctor is not verified")
)

func (h *AvailabilityHandler) mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errUnauthenticated):
		return unauthorized(c, err.Error())
	case errors.Is(err, errBadDoctorID):
		return badRequest(c, err.Error())
	case errors.Is(err, errNotOwnProfile),
		errors.Is(err, errNotVerified):
		return forbidden(c, err.Error())
	case errors.Is(err, availability.ErrDoctorNotFound),
		errors.Is(err, doctor.ErrNotFound):
		return notFound(c, "doctor not found")
	case errors.Is(err, availability.ErrInvalidTimeZone),
		errors.Is(err, availability.ErrInvalidStartDate):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrInvalidRule),
		errors.Is(err, availability.ErrInvalidTimeOff):
		return unprocessable(c, err.Error())
	case errors.Is(err, availability.ErrTimeOffNotFound):
		return notFound(c, err.Error())
	default:
		h.logger.Error("unexpected availability error", "error", err)
		return internalError(c)
	}
}
