// Package booking orchestrates appointment creation and status changes.
// The partial unique index on (doctor_id, start_time) over live statuses
// is the authoritative double-booking guard; everything before the insert
// only exists to produce better error messages.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/internal/repo"
	entappt "github.com/caresetu/caresetu_backend/internal/repo/appointment"
	entverif "github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/caresetu/caresetu_backend/internal/service/availability"
	"github.com/caresetu/caresetu_backend/pkg/constants"
)

type Service interface {
	Book(ctx context.Context, req BookRequest) (*AppointmentView, error)
	Cancel(ctx context.Context, patientID, appointmentID uuid.UUID, reason string) (*AppointmentView, error)
	Complete(ctx context.Context, doctorID, appointmentID uuid.UUID) (*AppointmentView, error)
	ListMine(ctx context.Context, patientID uuid.UUID, f ListFilter) ([]AppointmentView, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, f DoctorListFilter) ([]AppointmentView, error)
}

type BookRequest struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	StartTime string
	Reason    string
	Mode      string // "online" (default) or "offline"
}

type ListFilter struct {
	Status string
	Limit  int
	Offset int
}

type DoctorListFilter struct {
	Status string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type AppointmentView struct {
	ID          uuid.UUID  `json:"id"`
	DoctorID    uuid.UUID  `json:"doctorId"`
	PatientID   uuid.UUID  `json:"patientId"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Status      string     `json:"status"`
	Mode        string     `json:"mode"`
	Reason      string     `json:"reason,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// AppointmentEvent is the NATS payload published after booking changes.
type AppointmentEvent struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	DoctorID      uuid.UUID `json:"doctorId"`
	PatientID     uuid.UUID `json:"patientId"`
	StartTime     time.Time `json:"startTime"`
	Status        string    `json:"status"`
}

type bookingService struct {
	db     *repo.Client
	grid   availability.Service
	nc     *nats.Conn
	defTZ  string
	logger *slog.Logger
	now    func() time.Time
}

func New(db *repo.Client, grid availability.Service, nc *nats.Conn, cfg config.SchedulingConfig) Service {
	defTZ := cfg.DefaultTimeZone
	if defTZ == "" {
		defTZ = "UTC"
	}
	return &bookingService{
		db:     db,
		grid:   grid,
		nc:     nc,
		defTZ:  defTZ,
		logger: slog.Default().With("service", "booking"),
		now:    time.Now,
	}
}

func (s *bookingService) Book(ctx context.Context, req BookRequest) (*AppointmentView, error) {
	if req.StartTime == "" {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	mode := req.Mode
	if mode == "" {
		mode = "online"
	}
	if mode != "online" && mode != "offline" {
		return nil, fmt.Errorf("%w: mode must be online or offline", ErrInvalidInput)
	}

	doc, err := s.db.Doctor.Get(ctx, req.DoctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}
	if !doc.IsActive {
		return nil, ErrDoctorNotFound
	}

	approved, err := s.db.DoctorVerification.Query().
		Where(
			entverif.DoctorID(doc.ID),
			entverif.StatusEQ(entverif.StatusApproved),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check verification: %w", err)
	}
	if !approved {
		return nil, ErrDoctorNotVerified
	}

	// Same zone choice as the grid computation, so the past-time check
	// below anchors to the same local day the recompute will use.
	loc, err := availability.ResolveLocation("", doc.TimeZone, s.defTZ)
	if err != nil {
		loc = time.UTC
	}
	now := s.now()
	start, err := availability.ParseStart(req.StartTime, loc, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	startUTC := start.UTC()

	nowLocal := now.In(loc)
	if start.In(loc).Before(nowLocal) {
		return nil, fmt.Errorf("%w: requested %s, current time is %s",
			ErrPastTime,
			start.In(loc).Format(time.RFC3339),
			nowLocal.Format(time.RFC3339))
	}

	// Courtesy recompute of the one-day grid. The insert below is the
	// real arbiter under concurrency.
	slot, err := s.matchSlot(ctx, req.DoctorID, start.In(loc))
	if err != nil {
		return nil, err
	}
	if !slot.Available {
		return nil, ErrSlotTaken
	}

	exists, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(req.DoctorID),
			entappt.StartTime(startUTC),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing appointment: %w", err)
	}
	if exists {
		return nil, ErrSlotTaken
	}

	row, err := s.db.Appointment.Create().
		SetDoctorID(req.DoctorID).
		SetPatientID(req.PatientID).
		SetStartTime(startUTC).
		SetEndTime(startUTC.Add(time.Duration(slot.DurationMinutes) * time.Minute)).
		SetStatus(entappt.StatusConfirmed).
		SetMode(entappt.Mode(mode)).
		SetReason(req.Reason).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// Lost the race: another writer holds the partial unique
			// index entry for this (doctor, start).
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	view := toView(row)
	s.publish(constants.SubjectAppointmentCreated, row)
	return &view, nil
}

// matchSlot recomputes a one-day grid and finds the slot whose UTC start
// equals the requested instant.
func (s *bookingService) matchSlot(ctx context.Context, doctorID uuid.UUID, startLocal time.Time) (*availability.SlotView, error) {
	grid, err := s.grid.WeeklyAvailability(ctx, availability.WeeklyRequest{
		DoctorID: doctorID,
		Start:    startLocal.Format("2006-01-02"),
		Days:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability: %w", err)
	}

	startUTC := startLocal.UTC()
	for _, day := range grid.Days {
		for i := range day.Slots {
			if day.Slots[i].StartUTC.Equal(startUTC) {
				return &day.Slots[i], nil
			}
		}
	}
	return nil, ErrInvalidSlot
}

func (s *bookingService) Cancel(ctx context.Context, patientID, appointmentID uuid.UUID, reason string) (*AppointmentView, error) {
	row, err := s.db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if row.PatientID != patientID {
		return nil, ErrNotOwner
	}

	switch row.Status {
	case entappt.StatusCancelled, entappt.StatusCompleted:
		return nil, fmt.Errorf("%w: cannot cancel a %s appointment", ErrInvalidTransition, row.Status)
	}

	updated, err := row.Update().
		SetStatus(entappt.StatusCancelled).
		SetCancellationReason(reason).
		SetCancelledAt(s.now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	view := toView(updated)
	s.publish(constants.SubjectAppointmentCancelled, updated)
	return &view, nil
}

func (s *bookingService) Complete(ctx context.Context, doctorID, appointmentID uuid.UUID) (*AppointmentView, error) {
	row, err := s.db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if row.DoctorID != doctorID {
		return nil, ErrNotOwner
	}

	switch row.Status {
	case entappt.StatusCompleted:
		// Idempotent: repeating the call is harmless.
		view := toView(row)
		return &view, nil
	case entappt.StatusCancelled:
		return nil, fmt.Errorf("%w: cannot complete a cancelled appointment", ErrInvalidTransition)
	}

	if s.now().UTC().Before(row.StartTime) {
		return nil, ErrNotYetStarted
	}

	updated, err := row.Update().
		SetStatus(entappt.StatusCompleted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete appointment: %w", err)
	}
	view := toView(updated)
	return &view, nil
}

func (s *bookingService) ListMine(ctx context.Context, patientID uuid.UUID, f ListFilter) ([]AppointmentView, error) {
	q := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID))
	if f.Status != "" {
		status := entappt.Status(f.Status)
		if err := entappt.StatusValidator(status); err != nil {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
		}
		q = q.Where(entappt.StatusEQ(status))
	}
	q = q.Order(repo.Desc(entappt.FieldStartTime))
	q = applyPaging(q, f.Limit, f.Offset)

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return toViews(rows), nil
}

func (s *bookingService) ListForDoctor(ctx context.Context, doctorID uuid.UUID, f DoctorListFilter) ([]AppointmentView, error) {
	q := s.db.Appointment.Query().
		Where(entappt.DoctorID(doctorID))
	if f.Status != "" {
		status := entappt.Status(f.Status)
		if err := entappt.StatusValidator(status); err != nil {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
		}
		q = q.Where(entappt.StatusEQ(status))
	}
	if !f.From.IsZero() {
		q = q.Where(entappt.StartTimeGTE(f.From.UTC()))
	}
	if !f.To.IsZero() {
		q = q.Where(entappt.StartTimeLT(f.To.UTC()))
	}
	q = q.Order(repo.Asc(entappt.FieldStartTime))
	q = applyPaging(q, f.Limit, f.Offset)

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return toViews(rows), nil
}

func applyPaging(q *repo.AppointmentQuery, limit, offset int) *repo.AppointmentQuery {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q.Limit(limit)
}

// publish sends the event without blocking or failing the request.
func (s *bookingService) publish(subject string, row *repo.Appointment) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(AppointmentEvent{
		AppointmentID: row.ID,
		DoctorID:      row.DoctorID,
		PatientID:     row.PatientID,
		StartTime:     row.StartTime,
		Status:        string(row.Status),
	})
	if err != nil {
		s.logger.Error("failed to marshal appointment event", "error", err)
		return
	}
	subject = subject + "." + row.ID.String()
	if err := s.nc.Publish(subject, payload); err != nil {
		s.logger.Warn("failed to publish appointment event",
			"subject", subject, "appointment_id", row.ID, "error", err)
	}
}

func toView(row *repo.Appointment) AppointmentView {
	return AppointmentView{
		ID:          row.ID,
		DoctorID:    row.DoctorID,
		PatientID:   row.PatientID,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		Status:      string(row.Status),
		Mode:        string(row.Mode),
		Reason:      row.Reason,
		CancelledAt: row.CancelledAt,
	}
}

func toViews(rows []*repo.Appointment) []AppointmentView {
	views := make([]AppointmentView, 0, len(rows))
	for _, r := range rows {
		views = append(views, toView(r))
	}
	return views
}
