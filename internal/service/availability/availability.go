// Package availability computes the bookable slot grid for a doctor from
// recurring weekly rules, time-off blackouts and existing appointments.
package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/internal/repo"
	entappt "github.com/caresetu/caresetu_backend/internal/repo/appointment"
	entrule "github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	entdoctor "github.com/caresetu/caresetu_backend/internal/repo/doctor"
	entverif "github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	enttimeoff "github.com/caresetu/caresetu_backend/internal/repo/timeoff"
)

type Service interface {
	// WeeklyAvailability materializes the slot grid for a doctor.
	WeeklyAvailability(ctx context.Context, req WeeklyRequest) (*WeeklyResponse, error)
	// SetWeeklySchedule replaces the doctor's entire weekly rule set.
	SetWeeklySchedule(ctx context.Context, doctorID uuid.UUID, rules []RuleInput) error
	// SearchAvailableDoctors returns a one-day grid per matching doctor.
	SearchAvailableDoctors(ctx context.Context, req SearchRequest) ([]DoctorAvailability, error)

	ListTimeOff(ctx context.Context, doctorID uuid.UUID) ([]TimeOffEntry, error)
	CreateTimeOff(ctx context.Context, doctorID uuid.UUID, in TimeOffInput) (*TimeOffEntry, error)
	DeleteTimeOff(ctx context.Context, doctorID, timeOffID uuid.UUID) error
}

type WeeklyRequest struct {
	DoctorID   uuid.UUID
	Start      string // "", "YYYY-MM-DD" or timestamp
	Days       int
	TZOverride string
}

type SlotView struct {
	StartLocal      string    `json:"startLocal"`
	StartUTC        time.Time `json:"startUtc"`
	Label           string    `json:"label"`
	DurationMinutes int       `json:"durationMinutes"`
	Available       bool      `json:"available"`
}

type DayView struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

type WeeklyResponse struct {
	DoctorID  uuid.UUID `json:"doctorId"`
	TimeZone  string    `json:"tz"`
	WeekStart string    `json:"weekStart"`
	Days      []DayView `json:"days"`
}

type RuleInput struct {
	DayOfWeek           int    `json:"dayOfWeek"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	IsActive            *bool  `json:"isActive"`
}

type SearchRequest struct {
	Date           string
	Specialization string
	City           string
}

type DoctorAvailability struct {
	DoctorID       uuid.UUID  `json:"doctorId"`
	Name           string     `json:"name"`
	Specialization string     `json:"specialization"`
	City           string     `json:"city,omitempty"`
	TimeZone       string     `json:"timeZone"`
	Date           string     `json:"date"`
	Slots          []SlotView `json:"slots"`
}

type TimeOffInput struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
}

type TimeOffEntry struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason,omitempty"`
}

type availabilityService struct {
	db      *repo.Client
	defTZ   string
	defDays int
	logger  *slog.Logger
	now     func() time.Time
}

func New(db *repo.Client, cfg config.SchedulingConfig) Service {
	defTZ := cfg.DefaultTimeZone
	if defTZ == "" {
		defTZ = "UTC"
	}
	return &availabilityService{
		db:      db,
		defTZ:   defTZ,
		defDays: cfg.DefaultDays,
		logger:  slog.Default().With("service", "availability"),
		now:     time.Now,
	}
}

func (s *availabilityService) WeeklyAvailability(ctx context.Context, req WeeklyRequest) (*WeeklyResponse, error) {
	doc, err := s.db.Doctor.Get(ctx, req.DoctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}

	loc, err := s.resolveLocation(req.TZOverride, doc.TimeZone)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start, err := ParseStart(req.Start, loc, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartDate, err)
	}
	days := ClampDays(req.Days, s.defDays)

	startLocal := start.In(loc)
	d0 := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, loc)
	windowEnd := d0.AddDate(0, 0, days)

	rules, taken, blackouts, err := s.fetchGridData(ctx, req.DoctorID, d0, windowEnd)
	if err != nil {
		return nil, err
	}

	grid, err := ComputeGrid(GridInput{
		Location:  loc,
		Start:     start,
		Days:      days,
		Now:       now,
		Rules:     rules,
		Taken:     taken,
		Blackouts: blackouts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute grid: %w", err)
	}

	resp := &WeeklyResponse{
		DoctorID:  req.DoctorID,
		TimeZone:  loc.String(),
		WeekStart: d0.Format("2006-01-02"),
		Days:      toDayViews(grid),
	}
	return resp, nil
}

// fetchGridData loads rules, live appointment starts and overlapping
// time-off for the window concurrently.
func (s *availabilityService) fetchGridData(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]Rule, map[int64]struct{}, []Blackout, error) {
	var (
		rules     []Rule
		taken     map[int64]struct{}
		blackouts []Blackout
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.db.AvailabilityRule.Query().
			Where(entrule.DoctorID(doctorID)).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load availability rules: %w", err)
		}
		rules = make([]Rule, 0, len(rows))
		for _, r := range rows {
			rules = append(rules, Rule{
				DayOfWeek:   r.DayOfWeek,
				StartTime:   r.StartTime,
				EndTime:     r.EndTime,
				SlotMinutes: r.SlotDurationMinutes,
				Active:      r.IsActive,
			})
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.db.Appointment.Query().
			Where(
				entappt.DoctorID(doctorID),
				entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
				entappt.StartTimeGTE(from.UTC()),
				entappt.StartTimeLT(to.UTC()),
			).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load appointments: %w", err)
		}
		taken = make(map[int64]struct{}, len(rows))
		for _, a := range rows {
			taken[a.StartTime.Unix()] = struct{}{}
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.db.TimeOff.Query().
			Where(
				enttimeoff.DoctorID(doctorID),
				enttimeoff.StartTimeLT(to.UTC()),
				enttimeoff.EndTimeGT(from.UTC()),
			).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load time off: %w", err)
		}
		blackouts = make([]Blackout, 0, len(rows))
		for _, t := range rows {
			blackouts = append(blackouts, Blackout{Start: t.StartTime, End: t.EndTime})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return rules, taken, blackouts, nil
}

// ResolveLocation picks the zone for slot math: an explicit override
// wins, then the doctor's stored zone, then the configured fallback.
// Only a bad override is an error; a bad stored or fallback zone
// degrades to the next choice, ending at UTC. Booking shares this so
// its past-time check anchors to the same local day as the grid.
func ResolveLocation(override, stored, fallback string) (*time.Location, error) {
	if override != "" {
		loc, err := time.LoadLocation(override)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, override)
		}
		return loc, nil
	}
	if stored != "" {
		if loc, err := time.LoadLocation(stored); err == nil {
			return loc, nil
		}
	}
	if fallback != "" {
		if loc, err := time.LoadLocation(fallback); err == nil {
			return loc, nil
		}
	}
	return time.UTC, nil
}

func (s *availabilityService) resolveLocation(override, stored string) (*time.Location, error) {
	loc, err := ResolveLocation(override, stored, s.defTZ)
	if err != nil {
		return nil, err
	}
	if override == "" && stored != "" && loc.String() != stored {
		s.logger.Warn("doctor has invalid stored time zone, falling back",
			"time_zone", stored, "fallback", loc.String())
	}
	return loc, nil
}

func toDayViews(grid []DaySlots) []DayView {
	days := make([]DayView, 0, len(grid))
	for _, d := range grid {
		dv := DayView{Date: d.Date, Slots: make([]SlotView, 0, len(d.Slots))}
		for _, sl := range d.Slots {
			dv.Slots = append(dv.Slots, SlotView{
				StartLocal:      sl.StartLocal.Format(time.RFC3339),
				StartUTC:        sl.StartUTC,
				Label:           sl.Label,
				DurationMinutes: sl.DurationMinutes,
				Available:       sl.Available,
			})
		}
		days = append(days, dv)
	}
	return days
}

func (s *availabilityService) SetWeeklySchedule(ctx context.Context, doctorID uuid.UUID, rules []RuleInput) error {
	exists, err := s.db.Doctor.Query().Where(entdoctor.ID(doctorID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check doctor: %w", err)
	}
	if !exists {
		return ErrDoctorNotFound
	}

	if err := ValidateRules(rules); err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}

	if _, err := tx.AvailabilityRule.Delete().
		Where(entrule.DoctorID(doctorID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear existing rules: %w", err)
	}

	builders := make([]*repo.AvailabilityRuleCreate, 0, len(rules))
	for _, r := range rules {
		duration := r.SlotDurationMinutes
		if duration == 0 {
			duration = 15
		}
		active := true
		if r.IsActive != nil {
			active = *r.IsActive
		}
		builders = append(builders, tx.AvailabilityRule.Create().
			SetDoctorID(doctorID).
			SetDayOfWeek(r.DayOfWeek).
			SetStartTime(r.StartTime).
			SetEndTime(r.EndTime).
			SetSlotDurationMinutes(duration).
			SetIsActive(active))
	}
	if _, err := tx.AvailabilityRule.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		if repo.IsConstraintError(err) {
			return fmt.Errorf("%w: duplicate day of week", ErrInvalidRule)
		}
		return fmt.Errorf("failed to insert rules: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedule: %w", err)
	}
	return nil
}

// ValidateRules checks a bulk schedule before it touches storage.
func ValidateRules(rules []RuleInput) error {
	seen := make(map[int]struct{}, len(rules))
	for i, r := range rules {
		if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
			return fmt.Errorf("%w: rule %d: dayOfWeek must be 0-6", ErrInvalidRule, i)
		}
		if _, dup := seen[r.DayOfWeek]; dup {
			return fmt.Errorf("%w: rule %d: duplicate dayOfWeek %d", ErrInvalidRule, i, r.DayOfWeek)
		}
		seen[r.DayOfWeek] = struct{}{}

		start, err := parseHHMM(r.StartTime)
		if err != nil {
			return fmt.Errorf("%w: rule %d: %v", ErrInvalidRule, i, err)
		}
		end, err := parseHHMM(r.EndTime)
		if err != nil {
			return fmt.Errorf("%w: rule %d: %v", ErrInvalidRule, i, err)
		}
		if end <= start {
			return fmt.Errorf("%w: rule %d: endTime must be after startTime", ErrInvalidRule, i)
		}
		if r.SlotDurationMinutes != 0 && (r.SlotDurationMinutes < 5 || r.SlotDurationMinutes > 60) {
			return fmt.Errorf("%w: rule %d: slotDurationMinutes must be 5-60", ErrInvalidRule, i)
		}
	}
	return nil
}

func (s *availabilityService) SearchAvailableDoctors(ctx context.Context, req SearchRequest) ([]DoctorAvailability, error) {
	q := s.db.Doctor.Query().
		Where(
			entdoctor.IsActive(true),
			entdoctor.HasVerificationsWith(entverif.StatusEQ(entverif.StatusApproved)),
		).
		WithUser()
	if req.Specialization != "" {
		q = q.Where(entdoctor.SpecializationEqualFold(req.Specialization))
	}
	if req.City != "" {
		q = q.Where(entdoctor.CityEqualFold(req.City))
	}

	doctors, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}

	results := make([]DoctorAvailability, 0, len(doctors))
	for _, doc := range doctors {
		grid, err := s.WeeklyAvailability(ctx, WeeklyRequest{
			DoctorID: doc.ID,
			Start:    req.Date,
			Days:     1,
		})
		if err != nil {
			// One broken profile must not abort the whole search.
			s.logger.Warn("skipping doctor in availability search",
				"doctor_id", doc.ID, "error", err)
			continue
		}

		entry := DoctorAvailability{
			DoctorID:       doc.ID,
			Specialization: doc.Specialization,
			City:           doc.City,
			TimeZone:       grid.TimeZone,
			Date:           grid.WeekStart,
		}
		if doc.Edges.User != nil {
			entry.Name = doc.Edges.User.Name
		}
		if len(grid.Days) > 0 {
			entry.Slots = grid.Days[0].Slots
		}
		results = append(results, entry)
	}
	return results, nil
}

func (s *availabilityService) ListTimeOff(ctx context.Context, doctorID uuid.UUID) ([]TimeOffEntry, error) {
	rows, err := s.db.TimeOff.Query().
		Where(enttimeoff.DoctorID(doctorID)).
		Order(repo.Asc(enttimeoff.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off: %w", err)
	}
	entries := make([]TimeOffEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, TimeOffEntry{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Reason:    r.Reason,
		})
	}
	return entries, nil
}

func (s *availabilityService) CreateTimeOff(ctx context.Context, doctorID uuid.UUID, in TimeOffInput) (*TimeOffEntry, error) {
	if in.StartTime.IsZero() || in.EndTime.IsZero() || !in.EndTime.After(in.StartTime) {
		return nil, ErrInvalidTimeOff
	}

	row, err := s.db.TimeOff.Create().
		SetDoctorID(doctorID).
		SetStartTime(in.StartTime.UTC()).
		SetEndTime(in.EndTime.UTC()).
		SetReason(in.Reason).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to create time off: %w", err)
	}
	return &TimeOffEntry{
		ID:        row.ID,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Reason:    row.Reason,
	}, nil
}

func (s *availabilityService) DeleteTimeOff(ctx context.Context, doctorID, timeOffID uuid.UUID) error {
	n, err := s.db.TimeOff.Delete().
		Where(
			enttimeoff.ID(timeOffID),
			enttimeoff.DoctorID(doctorID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete time off: %w", err)
	}
	if n == 0 {
		return ErrTimeOffNotFound
	}
	return nil
}
