// Package doctor provides read-side lookups for provider profiles and
// their verification state.
package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/internal/repo"
	entdoctor "github.com/caresetu/caresetu_backend/internal/repo/doctor"
	entverif "github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
)

type Service interface {
	// GetByUserID maps an authenticated user to their doctor profile.
	// The user_id link is the single authoritative association.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	IsApproved(ctx context.Context, doctorID uuid.UUID) (bool, error)
}

type Profile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	Specialization  string    `json:"specialization"`
	City            string    `json:"city,omitempty"`
	ExperienceYears int       `json:"experienceYears"`
	ConsultationFee int       `json:"consultationFee"`
	Services        []string  `json:"services,omitempty"`
	TimeZone        string    `json:"timeZone"`
	IsActive        bool      `json:"isActive"`
	Approved        bool      `json:"approved"`
	CreatedAt       time.Time `json:"createdAt"`
}

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	row, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(userID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load doctor by user: %w", err)
	}
	return s.toProfile(ctx, row)
}

func (s *doctorService) IsApproved(ctx context.Context, doctorID uuid.UUID) (bool, error) {
	ok, err := s.db.DoctorVerification.Query().
		Where(
			entverif.DoctorID(doctorID),
			entverif.StatusEQ(entverif.StatusApproved),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check verification: %w", err)
	}
	return ok, nil
}

func (s *doctorService) toProfile(ctx context.Context, row *repo.Doctor) (*Profile, error) {
	approved, err := s.IsApproved(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		ID:              row.ID,
		UserID:          row.UserID,
		Specialization:  row.Specialization,
		City:            row.City,
		ExperienceYears: row.ExperienceYears,
		ConsultationFee: row.ConsultationFee,
		Services:        row.Services,
		TimeZone:        row.TimeZone,
		IsActive:        row.IsActive,
		Approved:        approved,
		CreatedAt:       row.CreatedAt,
	}
	if row.Edges.User != nil {
		p.Name = row.Edges.User.Name
	}
	return p, nil
}
