// Package notification manages the per-user in-app inbox. Entries are
// created by event workers, never directly by HTTP handlers.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/internal/repo"
	entnotif "github.com/caresetu/caresetu_backend/internal/repo/notification"
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*View, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]View, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

type CreateInput struct {
	UserID uuid.UUID
	Kind   string
	Title  string
	Body   string
	Meta   map[string]string
}

type View struct {
	ID        uuid.UUID         `json:"id"`
	Kind      string            `json:"kind"`
	Title     string            `json:"title"`
	Body      string            `json:"body,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"createdAt"`
}

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, in CreateInput) (*View, error) {
	if in.Title == "" {
		return nil, ErrEmptyTitle
	}
	kind := entnotif.Kind(in.Kind)
	if err := entnotif.KindValidator(kind); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}

	row, err := s.db.Notification.Create().
		SetUserID(in.UserID).
		SetKind(kind).
		SetTitle(in.Title).
		SetBody(in.Body).
		SetMeta(in.Meta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	v := toView(row)
	return &v, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]View, error) {
	q := s.db.Notification.Query().
		Where(entnotif.UserID(userID))
	if unreadOnly {
		q = q.Where(entnotif.Read(false))
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	rows, err := q.
		Order(repo.Desc(entnotif.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	views := make([]View, 0, len(rows))
	for _, r := range rows {
		views = append(views, toView(r))
	}
	return views, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	n, err := s.db.Notification.Update().
		Where(
			entnotif.ID(notificationID),
			entnotif.UserID(userID),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Update().
		Where(
			entnotif.UserID(userID),
			entnotif.Read(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}

func toView(row *repo.Notification) View {
	return View{
		ID:        row.ID,
		Kind:      string(row.Kind),
		Title:     row.Title,
		Body:      row.Body,
		Meta:      row.Meta,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
	}
}
