package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/internal/service/notification"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

type NotificationHandler struct {
	notifications notification.Service
	logger        *slog.Logger
}

func NewNotificationHandler(n notification.Service) *NotificationHandler {
	return &NotificationHandler{
		notifications: n,
		logger:        slog.Default().With("handler", "notification"),
	}
}

// List handles GET /notifications?unread&limit&offset
func (h *NotificationHandler) List(c fiber.Ctx) error {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return unauthorized(c, "authentication required")
	}

	var query struct {
		Unread bool `query:"unread"`
		Limit  int  `query:"limit"`
		Offset int  `query:"offset"`
	}
	if err := c.Bind().Query(&query); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	views, err := h.notifications.List(c.Context(), claims.UserID, query.Unread, query.Limit, query.Offset)
	if err != nil {
		return h.mapNotificationError(c, err)
	}
	return ok(c, views)
}

// MarkRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return unauthorized(c, "authentication required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.notifications.MarkRead(c.Context(), claims.UserID, id); err != nil {
		return h.mapNotificationError(c, err)
	}
	return ok(c, fiber.Map{"id": id, "read": true})
}

// MarkAllRead handles PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return unauthorized(c, "authentication required")
	}

	n, err := h.notifications.MarkAllRead(c.Context(), claims.UserID)
	if err != nil {
		return h.mapNotificationError(c, err)
	}
	return ok(c, fiber.Map{"updated": n})
}

func (h *NotificationHandler) mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, notification.ErrEmptyTitle),
		errors.Is(err, notification.ErrUnknownKind):
		return badRequest(c, err.Error())
	default:
		h.logger.Error("unexpected notification error", "error", err)
		return internalError(c)
	}
}
