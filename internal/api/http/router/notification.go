package router

import (
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerNotificationRoutes(v1 fiber.Router) {
	notifs := v1.Group("/notifications")

	notifs.Get("/", r.notifications.List, r.auth)
	notifs.Patch("/read-all", r.notifications.MarkAllRead, r.auth)
	notifs.Patch("/:id/read", r.notifications.MarkRead, r.auth)
}
