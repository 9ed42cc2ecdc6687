package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get("/livez", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/startupz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/readyz", func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		checks := fiber.Map{}
		healthy := true

		if r.db != nil {
			if _, err := r.db.Doctor.Query().Limit(1).Count(ctx); err != nil {
				checks["database"] = "unreachable"
				healthy = false
			} else {
				checks["database"] = "ok"
			}
		}
		if r.sessions != nil {
			if err := r.sessions.Ping(ctx).Err(); err != nil {
				checks["redis"] = "unreachable"
				healthy = false
			} else {
				checks["redis"] = "ok"
			}
		}

		if !healthy {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "checks": checks,
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "checks": checks})
	})

	if r.cfg.Observability.Metrics.Enabled && r.promRegistry != nil {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(
			promhttp.HandlerFor(r.promRegistry, promhttp.HandlerOpts{}),
		))
	}
}
