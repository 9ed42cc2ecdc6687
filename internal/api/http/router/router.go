// Package router wires HTTP routes to handlers and per-route middleware.
package router

import (
	"github.com/gofiber/fiber/v3"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/internal/api/http/handler"
	"github.com/caresetu/caresetu_backend/internal/api/http/middleware"
	"github.com/caresetu/caresetu_backend/internal/repo"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

type Router struct {
	cfg           *config.Config
	availability  *handler.AvailabilityHandler
	appointments  *handler.AppointmentHandler
	notifications *handler.NotificationHandler

	auth         fiber.Handler
	db           *repo.Client
	sessions     *redis.Client
	promRegistry *promclient.Registry
}

type Params struct {
	Config        *config.Config
	Availability  *handler.AvailabilityHandler
	Appointments  *handler.AppointmentHandler
	Notifications *handler.NotificationHandler
	Tokens        *token.Manager
	DB            *repo.Client
	Sessions      *redis.Client
	PromRegistry  *promclient.Registry
}

func New(p Params) *Router {
	return &Router{
		cfg:           p.Config,
		availability:  p.Availability,
		appointments:  p.Appointments,
		notifications: p.Notifications,
		auth:          middleware.Auth(p.Tokens, p.Sessions),
		db:            p.DB,
		sessions:      p.Sessions,
		promRegistry:  p.PromRegistry,
	}
}

// Register attaches every route group to the app.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	v1 := app.Group("/api/v1")
	r.registerAvailabilityRoutes(v1)
	r.registerAppointmentRoutes(v1)
	r.registerNotificationRoutes(v1)
}
