package app

import (
	"github.com/nats-io/nats.go"
	promclient "github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caresetu/caresetu_backend/config"
	httpapi "github.com/caresetu/caresetu_backend/internal/api/http"
	"github.com/caresetu/caresetu_backend/internal/api/http/handler"
	"github.com/caresetu/caresetu_backend/internal/api/http/router"
	"github.com/caresetu/caresetu_backend/internal/repo"
	"github.com/caresetu/caresetu_backend/internal/service/availability"
	"github.com/caresetu/caresetu_backend/internal/service/booking"
	"github.com/caresetu/caresetu_backend/internal/service/doctor"
	"github.com/caresetu/caresetu_backend/internal/service/notification"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

// ServiceModule provides domain services, handlers and the HTTP server.
var ServiceModule = fx.Module("services",
	fx.Provide(
		provideAvailability,
		provideBooking,
		doctor.New,
		notification.New,
		handler.NewAvailabilityHandler,
		handler.NewAppointmentHandler,
		handler.NewNotificationHandler,
		provideRouter,
		httpapi.NewServer,
	),
	fx.Invoke(httpapi.RegisterLifecycle),
)

func provideAvailability(db *repo.Client, cfg *config.Config) availability.Service {
	return availability.New(db, cfg.Scheduling)
}

func provideBooking(db *repo.Client, grid availability.Service, nc *nats.Conn, cfg *config.Config) booking.Service {
	return booking.New(db, grid, nc, cfg.Scheduling)
}

func provideRouter(
	cfg *config.Config,
	av *handler.AvailabilityHandler,
	ap *handler.AppointmentHandler,
	nt *handler.NotificationHandler,
	tokens *token.Manager,
	db *repo.Client,
	sessions *goredis.Client,
	registry *promclient.Registry,
) *router.Router {
	return router.New(router.Params{
		Config:        cfg,
		Availability:  av,
		Appointments:  ap,
		Notifications: nt,
		Tokens:        tokens,
		DB:            db,
		Sessions:      sessions,
		PromRegistry:  registry,
	})
}
