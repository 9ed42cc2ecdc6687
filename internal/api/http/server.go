// Package http assembles the fiber application: global middleware,
// routes and server lifecycle.
package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/internal/api/http/middleware"
	"github.com/caresetu/caresetu_backend/internal/api/http/router"
	"github.com/caresetu/caresetu_backend/pkg/observability"
)

// NewServer builds the fiber app with the global middleware chain and
// all routes registered.
func NewServer(cfg *config.Config, r *router.Router, sessions *redis.Client) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:      "caresetu_backend",
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  2 * timeout,
	})

	app.Use(recoverer.New())
	app.Use(middleware.RequestID())
	app.Use(helmet.New())

	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORS.AllowOrigins,
			AllowMethods:     cfg.Server.CORS.AllowMethods,
			AllowHeaders:     cfg.Server.CORS.AllowHeaders,
			AllowCredentials: cfg.Server.CORS.AllowCredentials,
			MaxAge:           cfg.Server.CORS.MaxAgeSeconds,
		}))
	}

	if cfg.Observability.Enabled && cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware())
	}

	app.Use(middleware.RateLimiter(cfg, sessions))

	if !strings.EqualFold(cfg.Server.Environment, "test") {
		app.Use(logger.New())
	}

	r.Register(app)
	return app
}
