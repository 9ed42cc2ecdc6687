package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/caresetu/caresetu_backend/config"
)

// RegisterLifecycle starts the fiber listener when fx starts and shuts
// it down gracefully on stop.
func RegisterLifecycle(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("http server listening", "addr", addr)
				if err := app.Listen(addr); err != nil {
					slog.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down http server")
			return app.ShutdownWithTimeout(10 * time.Second)
		},
	})
}
