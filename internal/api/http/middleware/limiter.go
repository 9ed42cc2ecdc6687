package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/caresetu/caresetu_backend/config"
)

// RateLimiter returns a sliding-window limiter backed by the shared
// redis client so the limit holds across server instances. Disabled
// outside production.
func RateLimiter(cfg *config.Config, rdb *redis.Client) fiber.Handler {
	if cfg.Server.Environment != "production" || rdb == nil {
		return func(c fiber.Ctx) error { return c.Next() }
	}

	storage := redisstorage.NewFromConnection(rdb)

	return limiter.New(limiter.Config{
		Max:               120,
		Expiration:        time.Minute,
		Storage:           storage,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests",
			})
		},
	})
}
