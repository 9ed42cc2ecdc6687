package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/caresetu/caresetu_backend/pkg/reqctx"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

// Auth validates the Bearer token and, when a redis client is supplied,
// checks the session key so revoked sessions are rejected immediately.
func Auth(tokens *token.Manager, sessions *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorizedJSON(c, "missing authorization header")
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return unauthorizedJSON(c, "malformed authorization header")
		}

		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			return unauthorizedJSON(c, "invalid or expired token")
		}

		if sessions != nil && claims.SessionID != "" {
			key := sessionKey(claims.SessionID)
			exists, err := sessions.Exists(c.Context(), key).Result()
			if err == nil && exists == 0 {
				return unauthorizedJSON(c, "session expired")
			}
		}

		c.Locals(token.CtxKeyClaims, claims)

		meta := reqctx.Meta(c.Context())
		meta.UserID = claims.UserID
		meta.Role = claims.Role
		c.SetContext(reqctx.WithMeta(c.Context(), meta))

		return c.Next()
	}
}

// RequireRole allows the request through only when the authenticated
// user holds one of the given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims := token.ClaimsFromFiber(c)
		if claims == nil {
			return unauthorizedJSON(c, "authentication required")
		}
		for _, r := range roles {
			if claims.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func unauthorizedJSON(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
