package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/pkg/reqctx"
)

const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request an id, reusing a caller-provided one,
// and stores it in both the response header and the request context.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)

		meta := reqctx.Meta(c.Context())
		meta.RequestID = id
		meta.ClientIP = c.IP()
		c.SetContext(reqctx.WithMeta(c.Context(), meta))

		return c.Next()
	}
}
