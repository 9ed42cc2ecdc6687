package token

import (
	"github.com/gofiber/fiber/v3"
)

// CtxKeyClaims is the fiber locals key under which the auth middleware
// stores verified claims.
const CtxKeyClaims = "auth_claims"

// ClaimsFromFiber returns the verified claims stored by the auth
// middleware, or nil when the request is unauthenticated.
func ClaimsFromFiber(c fiber.Ctx) *Claims {
	claims, _ := c.Locals(CtxKeyClaims).(*Claims)
	return claims
}
