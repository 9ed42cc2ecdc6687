package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

func injectClaims(role string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(token.CtxKeyClaims, &token.Claims{UserID: uuid.New(), Role: role})
		return c.Next()
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"matching role passes", "doctor", []string{"doctor"}, http.StatusOK},
		{"one of several passes", "admin", []string{"doctor", "admin"}, http.StatusOK},
		{"wrong role rejected", "patient", []string{"doctor"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/guarded",
				injectClaims(tt.role), RequireRole(tt.allowed...),
				func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded",
		RequireRole("doctor"),
		func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRateLimiterDisabledOutsideProduction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Environment = "development"

	app := fiber.New()
	app.Get("/ping",
		func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) },
		RateLimiter(cfg, nil))

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, resp.StatusCode)
		}
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	t.Run("generated when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if id := resp.Header.Get(HeaderRequestID); id == "" {
			t.Error("expected a generated request id header")
		}
	})

	t.Run("caller id reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if id := resp.Header.Get(HeaderRequestID); id != "abc-123" {
			t.Errorf("request id = %q, want abc-123", id)
		}
	})
}
