package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caresetu/caresetu_backend/internal/api/http/middleware"
)

func (r *Router) registerAvailabilityRoutes(v1 fiber.Router) {
	doctors := v1.Group("/doctors")

	// Public slot grid.
	doctors.Get("/:doctorId/availability", r.availability.GetWeekly)

	// Schedule and time-off management by the doctor.
	doctorOnly := []any{r.auth, middleware.RequireRole("doctor")}
	doctors.Post("/:doctorId/availability/set", r.availability.SetSchedule, doctorOnly...)
	doctors.Get("/:doctorId/time-off", r.availability.ListTimeOff, doctorOnly...)
	doctors.Post("/:doctorId/time-off", r.availability.CreateTimeOff, doctorOnly...)
	doctors.Delete("/:doctorId/time-off/:id", r.availability.DeleteTimeOff, doctorOnly...)
}
