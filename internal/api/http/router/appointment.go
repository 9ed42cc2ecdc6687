package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caresetu/caresetu_backend/internal/api/http/middleware"
)

func (r *Router) registerAppointmentRoutes(v1 fiber.Router) {
	appts := v1.Group("/appointments")

	// Public search across verified doctors.
	appts.Get("/doctors/available", r.appointments.SearchDoctors)

	patientOnly := []any{r.auth, middleware.RequireRole("patient")}
	appts.Post("/book", r.appointments.Book, patientOnly...)
	appts.Get("/my", r.appointments.ListMine, patientOnly...)
	appts.Patch("/:id/cancel", r.appointments.Cancel, patientOnly...)

	doctorOnly := []any{r.auth, middleware.RequireRole("doctor")}
	appts.Patch("/:id/status", r.appointments.UpdateStatus, doctorOnly...)

	v1.Get("/doctor/appointments", r.appointments.ListForDoctor, doctorOnly...)
}
