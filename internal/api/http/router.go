package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/solutions-kit/os-tracker/internal/api/http/handlers"
	"github.com/solutions-kit/os-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Session           *handlers.SessionHandler
	Tickets           *handlers.TicketsHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are open to every role; writes
// carry the caller's session into the core, which enforces the role gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/role", cfg.Session.SelectRole)

	tickets := app.Group("/tickets", cfg.SessionMiddleware.Handle)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/stats", cfg.Tickets.Stats)
	tickets.Get("/next-os-number", cfg.Tickets.NextOSNumber)
	tickets.Get("/form-options", cfg.Tickets.FormOptions)
	tickets.Post("/", cfg.Tickets.CreateOrUpdate)
	tickets.Get("/:id/edit", cfg.Tickets.BeginEdit)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)
}
