package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rsvp-service/internal/api/http/handlers"
	"github.com/spec-kit/rsvp-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	RSVP           *handlers.RSVPHandler
	Guests         *handlers.GuestsHandler
	Admin          *handlers.AdminHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Guest-facing flow, keyed by the device cookie.
	rsvpGroup := app.Group("/rsvp")
	rsvpGroup.Get("", cfg.RSVP.Current)
	rsvpGroup.Post("/start", cfg.RSVP.Start)
	rsvpGroup.Post("/next", cfg.RSVP.Next)
	rsvpGroup.Post("/back", cfg.RSVP.Back)
	rsvpGroup.Post("/submit", cfg.RSVP.Submit)
	rsvpGroup.Get("/unlocked", cfg.RSVP.Unlocked)

	app.Get("/settings", cfg.Settings.GetSettings)

	authGroup := app.Group("/auth")
	authGroup.Post("/admin/login", cfg.Admin.Login)
	authGroup.Post("/password/reset/request", cfg.Admin.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Admin.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Admin.ChangePassword)

	// Administration area.
	adminGroup := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole())
	adminGroup.Get("/guests", cfg.Guests.ListGuests)
	adminGroup.Post("/guests", cfg.Guests.CreateGuest)
	adminGroup.Get("/guests/stats", cfg.Guests.GuestStats)
	adminGroup.Get("/guests/distribution", cfg.Guests.GuestDistribution)
	adminGroup.Get("/guests/export", cfg.Guests.ExportGuests)
	adminGroup.Get("/guests/:id", cfg.Guests.GetGuest)
	adminGroup.Patch("/guests/:id", cfg.Guests.UpdateGuest)
	adminGroup.Delete("/guests/:id", cfg.Guests.DeleteGuest)
	adminGroup.Patch("/settings", cfg.Settings.UpdateSettings)
}
