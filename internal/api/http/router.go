package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}

	users := app.Group("/users")
	users.Post("/create", cfg.Accounts.Create)

	protected := users.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/get/me", cfg.Accounts.GetMe)
	protected.Patch("/update/me", cfg.Accounts.UpdateMe)
	protected.Delete("/delete/me", cfg.Accounts.DeleteMe)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refreshToken", cfg.Auth.RefreshToken)
}
