package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(api fiber.Router, auth *controllers.AuthController, protected fiber.Handler) {
	group := api.Group("/auth")

	// Public routes
	group.Post("/signup", auth.Signup)
	group.Post("/login", auth.Login)
	group.Post("/refresh", auth.Refresh)

	// Protected routes
	group.Get("/me", protected, auth.Me)
	group.Post("/logout", protected, auth.Logout)
}
