package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/controllers"
)

// SetupCatalogRoutes configures the public service/staff browsing routes
func SetupCatalogRoutes(api fiber.Router, services *controllers.ServiceController, staff *controllers.StaffController) {
	api.Get("/services", services.ListServices)
	api.Get("/services/:id", services.GetService)

	api.Get("/staff", staff.ListStaff)
	api.Get("/staff/:id", staff.GetStaff)

	api.Get("/staff-availability", staff.ListAvailability)
}
