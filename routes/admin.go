package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/controllers"
)

// SetupAdminRoutes configures the management surface behind admin role checks
func SetupAdminRoutes(api fiber.Router, admin *controllers.AdminController, protected, requireAdmin fiber.Handler) {
	api.Get("/debug/database", admin.DatabaseStats)

	group := api.Group("/admin", protected, requireAdmin)

	group.Get("/dashboard/stats", admin.DashboardStats)

	group.Get("/services", admin.ListAllServices)
	group.Post("/services", admin.CreateService)
	group.Put("/services/:id", admin.UpdateService)
	group.Delete("/services/:id", admin.DeleteService)
	group.Post("/services/:id/image", admin.UploadServiceImage)

	group.Get("/staff", admin.ListAllStaff)
	group.Post("/staff", admin.CreateStaff)
	group.Put("/staff/:id", admin.UpdateStaff)
	group.Delete("/staff/:id", admin.DeleteStaff)
	group.Post("/staff/:id/image", admin.UploadStaffImage)

	group.Get("/appointments", admin.ListAppointments)
	group.Put("/appointments/:id", admin.UpdateAppointmentStatus)
	group.Post("/appointments/:id/cancel", admin.CancelAppointment)

	group.Get("/users", admin.ListUsers)
	group.Put("/users/:id", admin.UpdateUser)
}
