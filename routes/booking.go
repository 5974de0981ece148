package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/controllers"
)

// SetupBookingRoutes configures appointment, booking and payment routes,
// all of which require a bearer identity.
func SetupBookingRoutes(
	api fiber.Router,
	appointments *controllers.AppointmentController,
	bookings *controllers.BookingController,
	payments *controllers.PaymentController,
	users *controllers.UserController,
	protected fiber.Handler,
) {
	api.Get("/users/profile", protected, users.GetProfile)
	api.Put("/users/profile", protected, users.UpdateProfile)

	appt := api.Group("/appointments", protected)
	appt.Get("/", appointments.ListAppointments)
	appt.Post("/", appointments.CreateAppointment)
	appt.Get("/:id", appointments.GetAppointment)
	appt.Put("/:id", appointments.UpdateAppointment)
	appt.Delete("/:id", appointments.CancelAppointment)

	booking := api.Group("/bookings", protected)
	booking.Get("/", bookings.ListBookings)
	booking.Post("/", bookings.CreateBooking)

	payment := api.Group("/payments", protected)
	payment.Get("/", payments.ListPayments)
	payment.Post("/initiate", payments.InitiatePayment)
}
