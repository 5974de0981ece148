package controllers

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

type BookingController struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

func NewBookingController(db *gorm.DB, mailer *utils.Mailer) *BookingController {
	return &BookingController{DB: db, Mailer: mailer}
}

func (h *BookingController) ListBookings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := h.DB.Preload("Appointment").Preload("Appointment.Service").Preload("Appointment.Staff")
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching bookings", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

type BookingInput struct {
	AppointmentID   uint   `json:"appointmentId"`
	SpecialRequests string `json:"specialRequests"`
}

// CreateBooking wraps an existing appointment in a confirmed booking with a
// human-readable reference and emails the reference to the customer.
func (h *BookingController) CreateBooking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	var appointment models.Appointment
	if err := h.DB.Preload("Service").First(&appointment, input.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Appointment not found"})
	}

	booking := models.Booking{
		UserID:           user.ID,
		AppointmentID:    appointment.ID,
		BookingReference: utils.BookingReference(),
		SpecialRequests:  input.SpecialRequests,
		Status:           models.BookingConfirmed,
	}

	if err := h.DB.Create(&booking).Error; err != nil {
		log.Printf("create booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error creating booking", Error: err.Error()})
	}

	// Best effort: a failed confirmation mail never fails the booking.
	if h.Mailer != nil {
		go h.sendConfirmation(user, &booking, &appointment)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func (h *BookingController) sendConfirmation(user models.User, booking *models.Booking, appointment *models.Appointment) {
	serviceName := ""
	if appointment.Service != nil {
		serviceName = appointment.Service.Name
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking is confirmed.</p>
		<ul>
			<li><strong>Reference:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s at %s</li>
		</ul>
		<p>We look forward to seeing you.</p>
	`, user.FirstName, booking.BookingReference, serviceName, appointment.Date, appointment.Time)

	if err := h.Mailer.Send(user.Email, "Booking Confirmation "+booking.BookingReference, body); err != nil {
		log.Printf("booking %d: failed to send confirmation email: %v", booking.ID, err)
	}
}
