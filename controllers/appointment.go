package controllers

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

// errSlotTaken aborts the booking transaction when the slot is occupied.
var errSlotTaken = errors.New("slot already taken")

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

// ListAppointments returns the caller's appointments, or every appointment
// for an admin.
func (h *AppointmentController) ListAppointments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := h.DB.Preload("Service").Preload("Staff")
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching appointments", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"appointments": appointments})
}

type AppointmentInput struct {
	ServiceID uint   `json:"serviceId"`
	StaffID   uint   `json:"staffId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

// CreateAppointment books a slot for the caller. The slot conflict check is
// an exact (staff, date, time) match with no status filter, and the
// check-then-insert pair is two statements inside one request transaction,
// not a unique constraint, so concurrent writers can still race.
func (h *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}
	if input.ServiceID == 0 || input.StaffID == 0 || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "serviceId, staffId, date and time are required"})
	}

	var service models.Service
	if err := h.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Service not found"})
	}

	var staff models.Staff
	if err := h.DB.First(&staff, input.StaffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Staff not found"})
	}

	date, err := models.ParseDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
	}

	appointment := models.Appointment{
		UserID:    user.ID,
		ServiceID: service.ID,
		StaffID:   staff.ID,
		Date:      date,
		Time:      input.Time,
		Price:     service.Price, // snapshot; later price edits never touch this row
		Notes:     input.Notes,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := utils.SlotTaken(tx, staff.ID, date, input.Time)
		if err != nil {
			return err
		}
		if taken {
			return errSlotTaken
		}
		return tx.Create(&appointment).Error
	})
	if errors.Is(err, errSlotTaken) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Staff is not available at this time"})
	}
	if err != nil {
		log.Printf("create appointment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error creating appointment", Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment created successfully",
		"appointment": appointment,
	})
}

func (h *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var appointment models.Appointment
	if err := h.DB.Preload("Service").Preload("Staff").First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Appointment not found"})
	}

	if !user.IsAdmin() && appointment.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{Message: "Access denied"})
	}

	return c.JSON(fiber.Map{"appointment": appointment})
}

type AppointmentUpdateInput struct {
	ServiceID *uint   `json:"serviceId"`
	StaffID   *uint   `json:"staffId"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

// UpdateAppointment lets the owner reschedule and the admin do anything.
// Changing the service re-snapshots the price from the service's current
// value; status edits are admin-only.
func (h *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var appointment models.Appointment
	if err := h.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Appointment not found"})
	}

	if !user.IsAdmin() && appointment.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{Message: "Access denied"})
	}

	input := new(AppointmentUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	if input.ServiceID != nil {
		var service models.Service
		if err := h.DB.First(&service, *input.ServiceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Service not found"})
		}
		appointment.ServiceID = service.ID
		appointment.Price = service.Price
	}

	if input.StaffID != nil {
		var staff models.Staff
		if err := h.DB.First(&staff, *input.StaffID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Staff not found"})
		}
		appointment.StaffID = staff.ID
	}

	if input.Date != nil {
		date, err := models.ParseDate(*input.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
		}
		appointment.Date = date
	}

	if input.Time != nil {
		appointment.Time = *input.Time
	}

	if input.Status != nil && user.IsAdmin() {
		appointment.Status = models.AppointmentStatus(*input.Status)
	}

	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error updating appointment", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment updated successfully",
		"appointment": appointment,
	})
}

// CancelAppointment is the DELETE handler: cancellation is a status
// transition, the row stays.
func (h *AppointmentController) CancelAppointment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var appointment models.Appointment
	if err := h.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Appointment not found"})
	}

	if !user.IsAdmin() && appointment.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{Message: "Access denied"})
	}

	appointment.Status = models.StatusCancelled
	if err := h.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error cancelling appointment", Error: err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Appointment cancelled successfully"})
}
