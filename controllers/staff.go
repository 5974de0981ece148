package controllers

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

func (h *StaffController) ListStaff(c *fiber.Ctx) error {
	var staff []models.Staff
	if err := h.DB.Where("is_active = ?", true).Find(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching staff", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

func (h *StaffController) GetStaff(c *fiber.Ctx) error {
	var staff models.Staff
	if err := h.DB.First(&staff, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Staff not found"})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

// ListAvailability returns the recurring weekly windows, optionally filtered
// to one staff member via ?staffId=.
func (h *StaffController) ListAvailability(c *fiber.Ctx) error {
	query := h.DB.Where("is_available = ?", true)
	if staffID := c.Query("staffId"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	var availability []models.StaffAvailability
	if err := query.Find(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching staff availability", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"availability": availability})
}
