package controllers

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

// ServiceController serves the public, read-only catalog. Management lives
// on the admin surface.
type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

func (h *ServiceController) ListServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := h.DB.Where("is_active = ?", true).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching services", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"services": services})
}

func (h *ServiceController) GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := h.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Service not found"})
	}
	return c.JSON(fiber.Map{"service": service})
}
