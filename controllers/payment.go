package controllers

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func (h *PaymentController) ListPayments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := h.DB.Model(&models.Payment{})
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching payments", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"payments": payments})
}

type PaymentInput struct {
	Phone         string  `json:"phone"`
	Amount        float64 `json:"amount"`
	AppointmentID *uint   `json:"appointmentId"`
	BookingID     *uint   `json:"bookingId"`
}

// InitiatePayment records a pending payment and then simulates the gateway
// callback by completing it in the same request. A real M-Pesa STK push
// would leave the record pending until the provider confirms.
func (h *PaymentController) InitiatePayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(PaymentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}
	if input.Phone == "" || input.Amount == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Phone and amount are required"})
	}

	payment := models.Payment{
		UserID:        user.ID,
		AppointmentID: input.AppointmentID,
		BookingID:     input.BookingID,
		Amount:        input.Amount,
		PhoneNumber:   input.Phone,
		Status:        models.PaymentPending,
		TransactionID: utils.TransactionID(),
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		now := time.Now()
		payment.Status = models.PaymentCompleted
		payment.CompletedAt = &now
		return tx.Save(&payment).Error
	})
	if err != nil {
		log.Printf("initiate payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error initiating payment", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Payment initiated successfully",
		"payment": payment,
	})
}
