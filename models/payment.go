package models

import "time"

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

type Payment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"userId" gorm:"not null;index"`
	AppointmentID *uint         `json:"appointmentId,omitempty"`
	BookingID     *uint         `json:"bookingId,omitempty"`
	Amount        float64       `json:"amount" gorm:"not null"`
	PhoneNumber   string        `json:"phoneNumber" gorm:"size:20"`
	Status        PaymentStatus `json:"status" gorm:"size:20;default:pending"`
	TransactionID string        `json:"transactionId" gorm:"size:32;uniqueIndex"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
