package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a confirmation wrapper around an appointment, carrying the
// human-readable reference handed to the customer.
type Booking struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	UserID           uint          `json:"userId" gorm:"not null;index"`
	AppointmentID    uint          `json:"appointmentId" gorm:"not null"`
	BookingReference string        `json:"bookingReference" gorm:"size:32;uniqueIndex;not null"`
	SpecialRequests  string        `json:"specialRequests"`
	Status           BookingStatus `json:"status" gorm:"size:20;default:pending"`
	CreatedAt        time.Time     `json:"createdAt"`

	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Appointment *Appointment `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
}
