package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// Appointment binds a user, a service and a staff member to a (date, time)
// slot. Price is a snapshot of the service price at creation and is never
// recomputed when the service changes.
type Appointment struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	UserID    uint              `json:"userId" gorm:"not null;index"`
	ServiceID uint              `json:"serviceId" gorm:"not null"`
	StaffID   uint              `json:"staffId" gorm:"not null;index"`
	Date      Date              `json:"date" gorm:"type:date;not null"`
	Time      string            `json:"time" gorm:"size:5;not null"` // HH:MM
	Status    AppointmentStatus `json:"status" gorm:"size:20;default:pending"`
	Price     float64           `json:"price" gorm:"not null"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Staff   *Staff   `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Blocking reports whether the appointment keeps its staff member from being
// deactivated: only pending/confirmed appointments on or after today count.
func (a *Appointment) Blocking(today Date) bool {
	if a.Status != StatusPending && a.Status != StatusConfirmed {
		return false
	}
	return !a.Date.Before(today.Time)
}
