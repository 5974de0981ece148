package models

import "time"

// StaffAvailability is a recurring weekly window during which a staff member
// takes appointments. DayOfWeek follows time.Weekday: 0 is Sunday.
type StaffAvailability struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StaffID     uint      `json:"staffId" gorm:"not null;index"`
	DayOfWeek   int       `json:"dayOfWeek" gorm:"not null"`
	StartTime   string    `json:"startTime" gorm:"size:5;not null"` // HH:MM
	EndTime     string    `json:"endTime" gorm:"size:5;not null"`   // HH:MM
	// No column default: a default tag makes the ORM skip explicit false
	// values on insert. Creating code always sets this field.
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`

	Staff *Staff `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
}
