package models

import "time"

type Staff struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	FirstName         string     `json:"firstName" gorm:"size:50;not null"`
	LastName          string     `json:"lastName" gorm:"size:50;not null"`
	Email             string     `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Phone             string     `json:"phone" gorm:"size:20"`
	Specialty         string     `json:"specialty" gorm:"size:50;not null"`
	Bio               string     `json:"bio"`
	Experience        int        `json:"experience" gorm:"default:0"` // years
	Rating            float64    `json:"rating" gorm:"default:0"`
	Image             string     `json:"image" gorm:"size:255"`
	WorkingHoursStart string     `json:"workingHoursStart" gorm:"size:5;default:09:00"`
	WorkingHoursEnd   string     `json:"workingHoursEnd" gorm:"size:5;default:18:00"`
	IsActive          bool       `json:"isActive"`
	DeactivatedAt     *time.Time `json:"deactivatedAt,omitempty"`
	DeactivatedByID   *uint      `json:"deactivatedById,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`

	Services     []Service           `json:"services,omitempty" gorm:"many2many:staff_services;"`
	Availability []StaffAvailability `json:"availability,omitempty" gorm:"foreignKey:StaffID"`
}

func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s *Staff) Deactivate(byUserID uint) {
	now := time.Now()
	s.IsActive = false
	s.DeactivatedAt = &now
	s.DeactivatedByID = &byUserID
}
