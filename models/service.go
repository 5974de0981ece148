package models

import "time"

type Service struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"size:100;not null"`
	Description     string     `json:"description"`
	Price           float64    `json:"price" gorm:"not null"`
	Duration        int        `json:"duration" gorm:"not null"` // minutes
	Category        string     `json:"category" gorm:"size:50;not null"`
	Image           string     `json:"image" gorm:"size:255"`
	IsActive        bool       `json:"isActive"`
	StaffRequired   bool       `json:"staffRequired"`
	DeactivatedAt   *time.Time `json:"deactivatedAt,omitempty"`
	DeactivatedByID *uint      `json:"deactivatedById,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`

	StaffMembers []Staff `json:"staffMembers,omitempty" gorm:"many2many:staff_services;"`
}

func (s *Service) Deactivate(byUserID uint) {
	now := time.Now()
	s.IsActive = false
	s.DeactivatedAt = &now
	s.DeactivatedByID = &byUserID
}
