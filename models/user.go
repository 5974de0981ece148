package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	FirstName       string     `json:"firstName" gorm:"size:50;not null"`
	LastName        string     `json:"lastName" gorm:"size:50;not null"`
	Email           string     `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Phone           string     `json:"phone" gorm:"size:20"`
	PasswordHash    string     `json:"-" gorm:"size:255;not null"`
	Role            string     `json:"role" gorm:"size:20;default:user"`
	LoyaltyPoints   int        `json:"loyaltyPoints" gorm:"default:0"`
	MembershipTier  string     `json:"membershipTier" gorm:"size:20;default:standard"`
	IsActive        bool       `json:"isActive"`
	DeactivatedAt   *time.Time `json:"deactivatedAt,omitempty"`
	DeactivatedByID *uint      `json:"deactivatedById,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:UserID"`
	Bookings     []Booking     `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Deactivate records who flipped the flag and when, instead of a bare
// boolean toggle.
func (u *User) Deactivate(byUserID uint) {
	now := time.Now()
	u.IsActive = false
	u.DeactivatedAt = &now
	u.DeactivatedByID = &byUserID
}
