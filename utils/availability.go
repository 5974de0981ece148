package utils

import (
	"gorm.io/gorm"

	"github.com/salonhq/booking-api/models"
)

// SlotTaken reports whether any appointment already occupies the exact
// (staff, date, time) triple. Status is not filtered: a cancelled
// appointment still blocks its slot.
func SlotTaken(tx *gorm.DB, staffID uint, date models.Date, timeOfDay string) (bool, error) {
	var count int64
	err := tx.Model(&models.Appointment{}).
		Where("staff_id = ? AND date = ? AND time = ?", staffID, date, timeOfDay).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
