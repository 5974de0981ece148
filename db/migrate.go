package db

import (
	"gorm.io/gorm"

	"github.com/salonhq/booking-api/models"
)

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Staff{},
		&models.StaffAvailability{},
		&models.Appointment{},
		&models.Booking{},
		&models.Payment{},
	)
}
