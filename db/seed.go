package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/salonhq/booking-api/models"
)

// Seed creates the admin account and a small catalog so a fresh database is
// usable right away. Every block is idempotent.
func Seed(gdb *gorm.DB) error {
	var count int64

	if err := gdb.Model(&models.User{}).Where("email = ?", "admin@salon.com").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		admin := models.User{
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@salon.com",
			Phone:     "+254700000000",
			Role:      models.RoleAdmin,
			IsActive:  true,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			return err
		}
		if err := gdb.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Seeded admin user admin@salon.com")
	}

	if err := gdb.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		services := []models.Service{
			{Name: "Women's Haircut & Style", Description: "Professional haircut tailored to your style", Price: 1500, Duration: 60, Category: "hair", IsActive: true, StaffRequired: true},
			{Name: "Men's Haircut", Description: "Classic or modern men's haircut", Price: 800, Duration: 30, Category: "hair", IsActive: true, StaffRequired: true},
			{Name: "Spa Manicure", Description: "Luxurious manicure with hand massage", Price: 1200, Duration: 45, Category: "nails", IsActive: true, StaffRequired: true},
			{Name: "Classic Facial", Description: "Deep cleansing and hydrating facial treatment", Price: 2000, Duration: 60, Category: "skincare", IsActive: true, StaffRequired: true},
		}
		if err := gdb.Create(&services).Error; err != nil {
			return err
		}
		log.Println("Seeded sample services")
	}

	if err := gdb.Model(&models.Staff{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		staff := []models.Staff{
			{FirstName: "Sarah", LastName: "Johnson", Email: "sarah@salon.com", Phone: "+254722222222", Specialty: "hair-stylist", Experience: 5, Bio: "Expert hair stylist with 5 years experience", Rating: 4.8, IsActive: true},
			{FirstName: "Mike", LastName: "Brown", Email: "mike@salon.com", Phone: "+254733333333", Specialty: "barber", Experience: 3, Bio: "Professional barber specializing in modern cuts", Rating: 4.7, IsActive: true},
			{FirstName: "Emma", LastName: "Wilson", Email: "emma@salon.com", Phone: "+254744444444", Specialty: "skincare-specialist", Experience: 4, Bio: "Certified skincare specialist with 4 years experience", Rating: 4.9, IsActive: true},
		}
		if err := gdb.Create(&staff).Error; err != nil {
			return err
		}

		// Tuesday through Saturday, standard salon hours.
		var windows []models.StaffAvailability
		for _, s := range staff {
			for day := 2; day <= 6; day++ {
				windows = append(windows, models.StaffAvailability{
					StaffID:     s.ID,
					DayOfWeek:   day,
					StartTime:   "09:00",
					EndTime:     "18:00",
					IsAvailable: true,
				})
			}
		}
		if err := gdb.Create(&windows).Error; err != nil {
			return err
		}
		log.Println("Seeded sample staff and availability")
	}

	return nil
}
