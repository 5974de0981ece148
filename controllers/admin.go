package controllers

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

// AdminController carries the management surface: dashboard aggregates and
// CRUD over services, staff, users and appointments. Every route behind it
// is already gated by middleware.RequireAdmin.
type AdminController struct {
	DB       *gorm.DB
	Uploader *utils.Uploader
}

func NewAdminController(db *gorm.DB, uploader *utils.Uploader) *AdminController {
	return &AdminController{DB: db, Uploader: uploader}
}

// DashboardStats computes every figure fresh per request; there is no
// materialized aggregate to fall out of date.
func (h *AdminController) DashboardStats(c *fiber.Ctx) error {
	var (
		totalUsers        int64
		totalAppointments int64
		totalServices     int64
		totalStaff        int64
		totalBookings     int64
		totalPayments     int64
		todayAppointments int64
		pendingPayments   int64
		totalRevenue      float64
	)

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&totalUsers, h.DB.Model(&models.User{})},
		{&totalAppointments, h.DB.Model(&models.Appointment{})},
		{&totalServices, h.DB.Model(&models.Service{})},
		{&totalStaff, h.DB.Model(&models.Staff{})},
		{&totalBookings, h.DB.Model(&models.Booking{})},
		{&totalPayments, h.DB.Model(&models.Payment{})},
		{&todayAppointments, h.DB.Model(&models.Appointment{}).Where("date = ?", models.Today())},
		{&pendingPayments, h.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentPending)},
	}
	for _, s := range counts {
		if err := s.query.Count(s.dst).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching dashboard stats", Error: err.Error()})
		}
	}

	row := h.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&totalRevenue); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching dashboard stats", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"totalUsers":        totalUsers,
			"totalAppointments": totalAppointments,
			"totalServices":     totalServices,
			"totalStaff":        totalStaff,
			"totalBookings":     totalBookings,
			"totalPayments":     totalPayments,
			"totalRevenue":      totalRevenue,
			"todayAppointments": todayAppointments,
			"pendingPayments":   pendingPayments,
		},
	})
}

// DatabaseStats is the unauthenticated per-table row count probe.
func (h *AdminController) DatabaseStats(c *fiber.Ctx) error {
	counts := fiber.Map{}
	for name, model := range map[string]interface{}{
		"users":              &models.User{},
		"services":           &models.Service{},
		"staff":              &models.Staff{},
		"appointments":       &models.Appointment{},
		"bookings":           &models.Booking{},
		"payments":           &models.Payment{},
		"staff_availability": &models.StaffAvailability{},
	} {
		var n int64
		if err := h.DB.Model(model).Count(&n).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error counting tables", Error: err.Error()})
		}
		counts[name] = n
	}
	return c.JSON(fiber.Map{"database_stats": counts})
}

// ===== services =====

func (h *AdminController) ListAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := h.DB.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching services", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"services": services})
}

type ServiceInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Duration      *int    `json:"duration"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	StaffRequired *bool   `json:"staffRequired"`
	StaffIDs      []uint  `json:"staffIds"`
}

func (h *AdminController) CreateService(c *fiber.Ctx) error {
	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}
	if input.Name == "" || input.Price == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Name and price are required"})
	}

	var existing models.Service
	if h.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Service with this name already exists"})
	}

	service := models.Service{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Duration:      60,
		Category:      "general",
		Image:         input.Image,
		IsActive:      true,
		StaffRequired: true,
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != "" {
		service.Category = input.Category
	}
	if input.StaffRequired != nil {
		service.StaffRequired = *input.StaffRequired
	}

	if err := h.DB.Create(&service).Error; err != nil {
		log.Printf("create service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error creating service", Error: err.Error()})
	}

	if len(input.StaffIDs) > 0 {
		if err := h.assignStaff(&service, input.StaffIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error assigning staff", Error: err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Service created successfully",
		"service": service,
	})
}

func (h *AdminController) UpdateService(c *fiber.Ctx) error {
	var service models.Service
	if err := h.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Service not found"})
	}

	input := new(ServiceUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	if input.Name != nil {
		var existing models.Service
		if h.DB.Where("name = ? AND id <> ?", *input.Name, service.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Service name already taken"})
		}
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		// Existing appointments keep their snapshot price.
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Image != nil {
		service.Image = *input.Image
	}
	if input.StaffRequired != nil {
		service.StaffRequired = *input.StaffRequired
	}
	if input.IsActive != nil {
		h.setServiceActive(&service, *input.IsActive, middleware.CurrentUser(c).ID)
	}

	if err := h.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error updating service", Error: err.Error()})
	}

	if input.StaffIDs != nil {
		if err := h.assignStaff(&service, *input.StaffIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error assigning staff", Error: err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Service updated successfully",
		"service": service,
	})
}

type ServiceUpdateInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	Duration      *int     `json:"duration"`
	Category      *string  `json:"category"`
	Image         *string  `json:"image"`
	StaffRequired *bool    `json:"staffRequired"`
	IsActive      *bool    `json:"isActive"`
	StaffIDs      *[]uint  `json:"staffIds"`
}

// DeleteService is a soft delete: the row survives for referential history.
func (h *AdminController) DeleteService(c *fiber.Ctx) error {
	admin := middleware.CurrentUser(c)

	var service models.Service
	if err := h.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Service not found"})
	}

	service.Deactivate(admin.ID)
	if err := h.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error deleting service", Error: err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

func (h *AdminController) UploadServiceImage(c *fiber.Ctx) error {
	var service models.Service
	if err := h.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Service not found"})
	}

	return h.uploadImage(c, "services", func(url string) error {
		service.Image = url
		return h.DB.Save(&service).Error
	})
}

func (h *AdminController) assignStaff(service *models.Service, staffIDs []uint) error {
	var staff []models.Staff
	if len(staffIDs) > 0 {
		if err := h.DB.Where("id IN ?", staffIDs).Find(&staff).Error; err != nil {
			return err
		}
	}
	return h.DB.Model(service).Association("StaffMembers").Replace(staff)
}

func (h *AdminController) setServiceActive(service *models.Service, active bool, adminID uint) {
	if !active {
		service.Deactivate(adminID)
		return
	}
	service.IsActive = true
	service.DeactivatedAt = nil
	service.DeactivatedByID = nil
}

// ===== staff =====

func (h *AdminController) ListAllStaff(c *fiber.Ctx) error {
	var staff []models.Staff
	if err := h.DB.Preload("Services").Find(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching staff", Error: err.Error()})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

type StaffInput struct {
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Specialty         string  `json:"specialty"`
	Bio               string  `json:"bio"`
	Experience        int     `json:"experience"`
	Rating            float64 `json:"rating"`
	Image             string  `json:"image"`
	WorkingHoursStart string  `json:"workingHoursStart"`
	WorkingHoursEnd   string  `json:"workingHoursEnd"`
	ServiceIDs        []uint  `json:"serviceIds"`
}

func (h *AdminController) CreateStaff(c *fiber.Ctx) error {
	input := new(StaffInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}
	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "First name, last name and email are required"})
	}

	var existing models.Staff
	if h.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Staff with this email already exists"})
	}

	staff := models.Staff{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		Phone:             input.Phone,
		Specialty:         input.Specialty,
		Bio:               input.Bio,
		Experience:        input.Experience,
		Rating:            input.Rating,
		Image:             input.Image,
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "18:00",
		IsActive:          true,
	}
	if staff.Specialty == "" {
		staff.Specialty = "hair-stylist"
	}
	if input.WorkingHoursStart != "" {
		staff.WorkingHoursStart = input.WorkingHoursStart
	}
	if input.WorkingHoursEnd != "" {
		staff.WorkingHoursEnd = input.WorkingHoursEnd
	}

	if err := h.DB.Create(&staff).Error; err != nil {
		log.Printf("create staff: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error creating staff member", Error: err.Error()})
	}

	if len(input.ServiceIDs) > 0 {
		if err := h.assignServices(&staff, input.ServiceIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error assigning services", Error: err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Staff member created successfully",
		"staff":   staff,
	})
}

type StaffUpdateInput struct {
	FirstName         *string  `json:"firstName"`
	LastName          *string  `json:"lastName"`
	Email             *string  `json:"email"`
	Phone             *string  `json:"phone"`
	Specialty         *string  `json:"specialty"`
	Bio               *string  `json:"bio"`
	Experience        *int     `json:"experience"`
	Rating            *float64 `json:"rating"`
	Image             *string  `json:"image"`
	WorkingHoursStart *string  `json:"workingHoursStart"`
	WorkingHoursEnd   *string  `json:"workingHoursEnd"`
	IsActive          *bool    `json:"isActive"`
	ServiceIDs        *[]uint  `json:"serviceIds"`
}

func (h *AdminController) UpdateStaff(c *fiber.Ctx) error {
	var staff models.Staff
	if err := h.DB.First(&staff, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Staff member not found"})
	}

	input := new(StaffUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	if input.Email != nil {
		var existing models.Staff
		if h.DB.Where("email = ? AND id <> ?", *input.Email, staff.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Email already taken by another staff member"})
		}
		staff.Email = *input.Email
	}
	if input.FirstName != nil {
		staff.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		staff.LastName = *input.LastName
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.Specialty != nil {
		staff.Specialty = *input.Specialty
	}
	if input.Bio != nil {
		staff.Bio = *input.Bio
	}
	if input.Experience != nil {
		staff.Experience = *input.Experience
	}
	if input.Rating != nil {
		staff.Rating = *input.Rating
	}
	if input.Image != nil {
		staff.Image = *input.Image
	}
	if input.WorkingHoursStart != nil {
		staff.WorkingHoursStart = *input.WorkingHoursStart
	}
	if input.WorkingHoursEnd != nil {
		staff.WorkingHoursEnd = *input.WorkingHoursEnd
	}
	if input.IsActive != nil {
		if *input.IsActive {
			staff.IsActive = true
			staff.DeactivatedAt = nil
			staff.DeactivatedByID = nil
		} else {
			staff.Deactivate(middleware.CurrentUser(c).ID)
		}
	}

	if err := h.DB.Save(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error updating staff member", Error: err.Error()})
	}

	if input.ServiceIDs != nil {
		if err := h.assignServices(&staff, *input.ServiceIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error assigning services", Error: err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Staff member updated successfully",
		"staff":   staff,
	})
}

// DeleteStaff soft-deactivates a staff member, unless future pending or
// confirmed appointments still depend on them; those must be reassigned or
// cancelled first, and the caller is told how many there are.
func (h *AdminController) DeleteStaff(c *fiber.Ctx) error {
	admin := middleware.CurrentUser(c)

	var staff models.Staff
	if err := h.DB.First(&staff, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Staff member not found"})
	}

	var blocking int64
	err := h.DB.Model(&models.Appointment{}).
		Where("staff_id = ?", staff.ID).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Where("date >= ?", models.Today()).
		Count(&blocking).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error deleting staff member", Error: err.Error()})
	}

	if blocking > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":              fmt.Sprintf("Cannot delete staff with %d upcoming appointment(s). Please reassign or cancel appointments first.", blocking),
			"blockingAppointments": blocking,
		})
	}

	staff.Deactivate(admin.ID)
	if err := h.DB.Save(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error deleting staff member", Error: err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Staff member deleted successfully"})
}

func (h *AdminController) UploadStaffImage(c *fiber.Ctx) error {
	var staff models.Staff
	if err := h.DB.First(&staff, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Staff member not found"})
	}

	return h.uploadImage(c, "staff", func(url string) error {
		staff.Image = url
		return h.DB.Save(&staff).Error
	})
}

func (h *AdminController) assignServices(staff *models.Staff, serviceIDs []uint) error {
	var services []models.Service
	if len(serviceIDs) > 0 {
		if err := h.DB.Where("id IN ?", serviceIDs).Find(&services).Error; err != nil {
			return err
		}
	}
	return h.DB.Model(staff).Association("Services").Replace(services)
}

// ===== appointments =====

type adminAppointment struct {
	models.Appointment
	CustomerName string `json:"customerName"`
	ServiceName  string `json:"serviceName"`
	StaffName    string `json:"staffName"`
}

func (h *AdminController) ListAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	err := h.DB.Preload("User").Preload("Service").Preload("Staff").
		Order("date desc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching appointments", Error: err.Error()})
	}

	out := make([]adminAppointment, 0, len(appointments))
	for _, a := range appointments {
		row := adminAppointment{Appointment: a, ServiceName: "Unknown Service", StaffName: "Unknown Staff"}
		if a.User != nil {
			row.CustomerName = a.User.FirstName + " " + a.User.LastName
		}
		if a.Service != nil {
			row.ServiceName = a.Service.Name
		}
		if a.Staff != nil {
			row.StaffName = a.Staff.FullName()
		}
		out = append(out, row)
	}

	return c.JSON(fiber.Map{"appointments": out})
}

type AppointmentStatusInput struct {
	Status *string `json:"status"`
}

func (h *AdminController) UpdateAppointmentStatus(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Appointment not found"})
	}

	input := new(AppointmentStatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	if input.Status != nil {
		appointment.Status = models.AppointmentStatus(*input.Status)
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error updating appointment", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment updated successfully",
		"appointment": appointment,
	})
}

func (h *AdminController) CancelAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Appointment not found"})
	}

	appointment.Status = models.StatusCancelled
	if err := h.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error cancelling appointment", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment cancelled successfully",
		"appointment": appointment,
	})
}

// ===== users =====

type adminUser struct {
	models.User
	AppointmentCount int64 `json:"appointmentCount"`
	BookingCount     int64 `json:"bookingCount"`
}

func (h *AdminController) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error fetching users", Error: err.Error()})
	}

	out := make([]adminUser, 0, len(users))
	for _, u := range users {
		row := adminUser{User: u}
		h.DB.Model(&models.Appointment{}).Where("user_id = ?", u.ID).Count(&row.AppointmentCount)
		h.DB.Model(&models.Booking{}).Where("user_id = ?", u.ID).Count(&row.BookingCount)
		out = append(out, row)
	}

	return c.JSON(fiber.Map{"users": out})
}

type UserUpdateInput struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Role           *string `json:"role"`
	IsActive       *bool   `json:"isActive"`
	LoyaltyPoints  *int    `json:"loyaltyPoints"`
	MembershipTier *string `json:"membershipTier"`
}

func (h *AdminController) UpdateUser(c *fiber.Ctx) error {
	admin := middleware.CurrentUser(c)

	var user models.User
	if err := h.DB.First(&user, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "User not found"})
	}

	input := new(UserUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	if input.Email != nil {
		var existing models.User
		if h.DB.Where("email = ? AND id <> ?", *input.Email, user.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Email already taken"})
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.LoyaltyPoints != nil {
		user.LoyaltyPoints = *input.LoyaltyPoints
	}
	if input.MembershipTier != nil {
		user.MembershipTier = *input.MembershipTier
	}
	if input.IsActive != nil {
		if *input.IsActive {
			user.IsActive = true
			user.DeactivatedAt = nil
			user.DeactivatedByID = nil
		} else {
			user.Deactivate(admin.ID)
		}
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error updating user", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}

// ===== shared upload plumbing =====

// uploadImage runs after the caller has already resolved the target record,
// so a save failure here is a write error, not a missing record.
func (h *AdminController) uploadImage(c *fiber.Ctx, folder string, save func(url string) error) error {
	if h.Uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{Message: "Image upload is not configured"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error reading upload", Error: err.Error()})
	}
	defer file.Close()

	publicID := fmt.Sprintf("%s-%s-%d", folder, c.Params("id"), time.Now().Unix())
	url, err := h.Uploader.Upload(c.Context(), file, publicID, folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error uploading image", Error: err.Error()})
	}

	if err := save(url); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error saving image", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
