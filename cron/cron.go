package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

// Reminder emails customers about confirmed appointments starting within
// the next hour.
type Reminder struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

// Start schedules the reminder scan once a minute and returns the scheduler
// so main can stop it on shutdown.
func Start(gdb *gorm.DB, mailer *utils.Mailer) (*cron.Cron, error) {
	r := &Reminder{DB: gdb, Mailer: mailer}

	c := cron.New()
	if _, err := c.AddFunc("* * * * *", r.sendAppointmentReminders); err != nil {
		return nil, err
	}
	c.Start()
	log.Println("Reminder scheduler started")
	return c, nil
}

func (r *Reminder) sendAppointmentReminders() {
	now := time.Now()

	var appointments []models.Appointment
	err := r.DB.Preload("User").Preload("Service").Preload("Staff").
		Where("status = ? AND date = ?", models.StatusConfirmed, models.Today()).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder: failed to fetch appointments: %v", err)
		return
	}

	for i := range appointments {
		a := &appointments[i]
		start, err := slotStart(a, now)
		if err != nil {
			continue // free-form time that never parsed; nothing to remind
		}

		until := start.Sub(now)
		if until < 59*time.Minute || until >= 60*time.Minute {
			continue
		}

		if err := r.sendReminderEmail(a); err != nil {
			log.Printf("reminder: appointment %d: %v", a.ID, err)
			continue
		}
		log.Printf("reminder: sent for appointment %d", a.ID)
	}
}

func slotStart(a *models.Appointment, now time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

func (r *Reminder) sendReminderEmail(a *models.Appointment) error {
	if a.User == nil {
		return fmt.Errorf("no customer loaded")
	}

	serviceName, staffName := "your service", "our staff"
	if a.Service != nil {
		serviceName = a.Service.Name
	}
	if a.Staff != nil {
		staffName = a.Staff.FullName()
	}

	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment in one hour.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>With:</strong> %s</li>
			<li><strong>Date:</strong> %s at %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
	`, a.User.FirstName, serviceName, staffName, a.Date, a.Time)

	return r.Mailer.Send(a.User.Email, subject, body)
}
