package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/salonhq/booking-api/config"
)

// Mailer sends transactional mail over the configured SMTP account.
type Mailer struct {
	host string
	port int
	user string
	pass string
}

func NewMailer(cfg *config.Config) *Mailer {
	port, _ := strconv.Atoi(cfg.SMTPPort)
	return &Mailer{
		host: cfg.SMTPHost,
		port: port,
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
