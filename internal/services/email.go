package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

// EmailService dispatches reports over SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService reads the SMTP configuration from the environment
func NewEmailService() *EmailService {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	return &EmailService{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     envOrDefault("SMTP_FROM", "noreply@dogusotomat.com"),
	}
}

// Configured reports whether the service can actually send mail
func (e *EmailService) Configured() bool {
	return e.host != "" && e.username != ""
}

// SendReport delivers a report as a plain-text mail
func (e *EmailService) SendReport(report *models.Report) error {
	if !e.Configured() {
		return fmt.Errorf("%w: mail service not configured", ErrDispatchFailed)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", report.Recipient)
	m.SetHeader("Subject", report.Subject)
	m.SetBody("text/plain", report.Body)

	d := gomail.NewDialer(e.host, e.port, e.username, e.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	log.Printf("✅ Report mail sent to %s: %s", report.Recipient, report.Subject)
	return nil
}
