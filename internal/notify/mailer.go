package notify

import (
	"fmt"

	"terek_backend/internal/config"
	"terek_backend/internal/logger"
	"terek_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// Mailer sends donor-facing notifications. A nil-safe no-op implementation
// is returned when SMTP is not configured.
type Mailer interface {
	SendCertificateReady(donation *models.Donation, certificateURL string) error
}

type SMTPMailer struct {
	cfg *config.Config
}

type noopMailer struct{}

func (noopMailer) SendCertificateReady(*models.Donation, string) error { return nil }

func NewMailer(cfg *config.Config) Mailer {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, certificate emails disabled")
		return noopMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendCertificateReady(donation *models.Donation, certificateURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.Email.FromEmail, m.cfg.Email.FromName))
	msg.SetHeader("To", donation.Email)
	msg.SetHeader("Subject", "Your tree-planting certificate is ready")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Thank you for your donation of %d trees.</p>"+
			"<p>Your certificate is available at <a href=%q>%s</a>.</p>",
		donation.TreeCount, certificateURL, certificateURL,
	))

	d := gomail.NewDialer(
		m.cfg.Email.SMTPHost,
		m.cfg.Email.SMTPPort,
		m.cfg.Email.SMTPUsername,
		m.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(msg)
}
