package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"online-shop/config"
	"online-shop/models"
)

// SMTPMailer delivers contact-inbox notifications over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	inbox  string
}

// NewSMTPMailer returns nil, error when SMTP is not configured; callers treat
// a nil mailer as "notifications disabled".
func NewSMTPMailer() (*SMTPMailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
		inbox:  cfg.ContactInbox,
	}, nil
}

func (m *SMTPMailer) SendContactNotification(contact *models.Contact) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.inbox)
	msg.SetHeader("Reply-To", contact.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New contact message from %s", contact.Email))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>New contact message</h2>
    <p><strong>From:</strong> %s</p>
    <p><strong>Received:</strong> %s</p>
    <blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #333;">%s</blockquote>
    <p style="color: #666; font-size: 12px;">This is an automated email. Reply goes to the sender.</p>
</body>
</html>
	`, contact.Email, contact.CreatedAt.Format("2006-01-02 15:04:05"), contact.Message)

	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
