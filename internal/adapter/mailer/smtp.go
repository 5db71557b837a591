package mailer

import (
	"studygeni/internal/config"
	"studygeni/internal/domain"

	"gopkg.in/gomail.v2"
)

// SMTPMailer implements domain.Mailer over a plain SMTP connection.
// Delivery is fire-and-forget: no retry, no queueing, no confirmation.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPMailer creates a mailer bound to the configured relay and the
// fixed feedback recipient address.
func NewSMTPMailer(smtpCfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password),
		from:   smtpCfg.From,
		to:     smtpCfg.To,
	}
}

// Send implements domain.Mailer
func (m *SMTPMailer) Send(subject, htmlBody, textBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return domain.NewEmailDeliveryError(err)
	}
	return nil
}

var _ domain.Mailer = (*SMTPMailer)(nil)
