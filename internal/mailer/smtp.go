package mailer

import (
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

type SMTPMailer struct {
	dialer    *mail.Dialer
	fromEmail string
	backoff   time.Duration
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from email are required")
	}
	return &SMTPMailer{
		dialer:    mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		fromEmail: cfg.FromEmail,
		backoff:   time.Second,
	}, nil
}

func (m *SMTPMailer) Send(templateFile, name, email string, data any) error {
	subject, body, err := render(templateFile, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", templateFile, err)
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, FromName)
	msg.SetAddressHeader("To", email, name)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if lastErr = m.dialer.DialAndSend(msg); lastErr == nil {
			return nil
		}
		time.Sleep(m.backoff * time.Duration(i+1))
	}
	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
