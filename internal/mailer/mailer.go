// Package mailer wraps the SMTP transport used to deliver backup emails.
package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/4utre/expense-tracker-app/internal/config"
)

// Attachment is a named in-memory file attached to an outgoing message
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a plaintext email with optional attachments
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer sends email messages through an external transport
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer delivers messages via an SMTP server
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from SMTP configuration
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers the message, returning an error if the transport fails
func (s *SMTPMailer) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	for _, att := range msg.Attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
