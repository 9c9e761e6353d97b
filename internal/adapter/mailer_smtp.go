package adapter

import (
	"context"

	"github.com/MKhiriev/fitcoach/internal/config"
	"gopkg.in/gomail.v2"
)

type smtpTransport struct {
	dialer *gomail.Dialer
}

func newSMTPTransport(cfg config.Email) *smtpTransport {
	return &smtpTransport{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// send dials the server in a goroutine so that ctx bounds the caller even
// though gomail has no context support.
func (t *smtpTransport) send(ctx context.Context, msg emailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := buildSMTPMessage(msg)

	done := make(chan error, 1)
	go func() {
		done <- t.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func (t *smtpTransport) name() string {
	return "smtp"
}

func buildSMTPMessage(msg emailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}
