package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers through an SMTP relay with gomail.
type SMTPProvider struct {
	config *Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *Config) (*SMTPProvider, error) {
	p := &SMTPProvider{config: config}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if config.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: config.Host, MinVersion: tls.VersionTLS12}
	}
	p.dialer = d
	return p, nil
}

func (p *SMTPProvider) Name() string {
	return "smtp"
}

func (p *SMTPProvider) Deliver(ctx context.Context, msg *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp deliver: %w", err)
	}
	return nil
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return errors.New("SMTP host is required")
	}
	if p.config.Port <= 0 {
		return errors.New("SMTP port must be positive")
	}
	if p.config.FromEmail == "" {
		return errors.New("from email is required")
	}
	return nil
}
