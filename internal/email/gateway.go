package email

import (
	"context"
	"fmt"
	"net/mail"

	"ajira_backend/internal/logger"
)

// Gateway applies the sender address and the debug redirect, then hands off to a Provider.
type Gateway struct {
	provider Provider
	cfg      Config
}

var _ Sender = (*Gateway)(nil)

func NewGateway(provider Provider, cfg Config) *Gateway {
	return &Gateway{provider: provider, cfg: cfg}
}

// Send delivers one message synchronously. Failures are logged and returned; nothing is retried.
func (g *Gateway) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := &Email{
		From:     g.from(),
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	}

	if g.cfg.RedirectInDebug && g.cfg.VerifiedEmail != "" {
		logger.CtxDebug(ctx, "redirecting email", "original_to", to, "redirect_to", g.cfg.VerifiedEmail)
		msg.To = g.cfg.VerifiedEmail
		msg.Subject = fmt.Sprintf("[Original recipient: %s] %s", to, subject)
	}

	err := g.provider.Deliver(ctx, msg)
	logger.MailLog(msg.To, msg.Subject, err)
	if err != nil {
		return fmt.Errorf("%s: send to %s: %w", g.provider.Name(), msg.To, err)
	}
	return nil
}

func (g *Gateway) from() string {
	if g.cfg.FromName == "" {
		return g.cfg.FromEmail
	}
	return (&mail.Address{Name: g.cfg.FromName, Address: g.cfg.FromEmail}).String()
}
