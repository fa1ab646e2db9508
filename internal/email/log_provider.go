package email

import (
	"context"

	"ajira_backend/internal/logger"
)

// LogProvider writes messages to the log instead of sending them. Used in development.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Name() string {
	return "log"
}

func (p *LogProvider) Deliver(ctx context.Context, msg *Email) error {
	logger.CtxInfo(ctx, "email (log provider)",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.HTMLBody,
	)
	return nil
}
