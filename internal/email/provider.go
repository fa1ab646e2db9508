package email

import "context"

// Sender is the single operation the rest of the service uses to send mail.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Provider is a transport that delivers an already addressed message.
type Provider interface {
	Deliver(ctx context.Context, msg *Email) error
	Name() string
}

// TemplateRenderer renders named html templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}
