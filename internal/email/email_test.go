package email

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	sent []*Email
	err  error
}

func (p *recordingProvider) Name() string { return "recording" }

func (p *recordingProvider) Deliver(_ context.Context, msg *Email) error {
	p.sent = append(p.sent, msg)
	return p.err
}

func TestGateway_Send(t *testing.T) {
	p := &recordingProvider{}
	g := NewGateway(p, Config{FromEmail: "noreply@ajiraglobal.com", FromName: "AjiraGlobal"})

	require.NoError(t, g.Send(context.Background(), "seeker@example.com", "Hello", "<p>hi</p>"))

	require.Len(t, p.sent, 1)
	assert.Equal(t, "seeker@example.com", p.sent[0].To)
	assert.Equal(t, "Hello", p.sent[0].Subject)
	assert.Equal(t, `"AjiraGlobal" <noreply@ajiraglobal.com>`, p.sent[0].From)
}

func TestGateway_RedirectInDebug(t *testing.T) {
	p := &recordingProvider{}
	g := NewGateway(p, Config{
		FromEmail:       "noreply@ajiraglobal.com",
		RedirectInDebug: true,
		VerifiedEmail:   "dev@ajiraglobal.com",
	})

	require.NoError(t, g.Send(context.Background(), "seeker@example.com", "Verify your email address", "<p>1</p>"))

	require.Len(t, p.sent, 1)
	assert.Equal(t, "dev@ajiraglobal.com", p.sent[0].To)
	assert.Equal(t, "[Original recipient: seeker@example.com] Verify your email address", p.sent[0].Subject)
	assert.Equal(t, "noreply@ajiraglobal.com", p.sent[0].From)
}

func TestGateway_ReturnsProviderError(t *testing.T) {
	cause := errors.New("connection refused")
	g := NewGateway(&recordingProvider{err: cause}, Config{FromEmail: "noreply@ajiraglobal.com"})

	err := g.Send(context.Background(), "a@example.com", "s", "b")
	assert.ErrorIs(t, err, cause)
}

func TestTemplateManager_Builtins(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateVerification, TemplateData{"Code": "042917", "ExpiresIn": "24 hours"})
	require.NoError(t, err)
	assert.Contains(t, body, "042917")
	assert.Contains(t, body, "24 hours")

	body, err = tm.Render(TemplateJobNotification, TemplateData{
		"Title":       "Go <developer>",
		"Company":     "Acme",
		"Category":    "engineering",
		"Currency":    "KSH",
		"Budget":      1500.5,
		"Duration":    30,
		"RemoteWork":  true,
		"Location":    "",
		"Description": "Build APIs",
		"JobURL":      "http://localhost:3000/jobs/1",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Go &lt;developer&gt;", "html escaped")
	assert.Contains(t, body, "KSH 1500.50")
	assert.Contains(t, body, "http://localhost:3000/jobs/1")

	_, err = tm.Render(TemplateVerification, TemplateData{"Code": "1"})
	assert.Error(t, err, "missing keys are errors")

	_, err = tm.Render("absent", nil)
	assert.Error(t, err)
}

func TestTemplateManager_LoadFSOverrides(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	require.NoError(t, tm.LoadFS(fstest.MapFS{
		"custom/verification.html": {Data: []byte("code={{.Code}}")},
	}, "custom"))

	body, err := tm.Render(TemplateVerification, TemplateData{"Code": "123456"})
	require.NoError(t, err)
	assert.Equal(t, "code=123456", body)
}

func TestHumanizeDuration(t *testing.T) {
	assert.Equal(t, "24 hours", HumanizeDuration(24*time.Hour))
	assert.Equal(t, "1 hour", HumanizeDuration(time.Hour))
	assert.Equal(t, "10 minutes", HumanizeDuration(10*time.Minute))
	assert.Equal(t, "90 minutes", HumanizeDuration(90*time.Minute))
	assert.Equal(t, "30 seconds", HumanizeDuration(30*time.Second))
}

func TestNewSMTPProvider_Validates(t *testing.T) {
	_, err := NewSMTPProvider(&Config{Port: 587, FromEmail: "a@b.c"})
	assert.Error(t, err)

	p, err := NewSMTPProvider(&Config{Host: "smtp.example.com", Port: 587, FromEmail: "a@b.c", UseTLS: true})
	require.NoError(t, err)
	assert.Equal(t, "smtp", p.Name())
}
