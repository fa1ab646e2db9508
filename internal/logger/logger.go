package logger

import (
	"io"
	"log/slog"
	"os"
)

var log *slog.Logger

// Init sets the global logger.
// env: "development" gives a debug-level text handler, anything else JSON at info level.
func Init(env string) {
	log = New(env, os.Stdout)
	slog.SetDefault(log)
}

// New builds a logger writing to w without touching the global one.
func New(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	var handler slog.Handler
	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// SetLogger replaces the global logger. Tests use it to capture output.
func SetLogger(l *slog.Logger) {
	log = l
}

func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// MailLog records the outcome of one outbound email.
func MailLog(to, subject string, err error) {
	fields := []any{
		"to", to,
		"subject", subject,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("email delivery failed", fields...)
	} else {
		GetLogger().Info("email sent", fields...)
	}
}
