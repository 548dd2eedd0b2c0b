// Package logging keeps the check engine decoupled from any concrete
// logging backend. Engine code only ever sees the Logger interface, with
// log/slog wired in through SlogAdapter and NoOpLogger as the silent
// default.
package logging

import "log/slog"

// Logger is the engine-facing logging interface. Args are alternating
// key/value pairs, following the slog convention.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter exposes a *slog.Logger through the Logger interface. The
// embedded logger's level methods already match the interface, so the
// adapter adds nothing beyond the indirection.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter wraps logger as a Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger wraps the process-wide slog.Default logger.
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NoOpLogger drops every message. Checks run with it unless a logger is
// configured explicitly.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}
