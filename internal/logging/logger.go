// Package logging defines the leveled logger contract the core receives
// as a passed-in collaborator (spec §6), plus a log/slog-backed default
// implementation. Grounded on this pack's AleutianFOSS repo, which logs
// through log/slog pervasively rather than a third-party logging library;
// the core wraps it behind a small interface instead of calling slog's
// package-level functions directly, since spec §9 requires the logger be
// injected per-analyzer rather than read from process state.
package logging

import (
	"io"
	"log/slog"
)

// Logger is the four-level leveled logger the core is handed.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// nopLogger discards everything. Used when a constructor is passed a nil
// Logger, so callers throughout the pipeline never need a nil check.
type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

// Nop returns a Logger that discards every message.
func Nop() Logger { return nopLogger{} }

// slogLogger adapts *slog.Logger to the Logger interface and tags every
// record with a component name, matching the "[Debug][DependencyGraph] ..."
// style of message the spec calls out as illustrative.
type slogLogger struct {
	base      *slog.Logger
	component string
}

// New builds a Logger backed by log/slog, writing level lvl and above to
// w in slog's default text format. component is attached to every record.
func New(w io.Writer, lvl Level, component string) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: toSlogLevel(lvl)})
	return &slogLogger{base: slog.New(handler), component: component}
}

// With returns a Logger scoped to a different component name, sharing the
// same underlying slog handler -- mirrors the teacher's pattern of one
// registry entry (here: one logger) per subsystem.
func (l *slogLogger) With(component string) Logger {
	return &slogLogger{base: l.base, component: component}
}

func (l *slogLogger) Error(msg string, args ...any) { l.base.Error("[" + l.component + "] " + msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.base.Warn("[" + l.component + "] " + msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.base.Info("[" + l.component + "] " + msg, args...) }
func (l *slogLogger) Debug(msg string, args ...any) { l.base.Debug("[" + l.component + "] " + msg, args...) }

// Level is the core's own four-value level enum (spec §3's Configuration
// field logLevel), kept distinct from slog.Level so this package is the
// single place that knows how the two map onto each other.
type Level string

const (
	LevelSilent Level = "silent"
	LevelInfo   Level = "info"
	LevelWarn   Level = "warn"
	LevelDebug  Level = "debug"
)

func toSlogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelSilent:
		return slog.Level(1_000_000) // effectively disables all levels
	default:
		return slog.LevelWarn
	}
}
