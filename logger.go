// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps a *slog.Logger with a handful of helpers named for the
// calculator's own resolution phases, adapted from the vecgo-style
// slog wrapper pattern (insert/search/delete there, combine/lift/check
// here).
type Logger struct {
	inner *slog.Logger
}

// NewLogger wraps an arbitrary slog.Handler.
func NewLogger(h slog.Handler) *Logger { return &Logger{inner: slog.New(h)} }

// NewTextLogger returns a Logger writing human-readable lines to w at or
// above level.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger returns a Logger writing structured JSON lines to w at
// or above level.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a Logger that discards everything; this is the
// Calculator's default, matching the teacher's own debug logging being
// opt-in rather than always-on.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// DefaultLogger returns a Logger writing text lines to stderr at
// slog.LevelInfo.
func DefaultLogger() *Logger {
	return NewTextLogger(os.Stderr, slog.LevelInfo)
}

func (l *Logger) LogScopeOpen(nVars int) {
	l.inner.Debug("scope open", "nVars", nVars)
}

func (l *Logger) LogScopeClose(nVars int) {
	l.inner.Debug("scope close", "nVars", nVars)
}

func (l *Logger) LogCombine(nModels0, nModels1 int) {
	l.inner.Debug("combine", "lhs", nModels0, "rhs", nModels1)
}

func (l *Logger) LogLift(nModels int) {
	l.inner.Debug("lift", "models", nModels)
}

func (l *Logger) LogCheckFired(nVars, nOps int, err error) {
	l.inner.Warn("check fired", "nVars", nVars, "nOps", nOps, "err", err)
}
