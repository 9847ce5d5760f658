// Package logging configures the diagnostic logger for safe-rsync.
// Diagnostics go to stderr so they never interleave with the progress
// line or summary on stdout.
package logging

import (
	"io"
	"log/slog"
)

// New creates a logger writing text-formatted records to w at the
// given minimum level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
