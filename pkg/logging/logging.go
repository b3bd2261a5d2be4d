// Package logging builds the structured loggers used by the command line tools.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text logger writing records at level and above to out.
func NewLogger(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewDebugLogger is NewLogger at debug level, with source positions.
func NewDebugLogger(out io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}

// NewDefaultLogger logs info and above to stderr, keeping stdout for results.
func NewDefaultLogger() *slog.Logger {
	return NewLogger(os.Stderr, slog.LevelInfo)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}
