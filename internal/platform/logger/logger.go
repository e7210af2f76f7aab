// Package logger builds the process-wide structured logger. Handlers and
// services receive it by injection; nothing in this repo logs through the
// global default.
package logger

import (
	"log/slog"
	"os"
)

// New returns the production logger: JSON to stdout at Info level.
// Identifier values must be hashed before they reach it.
func New() *slog.Logger {
	return NewAt(slog.LevelInfo)
}

// NewAt returns a JSON stdout logger at the given level.
func NewAt(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
