// Package logger builds the application's *slog.Logger for an environment.
package logger

import (
	"io"
	"log/slog"
)

// New returns a logger configured for env:
//
//	dev (and anything unrecognised)  human-readable text, DEBUG
//	staging                          JSON, DEBUG
//	prod                             JSON, INFO
//
// JSON logs are easy to ingest by log aggregators (Loki, CloudWatch, etc.)
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
