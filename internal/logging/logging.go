package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a configured *slog.Logger writing text to stderr, sets it as
// the process default, and returns it. Accepted levels: "debug", "info",
// "warn", "error" (case-insensitive); anything else falls back to info.
func New(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger
}
