// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                                  // INFO level, from LOG_LEVEL env
//	logging.SetupWithLevel(slog.LevelDebug)          // explicit level override
//	logging.SetupWriter(f, logging.ParseLevel("warn")) // log somewhere other than stderr
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel configures colored logging to stderr at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter configures logging to w. Color is disabled unless w is stderr,
// so log files stay free of escape codes.
func SetupWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    w != io.Writer(os.Stderr),
		}),
	))
}

// ParseLevel maps debug, warn and error to their slog levels; anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
