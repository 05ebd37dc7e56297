// Package logging provides the application-wide slog logger: console plus a
// rotating weekly file, with package-level helpers so callers never need a
// logger handle.
package logging

import (
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// Init initializes the global logger and installs it as the slog default.
func Init(logDir, level string) {
	defaultLogger = Setup(logDir, level)
	slog.SetDefault(defaultLogger)
}

// Logger returns the global logger, falling back to a console logger when
// Init has not run (tests, early startup).
func Logger() *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Package-level helpers for direct access.

func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }
func Info(msg string, args ...any)  { Logger().Info(msg, args...) }
func Warn(msg string, args ...any)  { Logger().Warn(msg, args...) }
func Error(msg string, args ...any) { Logger().Error(msg, args...) }
