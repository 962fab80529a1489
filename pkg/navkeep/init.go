// Package navkeep keeps views of a screen router alive across navigations.
//
// The decision engine lives in package reuse, route definitions and snapshots
// in package route, and a router that drives both in package router. This
// package holds process-wide setup: logging and error helpers.
package navkeep

import (
	"log/slog"
	"os"

	"github.com/navkeep/navkeep/pkg/navkeep/constants"
	"github.com/navkeep/navkeep/pkg/navkeep/internal"
)

// Options configures navkeep's process-wide logging.
type Options struct {
	LogPath  string // Full path for a log file including filename (creates parent directories); stderr only when empty
	LogLevel string // Application log level name; NAVKEEP_LOG_LEVEL overrides it
	Debug    bool   // Log reuse decisions made inside navkeep; also enabled by NAVKEEP_DEBUG or ENVIRONMENT=DEV
}

// Init configures logging. Call it once, before the first logger is used.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	if options.Debug || os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
