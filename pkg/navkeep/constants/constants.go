// Package constants defines shared names and defaults used throughout navkeep.
package constants

import "os"

// ReuseDataKey is the static route data key that opts a route in to view retention.
const ReuseDataKey = "reuse"

// KeyDelimiter joins path segments into a route identity.
const KeyDelimiter = "/"

// DebugEnvVar raises the internal logger to debug when set to any value.
const DebugEnvVar = "NAVKEEP_DEBUG"

// LogLevelEnvVar overrides the application log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "NAVKEEP_LOG_LEVEL"

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// TableFormat identifies the encoding of a route table file.
type TableFormat string

const (
	TableFormatTOML TableFormat = "toml"
	TableFormatYAML TableFormat = "yaml"
)

// FormatForExtension maps a file extension (with leading dot) to a TableFormat.
// The second return value is false for unknown extensions.
func FormatForExtension(ext string) (TableFormat, bool) {
	switch ext {
	case ".toml":
		return TableFormatTOML, true
	case ".yaml", ".yml":
		return TableFormatYAML, true
	default:
		return "", false
	}
}
