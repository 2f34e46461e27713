// Package constants defines shared constants and environment configuration
// used throughout the coordinator packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// EnvironmentEnvVar selects the runtime environment (DEV enables verbose library logs).
const EnvironmentEnvVar = "ENVIRONMENT"

// LogLevelEnvVar overrides the configured application log level.
const LogLevelEnvVar = "COORDINATOR_LOG_LEVEL"

// LogPathEnvVar overrides the configured log file path.
const LogPathEnvVar = "COORDINATOR_LOG_PATH"

// WindowWidthEnvVar and WindowHeightEnvVar size the SDL window in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

const (
	// DefaultTransitionDuration is how long an animated push, pop, present or
	// dismiss takes before its completion callback fires.
	DefaultTransitionDuration = 250 * time.Millisecond

	// FrameInterval paces render loops that have no vsync (~60fps).
	FrameInterval = 16 * time.Millisecond

	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "en"
)
