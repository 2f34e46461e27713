// Package coordinator provides a tree of flow coordinators with an explicit
// start/stop lifecycle, decoupling "which flow comes next" from "how a screen
// is displayed".
//
// A parent prepares a Container with the dependencies a child needs, builds
// the child from it and attaches it with AddChild, which starts it. Detaching
// with RemoveChild stops the child after cascading through its own children.
// Coordinators that own a screen embed Viewable and route with the screen
// package; the screens themselves come from a presentation backend such as
// the stage package rendered by tui or sdlhost.
package coordinator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BurntSushi/toml"
)

// Options configures logging for the coordinator packages.
type Options struct {
	LogPath         string `toml:"path"`          // Full path for the log file (creates parent directories); empty logs to stderr
	LogLevel        string `toml:"level"`         // Application log level: debug, info, warn, error
	LibraryLogLevel string `toml:"library_level"` // Level for coordinator internals; defaults to error (debug in DEV)
}

// LoadOptions decodes Options from the [log] table of a TOML file.
func LoadOptions(path string) (Options, error) {
	var file struct {
		Log Options `toml:"log"`
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Options{}, fmt.Errorf("load coordinator options %s: %w", path, err)
	}
	return file.Log, nil
}

// Init applies options. Environment variables take precedence over the
// values in options. Call it before building the coordinator tree.
func Init(options Options) {
	if p := os.Getenv(constants.LogPathEnvVar); p != "" {
		options.LogPath = p
	}
	if l := os.Getenv(constants.LogLevelEnvVar); l != "" {
		options.LogLevel = l
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	switch {
	case constants.IsDevMode():
		internal.SetInternalLogLevel(slog.LevelDebug)
	case options.LibraryLogLevel != "":
		internal.SetInternalLogLevel(internal.ParseLevel(options.LibraryLogLevel))
	default:
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() or any logging to take effect.
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

// SetLibraryLogLevel sets the minimum level for logs emitted by the coordinator packages.
func SetLibraryLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
