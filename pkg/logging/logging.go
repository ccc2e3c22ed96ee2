// Package logging provides the shared structured logger for the CLI.
package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

var std = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// SetDebug toggles debug-level output. When off, only Info and above are emitted.
func SetDebug(enabled bool) {
	if enabled {
		std.SetLevel(charmlog.DebugLevel)
		return
	}
	std.SetLevel(charmlog.InfoLevel)
}

// Debug logs fine-grained diagnostics with optional key-value pairs.
func Debug(msg string, keyvals ...any) {
	std.Debug(msg, keyvals...)
}

// Info logs general progress messages.
func Info(msg string, keyvals ...any) {
	std.Info(msg, keyvals...)
}

// Warn logs recoverable problems, such as a model call that had to be skipped.
func Warn(msg string, keyvals ...any) {
	std.Warn(msg, keyvals...)
}

// Error logs failures that abort the current operation.
func Error(msg string, keyvals ...any) {
	std.Error(msg, keyvals...)
}
