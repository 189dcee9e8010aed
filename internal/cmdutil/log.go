package cmdutil

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger returns the stderr logger used by every command. level is one of
// debug, info, warn(ing), error; anything else falls back to info.
func NewLogger(dst io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(dst, log.Options{
		ReportTimestamp: true,
		Prefix:          "motifscan",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a config/flag level name to a log.Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Warnf logs a formatted warning unless quiet is set.
func Warnf(logger *log.Logger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	logger.Warnf(format, a...)
}
