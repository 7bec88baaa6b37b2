// Package logging provides loopbar's logging infrastructure built on
// charmbracelet/log.
//
// It wraps charmbracelet/log with a central setup call and a component
// logger factory. Everything is written to stderr: stdout stays clean for
// command output, and log lines end with a newline, so a progress row
// sharing stderr simply redraws on the line below the last message.
//
// Usage:
//
//	// During CLI initialization (PersistentPreRunE):
//	logging.Setup(verbose, quiet, jsonFormat)
//
//	// In each package:
//	var logger = logging.New("hash")
//	logger.Info("scanning", "pattern", "**/*.go")
//
// Setup must run before New: charmbracelet/log copies the default logger's
// state into children at creation time, so a child created earlier keeps
// the old level and formatter.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level aliases for charmbracelet/log levels, re-exported so consumers do
// not need to import charmbracelet/log directly.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
	LevelFatal = log.FatalLevel
)

// Setup configures the global logging defaults. Call once during CLI
// initialization.
//
// verbose lowers the level to Debug; quiet raises it to Error and wins
// over verbose, so --quiet silences scripted runs no matter what else is
// set. jsonFormat switches to NDJSON output for log aggregation.
func Setup(verbose, quiet, jsonFormat bool) {
	log.SetLevel(levelFor(verbose, quiet))
	log.SetOutput(os.Stderr)

	if jsonFormat {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}

// levelFor resolves the effective log level from the two CLI switches.
func levelFor(verbose, quiet bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger with the given component prefix. An empty component
// produces a logger without a prefix.
//
// The child inherits level, output, and formatter from the default logger
// at creation time; call Setup first.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the output writer for the default logger. Primarily
// for tests, which capture log output in a bytes.Buffer.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
