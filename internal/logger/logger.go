// Package logger provides structured diagnostic logging using zerolog.
// The action log (pkg/actionlog) is the game-facing trail; this logger is
// for the engine and CLI themselves.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init configures the global logger from the environment. LOG_LEVEL sets
// the level (default info); LOG_FILE appends a file sink alongside the
// console writer.
func Init() {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: milliTimeFormat,
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		f, ferr := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// Get returns the global logger instance.
func Get() zerolog.Logger {
	return log.Logger
}

// ForRun returns a logger enriched with a run identifier.
func ForRun(runID string) zerolog.Logger {
	return log.Logger.With().Str("run_id", runID).Logger()
}
