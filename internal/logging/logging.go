// Package logging configures the zerolog logger used by the sprintf CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger points the global logger at w and sets its level from the
// number of -v flags: 0 warn, 1 info, 2 debug, 3+ trace.
func SetupLogger(w io.Writer, verbosity int) {
	zerolog.SetGlobalLevel(Level(verbosity))

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	logger := zerolog.New(console).With().Timestamp()
	if verbosity >= 2 {
		logger = logger.Caller()
	}
	log.Logger = logger.Logger()

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// Level maps a verbosity count onto a zerolog level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a logger tagged with the given component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogDuration logs how long an operation took, at debug level.
func LogDuration(logger zerolog.Logger, start time.Time, operation string) {
	logger.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}
