// Package logging constructs the zerolog loggers used across the module.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr at the given level. With console set
// the output is human-readable; otherwise it is one JSON event per line.
func New(level zerolog.Level, console bool) zerolog.Logger {
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if console {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	return logger
}

// ParseLevel maps a level name onto a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
