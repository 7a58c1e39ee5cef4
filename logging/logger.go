// Package logging builds the zerolog loggers used by the session layer and the CLI.
// Engine packages (board, link, solver, generator) never log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// ErrUnknownOutput is returned by New for an output other than stdout or stderr.
var ErrUnknownOutput = errors.New("logging: unknown output")

// New creates a logger writing to stdout or stderr per config.Output.
// An empty Output means stderr.
func New(config Config) (zerolog.Logger, error) {
	var output io.Writer
	switch strings.ToLower(strings.TrimSpace(config.Output)) {
	case "stdout":
		output = os.Stdout
	case "stderr", "":
		output = os.Stderr
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrUnknownOutput, config.Output)
	}
	return NewWithWriter(config, output), nil
}

// NewWithWriter creates a logger writing to w. Format "pretty" or "console"
// selects the human-readable writer, anything else emits JSON lines.
func NewWithWriter(config Config, w io.Writer) zerolog.Logger {
	if config.Format == "pretty" || config.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).
		Level(ParseLevel(config.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent adds component name to logger context
func WithComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithSession adds session_id and level_id to logger context
func WithSession(logger zerolog.Logger, sessionID string, levelID int) zerolog.Logger {
	return logger.With().Str("session_id", sessionID).Int("level_id", levelID).Logger()
}
