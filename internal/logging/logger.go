// Package logging wraps zerolog with the small surface the CLI needs.
// Logs go to stderr so reports written to stdout stay machine-readable.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger writing to w. Unknown levels fall back to warn.
// Format "text" gives human-readable console output; anything else is JSON.
func New(level, format string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}

	output := w
	if format == "text" {
		output = zerolog.ConsoleWriter{Out: w, NoColor: !isColorWriter(w)}
	}

	logger := zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
	return &Logger{logger: logger}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

// Warn logs a warning with an attached error.
func (l *Logger) Warn(msg string, err error) {
	l.logger.Warn().Err(err).Msg(msg)
}

// With creates a child logger with additional fields
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{
		logger: l.logger.With().Interface(key, value).Logger(),
	}
}

func isColorWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f)
}
