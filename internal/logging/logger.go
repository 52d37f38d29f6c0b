// Package logging provides the structured logger used by the demo CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// Logger wraps zerolog with a console writer and a per-logger level.
type Logger struct {
	zlog      zerolog.Logger
	component string
	output    io.Writer
	closer    io.Closer
}

// New creates a logger writing human-readable lines to w. A nil w
// discards everything.
func New(w io.Writer, component string) *Logger {
	l := &Logger{component: component}
	l.SetOutput(w)
	return l
}

// Open creates a logger appending to the file at path. An empty path
// returns a discarding logger.
func Open(path, component string) (*Logger, error) {
	if path == "" {
		return New(nil, component), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, component)
	l.closer = f
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger { return New(nil, "") }

// SetOutput changes the output writer, keeping level and component.
func (l *Logger) SetOutput(w io.Writer) {
	level := zerolog.InfoLevel
	if l.output != nil {
		level = l.zlog.GetLevel()
	}
	if w == nil {
		w = io.Discard
	}
	l.output = w

	ctx := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    true,
	}).Level(level).With().Timestamp()
	if l.component != "" {
		ctx = ctx.Str("component", l.component)
	}
	l.zlog = ctx.Logger()
}

// SetDebug toggles debug level output.
func (l *Logger) SetDebug(on bool) {
	if on {
		l.zlog = l.zlog.Level(zerolog.DebugLevel)
		return
	}
	l.zlog = l.zlog.Level(zerolog.InfoLevel)
}

func (l *Logger) Info() *zerolog.Event { return l.zlog.Info() }
func (l *Logger) Warn() *zerolog.Event { return l.zlog.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(format string, args ...any) {
	l.zlog.Debug().Msgf(format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.zlog.Info().Msgf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.zlog.Error().Msgf(format, args...)
}

// Close releases the log file opened by Open.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
