// Package log provides a prefixed, colored logger.
package log

import (
	"errors"
	"io"
	stdlog "log"

	"github.com/fatih/color"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	out    *stdlog.Logger
	prefix string       // Prefix rendered in the logger's own color.
	info   *color.Color // Level colors.
	warn   *color.Color
	err    *color.Color
}

// New creates a logger writing to w with the given prefix and prefix color.
func New(prefix string, c color.Attribute, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		out:    stdlog.New(w, "", stdlog.LstdFlags),
		prefix: color.New(c, color.Bold).Sprintf("[%s]", prefix),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		err:    color.New(color.FgRed),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(l.info, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(l.warn, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(l.err, "ERROR", msg)
}

func (l *Logger) write(c *color.Color, level, msg string) {
	l.out.Printf("%s %s %s", l.prefix, c.Sprintf("[%s]", level), msg)
}
