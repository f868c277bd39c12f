// Package nlog provides the small logging surface shared by every layer:
// anything that can print a format string.
package nlog

import (
	"io"
	"log"
)

// Logger is something that can print, using Logf, a format string.
type Logger interface {
	Logf(format string, v ...any)
}

type writerLogger struct {
	logger *log.Logger
}

// New returns a Logger writing timestamped lines to w with the given prefix.
func New(w io.Writer, prefix string) Logger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return &writerLogger{logger: log.New(w, prefix, log.LstdFlags)}
}

func (l *writerLogger) Logf(format string, v ...any) {
	l.logger.Printf(format, v...)
}

type discard struct{}

func (discard) Logf(string, ...any) {}

// Discard is a Logger that drops everything. Handy in tests.
var Discard Logger = discard{}
