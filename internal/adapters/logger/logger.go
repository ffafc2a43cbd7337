// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/risteon/ic-workspace/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a Logger writing human-readable text to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: newSlog(w, level),
		level:  level,
	}
}

func newSlog(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newSlog(w, l.level)
}

// SetVerbose switches debug messages on or off.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain. zerr metadata found along the
// chain is rendered as attributes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	var (
		lines []string
		attrs []any
	)
	for current := err; current != nil; {
		var msg string
		if z, ok := current.(*zerr.Error); ok {
			msg = z.Message()
			for key, value := range z.Metadata() {
				attrs = append(attrs, slog.Any(key, value))
			}
			current = errors.Unwrap(current)
		} else {
			msg = current.Error()
			current = nil
		}
		if msg == "" {
			continue
		}
		if len(lines) == 0 {
			lines = append(lines, msg)
			continue
		}
		if len(lines) == 1 {
			lines = append(lines, "  caused by:")
		}
		lines = append(lines, "    -> "+msg)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(strings.Join(lines, "\n"), attrs...)
}
