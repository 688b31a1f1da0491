package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with actor context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithActor creates a logger carrying an explicit actor handle
func WithActor(handle string) *Logger {
	logger := New()
	if handle == "" {
		handle = "unknown"
	}
	logger.Entry = logger.Entry.WithField("actor", handle)
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
