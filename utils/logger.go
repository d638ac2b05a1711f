// Package utils provides shared helpers such as the leveled logger.
package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the verbosity of a Logger.
type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// String returns the lower-case level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLogLevel converts a level name into a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off", "none":
		return LogLevelOff, nil
	case "error":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "", "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level: %q", name)
	}
}

// Logger is the structured logger used across the module.
// Key-value pairs follow the message, as in slog.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	SetLevel(level LogLevel)
}

type defaultLogger struct {
	level  LogLevel
	slevel *slog.LevelVar
	logger *slog.Logger
}

// NewLogger creates a logger writing text records to stderr.
func NewLogger(level LogLevel) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing text records to w.
func NewLoggerWithWriter(level LogLevel, w io.Writer) Logger {
	l := &defaultLogger{slevel: new(slog.LevelVar)}
	l.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.slevel}))
	l.SetLevel(level)
	return l
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return NewLoggerWithWriter(LogLevelOff, io.Discard)
}

func (l *defaultLogger) SetLevel(level LogLevel) {
	l.level = level
	switch level {
	case LogLevelDebug:
		l.slevel.Set(slog.LevelDebug)
	case LogLevelInfo:
		l.slevel.Set(slog.LevelInfo)
	case LogLevelWarn:
		l.slevel.Set(slog.LevelWarn)
	default:
		l.slevel.Set(slog.LevelError)
	}
}

func (l *defaultLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.level >= LogLevelDebug {
		l.logger.Debug(msg, keysAndValues...)
	}
}

func (l *defaultLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.level >= LogLevelInfo {
		l.logger.Info(msg, keysAndValues...)
	}
}

func (l *defaultLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l.level >= LogLevelWarn {
		l.logger.Warn(msg, keysAndValues...)
	}
}

func (l *defaultLogger) Error(msg string, keysAndValues ...interface{}) {
	if l.level >= LogLevelError {
		l.logger.Error(msg, keysAndValues...)
	}
}
