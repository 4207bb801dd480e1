package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs to the console.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return &ConsoleLogger{logger: slog.New(handler)}
}

// Info logs an informational message with structured key/value pairs.
func (l *ConsoleLogger) Info(msg string, keyvals ...interface{}) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs a warning message with structured key/value pairs.
func (l *ConsoleLogger) Warn(msg string, keyvals ...interface{}) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs an error message with structured key/value pairs.
func (l *ConsoleLogger) Error(msg string, keyvals ...interface{}) {
	l.logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(msg string, keyvals ...interface{}) {
	l.logger.Error(msg, keyvals...)
	os.Exit(1)
}
