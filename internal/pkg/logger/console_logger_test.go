//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"cipher_stream_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer

	// Create logger with custom output for testing
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := slog.NewTextHandler(&buf, opts)
	logger := &ConsoleLogger{logger: slog.New(handler)}

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_StructuredKeyValues(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := &ConsoleLogger{logger: slog.New(handler)}

	logger.Info("opened cipher context", "id", "ctx-42", "algorithm", "AES-128/CBC")
	logger.Warn("failed to record operation", "error", "connection refused")

	output := buf.String()
	assert.Contains(t, output, "msg=\"opened cipher context\"")
	assert.Contains(t, output, "id=ctx-42")
	assert.Contains(t, output, "algorithm=AES-128/CBC")
	assert.Contains(t, output, "error=\"connection refused\"")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	// Verify it satisfies the Logger interface and doesn't panic
	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
