package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*zapAppLoggerAdapter, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &zapAppLoggerAdapter{zapLogger: zap.New(core)}, logs
}

func TestZapAppLogger_Levels(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.DebugLevel)
	ctx := context.Background()

	logger.Info(ctx, "info", nil)
	logger.Debug(ctx, "debug", nil)
	logger.Trace(ctx, "trace", nil)
	logger.Error(ctx, "error", nil)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, "trace", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapAppLogger_Fields(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	logger.Error(ctx, "error handling event", map[string]interface{}{
		"event_name": "CustomerCreatedEvent",
		"error":      errors.New("boom"),
	})

	entries := logs.FilterMessage("error handling event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["requestID"])
	assert.Equal(t, "CustomerCreatedEvent", fields["event_name"])
	assert.Equal(t, "boom", fields["error"])
}

func TestZapAppLogger_LevelFiltering(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)

	logger.Debug(context.Background(), "hidden", nil)
	logger.Trace(context.Background(), "hidden", nil)

	assert.Zero(t, logs.Len())
}

func TestNewZapAppLogger(t *testing.T) {
	logger, err := NewZapAppLogger("go-domain-events", "debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewZapAppLogger("go-domain-events", "loud")
	assert.Error(t, err)
}
