package adapter

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	zapAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/zaplogger/adapter"
)

func TestWatermillLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWatermillLoggerAdapter(zapAdapter.NewZapAppLoggerFrom(zap.New(core)))

	scoped := logger.With(watermill.LogFields{"topic": "ProductCreatedEvent"})
	scoped.Info("message published", watermill.LogFields{"uuid": "1"})
	scoped.Error("publish failed", errors.New("closed"), nil)
	logger.Trace("untouched", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "ProductCreatedEvent", entries[0].ContextMap()["topic"])
	assert.Equal(t, "1", entries[0].ContextMap()["uuid"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "closed", entries[1].ContextMap()["error"])
	assert.Equal(t, "ProductCreatedEvent", entries[1].ContextMap()["topic"])

	assert.NotContains(t, entries[2].ContextMap(), "topic")
}

func TestWatermillLoggerAdapter_ErrorWithoutCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWatermillLoggerAdapter(zapAdapter.NewZapAppLoggerFrom(zap.New(core)))

	assert.NotPanics(t, func() { logger.Error("no cause", nil, nil) })
	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "error")
}
