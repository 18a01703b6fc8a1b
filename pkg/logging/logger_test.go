package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewWithCore(core), logs
}

func TestLogger_Levels(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message", "score", 3)
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(3), entries[1].ContextMap()["score"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestLogger_SessionID(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	ctx := WithSessionID(context.Background(), "session-42")
	logger.Info(ctx, "tick")
	logger.Info(context.Background(), "no session")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "session-42", entries[0].ContextMap()["session_id"])
	assert.NotContains(t, entries[1].ContextMap(), "session_id")
}

func TestWithSessionID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")
	id := GetSessionID(ctx)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, GetSessionID(WithSessionID(context.Background(), "")))
}

func TestLogger_With(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	logger.With("component", "engine").Info(context.Background(), "started")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "engine", logs.All()[0].ContextMap()["component"])
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value    string
		expected zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"warning", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.value)
			assert.Equal(t, tt.expected, levelFromEnv())
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	base := errors.New("disk full")
	err := WrapError(base, "saving %s", "config.json")
	assert.EqualError(t, err, "saving config.json: disk full")
	assert.ErrorIs(t, err, base)
}
