package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_DefaultsToJSONAtInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	log := InitLogger()

	require.NotNil(t, log)
	assert.Same(t, Logger, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestInitLogger_HonorsLogLevelEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	log := InitLogger()

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestParseLevel_UnknownFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
}

func TestContextLogger_SkipsAbsentValues(t *testing.T) {
	InitLogger()
	cl := NewContextLogger(Logger)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	enriched := cl.WithContext(ctx)

	require.NotNil(t, enriched)
	// Must not panic on a context with no identifiers at all.
	cl.LogDuration(context.Background(), "noop", time.Millisecond)
}
