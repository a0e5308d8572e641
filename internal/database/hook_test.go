package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedHook(slowThreshold time.Duration) (*database.Hook, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return database.NewHook(zap.New(core), slowThreshold), logs
}

func TestHookLogsFailedQueryAsError(t *testing.T) {
	t.Parallel()

	hook, logs := observedHook(time.Second)

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT 1",
		StartTime: time.Now(),
		Err:       errors.New("connection reset"),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Query failed", entries[0].Message)
}

func TestHookEscalatesSlowQueryToWarn(t *testing.T) {
	t.Parallel()

	hook, logs := observedHook(50 * time.Millisecond)

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT pg_sleep(1)",
		StartTime: time.Now().Add(-time.Second),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Slow query", entries[0].Message)
}

func TestHookLogsFastQueryAsDebug(t *testing.T) {
	t.Parallel()

	hook, logs := observedHook(time.Minute)

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT 1",
		StartTime: time.Now(),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "Query executed", entries[0].Message)
}

func TestHookZeroThresholdNeverWarns(t *testing.T) {
	t.Parallel()

	hook, logs := observedHook(0)

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT pg_sleep(1)",
		StartTime: time.Now().Add(-time.Hour),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
}
