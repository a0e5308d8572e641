package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Hook implements bun.QueryHook and reports every executed query through
// zap. Queries that exceed slowThreshold are escalated to warn level so
// slow statements surface without turning on debug logging.
type Hook struct {
	logger        *zap.Logger
	slowThreshold time.Duration
}

// NewHook creates a query hook. A non-positive slowThreshold disables the
// slow-query escalation.
func NewHook(logger *zap.Logger, slowThreshold time.Duration) *Hook {
	return &Hook{
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// BeforeQuery is a no-op; timing starts from the event's StartTime.
func (h *Hook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery logs the query, its duration, and any error.
func (h *Hook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)

	fields := []zap.Field{
		zap.String("query", event.Query),
		zap.Duration("duration", elapsed),
	}

	switch {
	case event.Err != nil:
		h.logger.Error("Query failed", append(fields, zap.Error(event.Err))...)
	case h.slowThreshold > 0 && elapsed >= h.slowThreshold:
		h.logger.Warn("Slow query", fields...)
	default:
		h.logger.Debug("Query executed", fields...)
	}
}
