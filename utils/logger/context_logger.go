package logger

import (
	"context"
	"log/slog"
	"time"
)

// ContextKey is the type for request-scoped values the middleware
// stores for logging. A named type keeps the keys collision-free.
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	OperationKey ContextKey = "operation"
)

// ContextLogger decorates log entries with whatever request-scoped
// identifiers the context carries: the request id set by the request-id
// middleware and the reader id set by the user-context middleware.
type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext returns the logger enriched with the context's request
// identifiers. Absent values are simply omitted.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0, 6)
	for _, key := range []ContextKey{RequestIDKey, UserIDKey, OperationKey} {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			args = append(args, string(key), value)
		}
	}
	return cl.logger.With(args...)
}

// LogDuration reports a completed operation with its wall time.
func (cl *ContextLogger) LogDuration(ctx context.Context, operation string, duration time.Duration) {
	cl.WithContext(ctx).Info("operation completed",
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	)
}

// LogError reports a failed operation.
func (cl *ContextLogger) LogError(ctx context.Context, operation string, err error) {
	cl.WithContext(ctx).Error("operation failed",
		"operation", operation,
		"error", err,
	)
}
