package logger

import (
	"context"
	"log/slog"
)

// Safe* helpers log through the package logger but never panic when
// InitLogger has not run yet (tests, early bootstrap).

func SafeInfo(msg string, args ...any) {
	if Logger == nil {
		slog.Info(msg, args...)
		return
	}
	Logger.Info(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	if Logger == nil {
		slog.Warn(msg, args...)
		return
	}
	Logger.Warn(msg, args...)
}

func SafeError(msg string, args ...any) {
	if Logger == nil {
		slog.Error(msg, args...)
		return
	}
	Logger.Error(msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		slog.InfoContext(ctx, msg, args...)
		return
	}
	Logger.InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		slog.WarnContext(ctx, msg, args...)
		return
	}
	Logger.WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		slog.ErrorContext(ctx, msg, args...)
		return
	}
	Logger.ErrorContext(ctx, msg, args...)
}
