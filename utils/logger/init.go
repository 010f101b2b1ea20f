package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide structured logger. InitLogger must run
// before anything logs through it.
var Logger *slog.Logger

// InitLogger builds the global logger from LOG_LEVEL and LOG_FORMAT.
// JSON output is the default so log collectors can parse entries
// without a format hint; LOG_FORMAT=text switches to the human layout
// for local runs.
func InitLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
