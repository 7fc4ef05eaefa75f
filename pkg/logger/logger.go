package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. Usable before Init; Init swaps in the
// configured JSON handler.
var Log = slog.Default()

// Init configures the global JSON logger. LOG_LEVEL (debug/info/warn/
// error) controls verbosity; debug is the default.
func Init() {
	level := slog.LevelDebug
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
