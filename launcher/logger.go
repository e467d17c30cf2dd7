package launcher

import (
	"io"
	"log/slog"
	"strings"
)

// LogLevelEnv selects the verbosity of launcher diagnostics.
const LogLevelEnv = "ANALYSISRUN_LOG_LEVEL"

// newLogger builds the diagnostics logger. Unknown levels fall back to warn,
// which keeps the console quiet unless something went wrong.
func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
