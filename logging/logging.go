package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger with the specified output.
// Format "text" produces human-readable output via tint; any other value
// produces JSON. The level is parsed from the config; defaults to INFO if
// invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)

	var handler slog.Handler

	switch strings.ToLower(config.Format) {
	case "text":
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  false,
			NoColor:    true,
			TimeFormat: "15:04:05.000",
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   false,
			Level:       level,
			ReplaceAttr: nil,
		})
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
