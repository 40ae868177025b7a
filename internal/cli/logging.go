package cli

import (
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/agentsync/agentsync/internal/config"
)

// configureLogger routes slog to a rotating file so CLI output stays
// clean while every run remains auditable.
func configureLogger(cfg config.LogSettings) {
	filename := cfg.Filename
	if strings.TrimSpace(filename) == "" {
		filename = config.LogFile()
	}

	writer := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: parseSlogLevel(cfg.Level, slog.LevelInfo),
	})
	slog.SetDefault(slog.New(handler))
}

func parseSlogLevel(value string, fallback slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	switch level {
	case "":
		return fallback
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels work too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}
	return fallback
}
