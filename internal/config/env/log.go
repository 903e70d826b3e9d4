package env

import (
	"fmt"
	"log/slog"
	"os"
	"roulette/internal/config"
	"strings"
)

const (
	logLevelName = "LOG_LEVEL"
)

type logConfig struct {
	level slog.Level
}

func NewLogConfig() (config.LogConfig, error) {
	raw := strings.TrimSpace(os.Getenv(logLevelName))
	if raw == "" {
		return &logConfig{level: slog.LevelInfo}, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", logLevelName, raw, err)
	}

	return &logConfig{level: level}, nil
}

func (cfg *logConfig) Level() slog.Level {
	return cfg.level
}
