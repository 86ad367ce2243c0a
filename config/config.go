// Package config loads the scorer configuration from defaults, an optional
// YAML file and HANDSCORE_* environment variables, in increasing precedence.
package config

import (
	"log/slog"
	"time"

	"github.com/luca-patrignani/hand-scorer/domain/poker"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Scoring ScoringConfig `mapstructure:"scoring" validate:"required"`
	Batch   BatchConfig   `mapstructure:"batch" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ScoringConfig selects the score table. Legacy wins over Spacing.
type ScoringConfig struct {
	Spacing int  `mapstructure:"spacing" validate:"gte=71"`
	Legacy  bool `mapstructure:"legacy"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gte=1,lte=256"`
}

// ServerConfig configures the HTTP API. Timeout bounds each request.
type ServerConfig struct {
	Address string        `mapstructure:"address" validate:"required,hostname_port"`
	TLS     bool          `mapstructure:"tls"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// ScoreTable returns the table selected by the scoring settings.
func (c ScoringConfig) ScoreTable() (poker.ScoreTable, error) {
	if c.Legacy {
		return poker.LegacyScoreTable, nil
	}
	return poker.NewScoreTable(c.Spacing)
}

// SlogLevel converts the configured level name.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
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
