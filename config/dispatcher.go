package config

import (
	"fmt"

	"github.com/kochabx/restkit/log"
)

// DispatcherConfig describes one REST dispatcher
type DispatcherConfig struct {
	BaseURL   string            `mapstructure:"base_url" validate:"required,url"`
	UserAgent string            `mapstructure:"user_agent"`
	Headers   map[string]string `mapstructure:"headers"`
	Tracing   bool              `mapstructure:"tracing"`
	Log       LogConfig         `mapstructure:"log"`
}

// LogConfig selects where dispatch events go. An empty Output disables logging.
type LogConfig struct {
	Level  string         `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Output string         `mapstructure:"output" validate:"omitempty,oneof=console file"`
	File   log.FileConfig `mapstructure:"file"`
}

// DispatcherDefaults are the viper defaults registered by LoadDispatcher
var DispatcherDefaults = map[string]any{
	"tracing":    false,
	"log.level":  "info",
	"log.output": "",
}

// Logger builds the logger described by c
func (c LogConfig) Logger() (*log.Logger, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	switch c.Output {
	case "":
		return log.Nop(), nil
	case "console":
		return log.New(log.WithLevel(level), log.WithComponent("restkit")), nil
	case "file":
		return log.NewFile(c.File, log.WithLevel(level), log.WithComponent("restkit"))
	default:
		return nil, fmt.Errorf("unsupported log output %q", c.Output)
	}
}

// LoadDispatcher reads a DispatcherConfig from the file at path.
// Environment variables override file values, e.g. BASE_URL or LOG_LEVEL.
func LoadDispatcher(path string, opts ...Option) (*DispatcherConfig, error) {
	cfg := new(DispatcherConfig)
	opts = append([]Option{WithFile(path), WithDefaults(DispatcherDefaults)}, opts...)
	if err := New(cfg, opts...).Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}
