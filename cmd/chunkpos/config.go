package main

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment based defaults, overridable by flags.
type Config struct {
	// FragmentSize is the recommended chunk length in bytes.
	// Env: CHUNKPOS_FRAGMENT_SIZE (default: 0, chosen by file size)
	FragmentSize int64 `envconfig:"FRAGMENT_SIZE" default:"0"`

	// TraceLevel is one of error, info or debug.
	// Env: CHUNKPOS_TRACE_LEVEL (default: error)
	TraceLevel string `envconfig:"TRACE_LEVEL" default:"error"`

	// Color is one of auto, always or never.
	// Env: CHUNKPOS_COLOR (default: auto)
	Color string `envconfig:"COLOR" default:"auto"`
}

// LoadConfig reads the configuration from CHUNKPOS_ prefixed variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("chunkpos", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return Config{}, fmt.Errorf("load config: invalid color mode %q", cfg.Color)
	}
	switch strings.ToLower(cfg.TraceLevel) {
	case "error", "info", "debug":
	default:
		return Config{}, fmt.Errorf("load config: invalid trace level %q", cfg.TraceLevel)
	}
	if cfg.FragmentSize < 0 {
		return Config{}, fmt.Errorf("load config: negative fragment size %d", cfg.FragmentSize)
	}
	return cfg, nil
}
