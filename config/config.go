// Package config loads process settings: logging, audio and terminal backend.
// Game rules are compile-time constants and are not configurable.
package config

import (
	"flag"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
)

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds process settings
type Config struct {
	Debug   bool    `env:"DICESUM_DEBUG"`
	LogDir  string  `env:"DICESUM_LOG_DIR" envDefault:"logs"`
	Backend string  `env:"DICESUM_BACKEND" envDefault:"ansi"`
	Sound   bool    `env:"DICESUM_SOUND"`
	Volume  float64 `env:"DICESUM_VOLUME"  envDefault:"0.5"`
}

// FromEnv parses DICESUM_* environment variables over the defaults
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses the environment, then lets command-line flags override it
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to the log directory")
	fs.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Terminal backend: ansi, tcell")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play answer sounds")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound volume 0-1")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the backend name and clamps the volume
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendANSI, BackendTcell)
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory must not be empty")
	}
	c.Volume = math.Max(0, math.Min(1, c.Volume))
	return nil
}
