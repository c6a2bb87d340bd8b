// Package config loads the game configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable runtime settings
type Config struct {
	FrameDelayMs int    `yaml:"frame_delay_ms"` // minimum interval between drawn frames
	Debug        bool   `yaml:"debug"`          // start with the debug console visible
	Audio        bool   `yaml:"audio"`          // enable collision tones
	Scene        string `yaml:"scene"`          // resource label spawned at startup
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FrameDelayMs: 10,
		Debug:        true,
		Audio:        true,
		Scene:        "scene0",
	}
}

// Load reads the configuration from path, layered over defaults. An
// empty path yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the loop cannot run with
func (c Config) Validate() error {
	if c.FrameDelayMs < 0 {
		return fmt.Errorf("frame_delay_ms must be >= 0, got %d", c.FrameDelayMs)
	}
	if c.Scene == "" {
		return fmt.Errorf("scene must not be empty")
	}
	return nil
}

// FrameDelay returns the frame delay as a duration
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}
