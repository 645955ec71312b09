package audio

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds audio settings read from the environment
type Config struct {
	// Enabled turns all sound off when false; the game runs silent
	Enabled bool `env:"ROCKET_PIANO_AUDIO" envDefault:"true"`

	// MasterVolume is 0-100, converted to linear gain
	MasterVolume int `env:"ROCKET_PIANO_VOLUME" envDefault:"80"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 80,
	}
}

// LoadConfig reads settings from ROCKET_PIANO_* environment variables.
// Out-of-range volumes are clamped, parse failures fall back to defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse audio env: %w", err)
	}
	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 100 {
		c.MasterVolume = 100
	}
}

// Gain converts the master volume to a 0.0-1.0 multiplier
func (c *Config) Gain() float64 {
	return float64(c.MasterVolume) / 100.0
}
