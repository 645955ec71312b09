package audio

import (
	"testing"
)

// TestDefaultConfig verifies the built-in settings
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume != 80 {
		t.Errorf("Expected default volume 80, got %d", cfg.MasterVolume)
	}
}

// TestLoadConfigFromEnv verifies environment overrides
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ROCKET_PIANO_AUDIO", "false")
	t.Setenv("ROCKET_PIANO_VOLUME", "45")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if cfg.MasterVolume != 45 {
		t.Errorf("Expected volume 45, got %d", cfg.MasterVolume)
	}
}

// TestLoadConfigClampsVolume verifies out-of-range values are clamped
func TestLoadConfigClampsVolume(t *testing.T) {
	t.Setenv("ROCKET_PIANO_VOLUME", "250")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.MasterVolume != 100 {
		t.Errorf("Expected volume clamped to 100, got %d", cfg.MasterVolume)
	}

	t.Setenv("ROCKET_PIANO_VOLUME", "-10")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.MasterVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %d", cfg.MasterVolume)
	}
}

// TestGain verifies the volume-to-gain conversion
func TestGain(t *testing.T) {
	cfg := &Config{MasterVolume: 50}
	if got := cfg.Gain(); got != 0.5 {
		t.Errorf("Expected gain 0.5, got %f", got)
	}
	cfg.MasterVolume = 0
	if got := cfg.Gain(); got != 0 {
		t.Errorf("Expected gain 0, got %f", got)
	}
}
