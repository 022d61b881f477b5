package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

const match3File = "match3.yaml"

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg := DefaultMatch3Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(match3File); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMatch3Config()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", match3File)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMatch3Config()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// Validate rejects configurations the engine cannot run with.
func Validate(cfg Match3Config) error {
	positive := []struct {
		name  string
		value float64
	}{
		{"timer.seconds", cfg.Timer.Seconds},
		{"timer.blitz_seconds", cfg.Timer.BlitzSeconds},
		{"animation.swap_seconds", cfg.Animation.SwapSeconds},
		{"animation.fall_seconds", cfg.Animation.FallSeconds},
		{"animation.implode_seconds", cfg.Animation.ImplodeSeconds},
		{"animation.spawn_seconds", cfg.Animation.SpawnSeconds},
		{"animation.destroyer_speed", cfg.Animation.DestroyerSpeed},
		{"animation.pulse_period", cfg.Animation.PulsePeriod},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	if cfg.Board.Kinds < 3 || cfg.Board.Kinds > 5 {
		return fmt.Errorf("%w: board.kinds must be between 3 and 5, got %d", ErrInvalid, cfg.Board.Kinds)
	}
	return nil
}
