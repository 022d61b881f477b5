package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Timer: TimerConfig{
			Seconds:      60,
			BlitzSeconds: 30,
		},
		Animation: AnimationConfig{
			SwapSeconds:    0.3,
			FallSeconds:    0.3,
			ImplodeSeconds: 0.3,
			SpawnSeconds:   0.3,
			DestroyerSpeed: 10,
			PulsePeriod:    1,
		},
		Board: BoardConfig{
			Kinds: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for users
// who want a starting point to edit.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultMatch3YAML))
	copy(out, defaultMatch3YAML)
	return out
}
