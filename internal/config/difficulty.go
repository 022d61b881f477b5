package config

import (
	"fmt"
	"strings"
)

// Presets lists the accepted difficulty names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// TimerScale returns the countdown multiplier for a preset.
func TimerScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.66
	default:
		return 1.0
	}
}

// ApplyMatch3Preset scales both timers by the preset. Fixed leaves the
// configured values untouched.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}
	scale := TimerScale(preset)
	cfg.Timer.Seconds *= scale
	cfg.Timer.BlitzSeconds *= scale
}
