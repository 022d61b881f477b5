// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Timer     TimerConfig     `yaml:"timer"`
	Animation AnimationConfig `yaml:"animation"`
	Board     BoardConfig     `yaml:"board"`
}

// TimerConfig defines the countdown for each mode.
type TimerConfig struct {
	Seconds      float64 `yaml:"seconds"`       // classic mode
	BlitzSeconds float64 `yaml:"blitz_seconds"` // blitz mode
}

// AnimationConfig defines effect timings. Durations are in seconds.
type AnimationConfig struct {
	SwapSeconds    float64 `yaml:"swap_seconds"`
	FallSeconds    float64 `yaml:"fall_seconds"`
	ImplodeSeconds float64 `yaml:"implode_seconds"`
	SpawnSeconds   float64 `yaml:"spawn_seconds"`
	DestroyerSpeed float64 `yaml:"destroyer_speed"` // cells per second
	PulsePeriod    float64 `yaml:"pulse_period"`
}

// BoardConfig defines board generation.
type BoardConfig struct {
	Kinds int `yaml:"kinds"` // number of token kinds, 3..5
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
