package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timer:\n  seconds: 90\nboard:\n  kinds: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg.Timer.Seconds != 90 {
		t.Errorf("Timer.Seconds = %v, expected 90", cfg.Timer.Seconds)
	}
	if cfg.Board.Kinds != 4 {
		t.Errorf("Board.Kinds = %d, expected 4", cfg.Board.Kinds)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Animation.DestroyerSpeed != 10 {
		t.Errorf("Animation.DestroyerSpeed = %v, expected default 10", cfg.Animation.DestroyerSpeed)
	}
}

func TestLoadMatch3Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timer: [not, a, map"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadMatch3(tc.path); err == nil {
				t.Error("LoadMatch3() error = nil, expected failure")
			}
		})
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg != DefaultMatch3Config() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultMatch3Config())
	}
	if len(DefaultYAML()) == 0 {
		t.Error("DefaultYAML() is empty")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		valid  bool
	}{
		{"defaults", func(*Match3Config) {}, true},
		{"zero timer", func(c *Match3Config) { c.Timer.Seconds = 0 }, false},
		{"negative swap", func(c *Match3Config) { c.Animation.SwapSeconds = -1 }, false},
		{"zero destroyer speed", func(c *Match3Config) { c.Animation.DestroyerSpeed = 0 }, false},
		{"two kinds", func(c *Match3Config) { c.Board.Kinds = 2 }, false},
		{"six kinds", func(c *Match3Config) { c.Board.Kinds = 6 }, false},
		{"three kinds", func(c *Match3Config) { c.Board.Kinds = 3 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.valid && err != nil {
				t.Errorf("Validate() error = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		seconds  float64
	}{
		{"", DifficultyNormal, 60},
		{"easy", DifficultyEasy, 90},
		{"HARD", DifficultyHard, 39.6},
		{"fixed", DifficultyFixed, 60},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p, err := ParsePreset(tc.input)
			if err != nil {
				t.Fatalf("ParsePreset(%q) error = %v", tc.input, err)
			}
			if p != tc.expected {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, p, tc.expected)
			}

			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, p)
			if diff := cfg.Timer.Seconds - tc.seconds; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Timer.Seconds = %v, expected %v", cfg.Timer.Seconds, tc.seconds)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) error = nil, expected failure")
	}
}
