package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadEmbeddedWhenNoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".bricks", "config.yaml"), "scoring:\n  per_piece: 20\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.PerPiece != 20 {
		t.Errorf("PerPiece = %d, expected 20", cfg.Scoring.PerPiece)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", "board:\n  width: 10\ngravity:\n  fixed: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("Width = %d, expected 10", cfg.Board.Width)
	}
	if cfg.Board.Height != 24 {
		t.Errorf("Height = %d, expected default 24", cfg.Board.Height)
	}
	if !cfg.Gravity.Fixed {
		t.Error("Fixed = false, expected true")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), false},
		{"bad yaml", writeConfig(t, dir, "bad.yaml", "board: [1, 2\n"), false},
		{"tiny board", writeConfig(t, dir, "tiny.yaml", "board:\n  width: 2\n"), true},
		{"zero gravity", writeConfig(t, dir, "zero.yaml", "gravity:\n  base_interval_ms: 0\n"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() succeeded, expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		base   int
		step   int
		fixed  bool
	}{
		{DifficultyEasy, 850, 55, false},
		{DifficultyNormal, 650, 55, false},
		{DifficultyHard, 400, 110, false},
		{DifficultyFixed, 650, 55, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Gravity.BaseIntervalMs != tt.base {
				t.Errorf("BaseIntervalMs = %d, expected %d", cfg.Gravity.BaseIntervalMs, tt.base)
			}
			if cfg.Gravity.StepMs != tt.step {
				t.Errorf("StepMs = %d, expected %d", cfg.Gravity.StepMs, tt.step)
			}
			if cfg.Gravity.Fixed != tt.fixed {
				t.Errorf("Fixed = %v, expected %v", cfg.Gravity.Fixed, tt.fixed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(insane) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestRules(t *testing.T) {
	r := Default().Rules()
	if r.Width != 12 || r.Height != 24 {
		t.Errorf("board = %dx%d, expected 12x24", r.Width, r.Height)
	}
	if r.PiecePoints != 12 || r.FlashCount != 5 {
		t.Errorf("PiecePoints=%d FlashCount=%d", r.PiecePoints, r.FlashCount)
	}
	if r.FlashInterval != 100*time.Millisecond || r.WipeStep != 50*time.Millisecond {
		t.Errorf("FlashInterval=%v WipeStep=%v", r.FlashInterval, r.WipeStep)
	}
	if got := r.Gravity.Interval(1); got != 650*time.Millisecond {
		t.Errorf("Gravity.Interval(1) = %v, expected 650ms", got)
	}
}
