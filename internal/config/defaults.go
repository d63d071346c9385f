package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  12,
			Height: 24,
		},
		Gravity: GravityConfig{
			BaseIntervalMs: 650,
			StepMs:         55,
			MinIntervalMs:  50,
		},
		Scoring: ScoringConfig{
			PerPiece: 12,
		},
		Animation: AnimationConfig{
			FlashCount:      5,
			FlashIntervalMs: 100,
			WipeStepMs:      50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
