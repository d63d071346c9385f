package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
}

// Base interval adjustments applied by presets, in milliseconds.
const (
	easyBonusMs    = 200
	hardPenaltyMs  = 250
	hardMinBaseMs  = 100
	hardStepFactor = 2
)

// ApplyPreset modifies the gravity settings for a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseIntervalMs += easyBonusMs
		cfg.Gravity.Fixed = false
	case DifficultyHard:
		cfg.Gravity.BaseIntervalMs = max(hardMinBaseMs, cfg.Gravity.BaseIntervalMs-hardPenaltyMs)
		cfg.Gravity.StepMs *= hardStepFactor
		cfg.Gravity.Fixed = false
	case DifficultyFixed:
		cfg.Gravity.Fixed = true
	default:
		cfg.Gravity.Fixed = false
	}
}
