// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bricks/internal/bricks"
)

// ErrInvalidConfig is returned, wrapped with detail, by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tunable game parameters.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Gravity   GravityConfig   `yaml:"gravity"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the automatic fall speed.
type GravityConfig struct {
	BaseIntervalMs int  `yaml:"base_interval_ms"`
	StepMs         int  `yaml:"step_ms"`
	MinIntervalMs  int  `yaml:"min_interval_ms"`
	Fixed          bool `yaml:"fixed"`
}

// ScoringConfig defines per-piece points. Line-clear points are fixed.
type ScoringConfig struct {
	PerPiece int `yaml:"per_piece"`
}

// AnimationConfig defines the line-clear flash and screen wipe timing.
type AnimationConfig struct {
	FlashCount      int `yaml:"flash_count"`
	FlashIntervalMs int `yaml:"flash_interval_ms"`
	WipeStepMs      int `yaml:"wipe_step_ms"`
}

// Minimum board size that fits every piece in every rotation.
const minBoardSize = 4

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < minBoardSize || c.Board.Height < minBoardSize:
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, minBoardSize, minBoardSize, c.Board.Width, c.Board.Height)
	case c.Gravity.BaseIntervalMs <= 0:
		return fmt.Errorf("%w: gravity.base_interval_ms must be positive", ErrInvalidConfig)
	case c.Gravity.MinIntervalMs <= 0:
		return fmt.Errorf("%w: gravity.min_interval_ms must be positive", ErrInvalidConfig)
	case c.Gravity.StepMs < 0:
		return fmt.Errorf("%w: gravity.step_ms must not be negative", ErrInvalidConfig)
	case c.Scoring.PerPiece < 0:
		return fmt.Errorf("%w: scoring.per_piece must not be negative", ErrInvalidConfig)
	case c.Animation.FlashCount < 0:
		return fmt.Errorf("%w: animation.flash_count must not be negative", ErrInvalidConfig)
	case c.Animation.FlashIntervalMs <= 0 || c.Animation.WipeStepMs <= 0:
		return fmt.Errorf("%w: animation intervals must be positive", ErrInvalidConfig)
	}
	return nil
}

// Rules converts the config into engine rules.
func (c Config) Rules() bricks.Rules {
	return bricks.Rules{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		PiecePoints:   c.Scoring.PerPiece,
		FlashCount:    c.Animation.FlashCount,
		FlashInterval: ms(c.Animation.FlashIntervalMs),
		WipeStep:      ms(c.Animation.WipeStepMs),
		Gravity: bricks.Gravity{
			Base:  ms(c.Gravity.BaseIntervalMs),
			Step:  ms(c.Gravity.StepMs),
			Floor: ms(c.Gravity.MinIntervalMs),
			Fixed: c.Gravity.Fixed,
		},
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
