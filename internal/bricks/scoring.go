package bricks

import "time"

// Level progression constants.
const (
	LinesPerLevel = 20
	MaxLevel      = 10
)

// lineScores maps rows cleared in a single tick to the score awarded.
var lineScores = [...]int{0, 100, 300, 700, 1500}

// LineScore returns the score delta for clearing n rows at once.
func LineScore(n int) int {
	if n < 0 || n >= len(lineScores) {
		return 0
	}
	return lineScores[n]
}

// LevelFor derives the difficulty level from cumulative cleared lines.
func LevelFor(lines int) int {
	return min(MaxLevel, 1+lines/LinesPerLevel)
}

// Gravity describes how the tick interval shrinks as the level rises.
type Gravity struct {
	Base  time.Duration // Interval at level 1
	Step  time.Duration // Reduction per level above 1
	Floor time.Duration // Smallest interval ever returned
	Fixed bool          // Ignore level and always use Base
}

// DefaultGravity returns the classic 650ms - 55ms per level schedule.
func DefaultGravity() Gravity {
	return Gravity{
		Base:  650 * time.Millisecond,
		Step:  55 * time.Millisecond,
		Floor: 50 * time.Millisecond,
	}
}

// Interval returns the gravity tick interval for a level, always positive.
func (g Gravity) Interval(level int) time.Duration {
	d := g.Base
	if !g.Fixed && level > 1 {
		d -= g.Step * time.Duration(level-1)
	}
	floor := g.Floor
	if floor <= 0 {
		floor = time.Millisecond
	}
	if d < floor {
		d = floor
	}
	return d
}
