package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Status is the phase of the game state machine.
type Status int

const (
	StatusGreeting Status = iota
	StatusRunning
	StatusLineClearing
	StatusPausing
	StatusScreenClearing
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusGreeting:
		return "Greeting"
	case StatusRunning:
		return "Running"
	case StatusLineClearing:
		return "LineClearing"
	case StatusPausing:
		return "Pausing"
	case StatusScreenClearing:
		return "ScreenClearing"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Default board dimensions.
const (
	DefaultWidth  = 12
	DefaultHeight = 24
)

// State is one immutable snapshot of the game. Slices are never modified
// after a State is published; every transition builds new ones.
type State struct {
	Bricks []core.Point // Settled cells, no duplicate positions
	Sprite Sprite       // Active piece, or Empty
	Queue  []Sprite     // Upcoming pieces, head first
	Width  int
	Height int
	Status Status
	Score  int
	Lines  int
	Muted  bool
}

// NewState returns a fresh greeting state for a board of the given size.
func NewState(width, height int, muted bool) State {
	return State{
		Width:  width,
		Height: height,
		Status: StatusGreeting,
		Muted:  muted,
	}
}

// Level is the difficulty level derived from cleared lines.
func (s State) Level() int {
	return LevelFor(s.Lines)
}

// Next returns the head of the upcoming queue, or Empty.
func (s State) Next() Sprite {
	if len(s.Queue) == 0 {
		return Empty
	}
	return s.Queue[0]
}

// IsRunning reports whether the piece is under player control.
func (s State) IsRunning() bool {
	return s.Status == StatusRunning
}

// IsAnimating reports whether a staged transition is being shown.
func (s State) IsAnimating() bool {
	return s.Status == StatusLineClearing || s.Status == StatusScreenClearing
}
