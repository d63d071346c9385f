package bricks

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Rules holds the tunable constants of a game.
type Rules struct {
	Width         int
	Height        int
	PiecePoints   int           // Score for every sprite that merges into the board
	FlashCount    int           // Frames in the line-clear flash
	FlashInterval time.Duration // Delay between flash frames
	WipeStep      time.Duration // Delay between screen wipe frames
	Gravity       Gravity
}

// DefaultRules returns the classic 12x24 rules.
func DefaultRules() Rules {
	return Rules{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		PiecePoints:   12,
		FlashCount:    5,
		FlashInterval: 100 * time.Millisecond,
		WipeStep:      50 * time.Millisecond,
		Gravity:       DefaultGravity(),
	}
}

// Frame is one state in a published sequence. Delay is how long to wait
// after the previous frame before publishing this one.
type Frame struct {
	State State
	Delay time.Duration
}

// Result is the outcome of reducing one event: one frame for an immediate
// transition, several for a staged one, plus any sound cues to play.
type Result struct {
	Frames []Frame
	Cues   []Cue
}

// Final returns the state the transition ends on.
func (r Result) Final() State {
	return r.Frames[len(r.Frames)-1].State
}

// Staged reports whether the result needs the scheduler.
func (r Result) Staged() bool {
	return len(r.Frames) > 1
}

// Reducer computes the next state, or sequence of states, for an event.
// Apart from drawing pieces from its Sequencer it keeps no state of its own.
type Reducer struct {
	rules Rules
	seq   *Sequencer
}

// NewReducer creates a reducer with the given rules and piece sequencer.
func NewReducer(rules Rules, seq *Sequencer) *Reducer {
	return &Reducer{rules: rules, seq: seq}
}

// Rules returns the reducer's rules.
func (r *Reducer) Rules() Rules {
	return r.rules
}

// Reduce applies ev to s. Events that are not valid for the current status
// leave the state unchanged; Mute is valid in every status.
func (r *Reducer) Reduce(s State, ev Event) Result {
	switch ev.Type {
	case EventMove:
		return r.move(s, ev.Direction)
	case EventRotate:
		return r.rotate(s)
	case EventDrop:
		return r.drop(s)
	case EventTick:
		return r.tick(s)
	case EventReset:
		return r.reset(s)
	case EventPause:
		if s.Status == StatusRunning {
			s.Status = StatusPausing
		}
		return single(s)
	case EventResume:
		if s.Status == StatusPausing {
			s.Status = StatusRunning
		}
		return single(s)
	case EventMute:
		s.Muted = !s.Muted
		return single(s)
	}
	return single(s)
}

func single(s State) Result {
	return Result{Frames: []Frame{{State: s}}}
}

// cues returns the cue for s, or nothing when s is muted.
func cues(s State, c Cue) []Cue {
	if s.Muted {
		return nil
	}
	return []Cue{c}
}

func (r *Reducer) valid(s State, sp Sprite) bool {
	return sp.IsValidIn(s.Bricks, s.Width, s.Height)
}

func (r *Reducer) move(s State, d Direction) Result {
	if !s.IsRunning() {
		return single(s)
	}
	res := Result{Cues: cues(s, CueMove)}
	if !s.Sprite.IsEmpty() {
		dx, dy := d.Delta()
		if moved := s.Sprite.MoveBy(dx, dy); r.valid(s, moved) {
			s.Sprite = moved
		}
	}
	res.Frames = []Frame{{State: s}}
	return res
}

func (r *Reducer) rotate(s State) Result {
	if !s.IsRunning() {
		return single(s)
	}
	res := Result{Cues: cues(s, CueRotate)}
	if !s.Sprite.IsEmpty() {
		if rotated := s.Sprite.Rotate().AdjustOffset(s.Width, s.Height, true); r.valid(s, rotated) {
			s.Sprite = rotated
		}
	}
	res.Frames = []Frame{{State: s}}
	return res
}

func (r *Reducer) drop(s State) Result {
	if !s.IsRunning() {
		return single(s)
	}
	res := Result{Cues: cues(s, CueDrop)}
	if !s.Sprite.IsEmpty() && r.valid(s, s.Sprite) {
		k := 0
		for r.valid(s, s.Sprite.MoveBy(0, k+1)) {
			k++
		}
		s.Sprite = s.Sprite.MoveBy(0, k)
	}
	res.Frames = []Frame{{State: s}}
	return res
}

// tick advances gravity by one step: the sprite falls if it can, otherwise it
// merges into the board, full rows are cleared and the next sprite spawns.
func (r *Reducer) tick(s State) Result {
	if !s.IsRunning() {
		return single(s)
	}

	if !s.Sprite.IsEmpty() {
		if down := s.Sprite.MoveBy(0, 1); r.valid(s, down) {
			s.Sprite = down
			return single(s)
		}
	}

	if !r.valid(s, s.Sprite) {
		return r.gameOver(s)
	}

	merged := append(slices.Clone(s.Bricks), s.Sprite.Location()...)
	rows := FullRows(merged, s.Width)
	stripped, shifted := ClearRows(merged, rows)

	settled := s
	settled.Bricks = shifted
	settled.Sprite, settled.Queue = r.seq.Next(s.Queue)
	settled.Score = s.Score + LineScore(len(rows))
	if !s.Sprite.IsEmpty() {
		settled.Score += r.rules.PiecePoints
	}
	settled.Lines = s.Lines + len(rows)
	toppedOut := !r.valid(settled, settled.Sprite)

	if len(rows) == 0 {
		if toppedOut {
			return r.gameOver(settled)
		}
		return single(settled)
	}

	res := Result{Cues: cues(s, CueClean)}
	for i := 0; i < r.rules.FlashCount; i++ {
		flash := s
		flash.Status = StatusLineClearing
		flash.Sprite = Empty
		flash.Bricks = merged
		if i%2 == 1 {
			flash.Bricks = stripped
		}
		res.Frames = append(res.Frames, Frame{State: flash, Delay: r.flashDelay(i)})
	}

	if toppedOut {
		over := r.gameOver(settled)
		over.Frames[0].Delay = r.flashDelay(len(res.Frames))
		res.Frames = append(res.Frames, over.Frames...)
		res.Cues = append(res.Cues, over.Cues...)
		return res
	}

	res.Frames = append(res.Frames, Frame{State: settled, Delay: r.flashDelay(len(res.Frames))})
	return res
}

// flashDelay is the delay before the i-th frame of a line clear.
func (r *Reducer) flashDelay(i int) time.Duration {
	if i == 0 {
		return 0
	}
	return r.rules.FlashInterval
}

// gameOver wipes the screen and lands on GameOver, keeping score and lines.
func (r *Reducer) gameOver(s State) Result {
	frames := r.wipe(s)
	end := frames[len(frames)-1].State
	end.Status = StatusGameOver
	frames = append(frames, Frame{State: end, Delay: r.rules.WipeStep})
	return Result{Frames: frames, Cues: cues(s, CueStart)}
}

// reset wipes the screen and starts a fresh game. Only the mute flag
// survives.
func (r *Reducer) reset(s State) Result {
	if s.Status != StatusGreeting && s.Status != StatusGameOver {
		return single(s)
	}
	fresh := NewState(s.Width, s.Height, s.Muted)
	fresh.Sprite, fresh.Queue = r.seq.Next(nil)
	fresh.Status = StatusRunning

	frames := append(r.wipe(s), Frame{State: fresh, Delay: r.rules.WipeStep})
	return Result{Frames: frames, Cues: cues(s, CueStart)}
}

// wipe fills the board from the bottom row up, then empties it from the top
// row down. The first frame has no delay.
func (r *Reducer) wipe(s State) []Frame {
	frames := make([]Frame, 0, 2*(s.Height+1))
	var delay time.Duration
	for y := s.Height; y >= 0; y-- {
		f := s
		f.Status = StatusScreenClearing
		f.Bricks = append(bricksAbove(s.Bricks, y), fillRows(s.Width, y, s.Height)...)
		frames = append(frames, Frame{State: f, Delay: delay})
		delay = r.rules.WipeStep
	}
	for y := 0; y <= s.Height; y++ {
		f := s
		f.Status = StatusScreenClearing
		f.Sprite = Empty
		f.Bricks = fillRows(s.Width, y, s.Height)
		frames = append(frames, Frame{State: f, Delay: r.rules.WipeStep})
	}
	return frames
}

// bricksAbove returns a new slice of the bricks strictly above row y.
func bricksAbove(bricks []core.Point, y int) []core.Point {
	out := make([]core.Point, 0, len(bricks))
	for _, b := range bricks {
		if b.Y < y {
			out = append(out, b)
		}
	}
	return out
}
