package bricks

import "sync"

// DefaultBufferSize is the per-subscriber channel capacity used when none is given.
const DefaultBufferSize = 512

// Subscription receives every published state and cue. Sends never block the
// engine: when a buffer is full the oldest entry is dropped.
type Subscription struct {
	states chan State
	cues   chan Cue

	engine    *Engine
	closeOnce sync.Once
}

func newSubscription(e *Engine, buffer int) *Subscription {
	if buffer < 1 {
		buffer = DefaultBufferSize
	}
	return &Subscription{
		states: make(chan State, buffer),
		cues:   make(chan Cue, buffer),
		engine: e,
	}
}

// States returns the state stream. It is closed when the subscription or
// engine closes.
func (s *Subscription) States() <-chan State {
	return s.states
}

// Cues returns the sound cue stream. It is closed along with States.
func (s *Subscription) Cues() <-chan Cue {
	return s.cues
}

// Close unsubscribes. Safe to call multiple times.
func (s *Subscription) Close() {
	s.engine.unsubscribe(s)
}

// shutdown closes both channels. Called with the engine lock held.
func (s *Subscription) shutdown() {
	s.closeOnce.Do(func() {
		close(s.states)
		close(s.cues)
	})
}

// sendLatest delivers v, dropping the oldest buffered value if ch is full.
// It reports whether anything was dropped. Only the engine sends, under its
// lock, so the loop makes progress.
func sendLatest[T any](ch chan T, v T) (dropped bool) {
	for {
		select {
		case ch <- v:
			return dropped
		default:
		}
		select {
		case <-ch:
			dropped = true
		default:
		}
	}
}
