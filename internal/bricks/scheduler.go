package bricks

import (
	"context"
	"time"
)

// Clock abstracts waiting so tests can drive animations deterministically.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// SystemClock is the wall clock.
var SystemClock Clock = realClock{}

// Scheduler plays staged frame sequences.
type Scheduler struct {
	clock Clock
}

// NewScheduler creates a scheduler on the given clock, or the system clock if nil.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

// Play publishes frames in order, waiting each frame's delay before it.
// It stops early when ctx is cancelled or publish returns false, and in both
// cases publishes nothing further. Play returns ctx.Err() when cancelled.
func (s *Scheduler) Play(ctx context.Context, frames []Frame, publish func(Frame) bool) error {
	for _, f := range frames {
		if f.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(f.Delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !publish(f) {
			return context.Canceled
		}
	}
	return nil
}
