package bricks

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures an Engine.
type Options struct {
	Rules  Rules
	Seed   int64       // 0 picks a time-based seed
	Clock  Clock       // nil uses SystemClock
	Logger *log.Logger // nil discards
	Muted  bool        // Initial mute flag
}

// Engine owns the authoritative game state. Dispatch reduces events one at a
// time; staged transitions continue in the background, one sequence at a
// time, and every published state reaches all subscribers in order.
type Engine struct {
	reducer *Reducer
	sched   *Scheduler
	logger  *log.Logger

	mu     sync.Mutex
	state  State
	gen    uint64 // Incremented whenever a new sequence starts
	cancel context.CancelFunc
	subs   map[*Subscription]struct{}
	closed bool

	wg sync.WaitGroup
}

// NewEngine creates an engine in the Greeting state.
func NewEngine(opts Options) *Engine {
	rules := opts.Rules
	if rules.Width <= 0 || rules.Height <= 0 {
		rules = DefaultRules()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seq := NewSequencer(rand.New(rand.NewSource(seed)), rules.Width, rules.Height)
	return &Engine{
		reducer: NewReducer(rules, seq),
		sched:   NewScheduler(opts.Clock),
		logger:  logger,
		state:   NewState(rules.Width, rules.Height, opts.Muted),
		subs:    make(map[*Subscription]struct{}),
	}
}

// Rules returns the rules the engine was created with.
func (e *Engine) Rules() Rules {
	return e.reducer.Rules()
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe registers a new subscriber. The current state is delivered first.
// A buffer below 1 uses DefaultBufferSize. Subscribing to a closed engine
// returns a subscription whose channels are already closed.
func (e *Engine) Subscribe(buffer int) *Subscription {
	sub := newSubscription(e, buffer)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		sub.shutdown()
		return sub
	}
	e.subs[sub] = struct{}{}
	sendLatest(sub.states, e.state)
	return sub
}

func (e *Engine) unsubscribe(sub *Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.subs, sub)
	sub.shutdown()
}

// Dispatch reduces one event against the current state and publishes the
// result. The first frame is published before Dispatch returns; the rest of a
// staged transition is played in the background and superseded by the next
// staged transition or by Close.
func (e *Engine) Dispatch(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	from := e.state.Status
	res := e.reducer.Reduce(e.state, ev)
	e.logger.Debug("dispatch",
		"event", ev,
		"from", from,
		"to", res.Final().Status,
		"frames", len(res.Frames),
	)

	if res.Staged() {
		e.abandonLocked()
	}

	e.publishLocked(res.Frames[0].State)
	for _, c := range res.Cues {
		e.cueLocked(c)
	}

	if !res.Staged() {
		return
	}

	e.gen++
	gen := e.gen
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	rest := res.Frames[1:]

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer cancel()
		err := e.sched.Play(ctx, rest, func(f Frame) bool {
			return e.publishFrame(gen, f)
		})
		if err != nil {
			e.logger.Debug("sequence abandoned", "generation", gen, "err", err)
		}
	}()
}

// publishFrame publishes one scheduled frame if its sequence is still current.
// The live mute flag is carried onto the frame.
func (e *Engine) publishFrame(gen uint64, f Frame) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		return false
	}
	st := f.State
	st.Muted = e.state.Muted
	e.publishLocked(st)
	return true
}

func (e *Engine) publishLocked(s State) {
	e.state = s
	for sub := range e.subs {
		if sendLatest(sub.states, s) {
			e.logger.Debug("subscriber lagging, dropped oldest state", "status", s.Status)
		}
	}
}

func (e *Engine) cueLocked(c Cue) {
	for sub := range e.subs {
		sendLatest(sub.cues, c)
	}
}

// abandonLocked stops the in-flight sequence, if any.
func (e *Engine) abandonLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++
}

// Close abandons any in-flight sequence, closes every subscription and waits
// for background work to stop. Later dispatches are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.abandonLocked()
	for sub := range e.subs {
		sub.shutdown()
		delete(e.subs, sub)
	}
	e.mu.Unlock()

	e.wg.Wait()
	e.logger.Debug("engine closed")
}
