package bricks

import (
	"math/rand"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Sequencer produces upcoming sprites from shuffled bags of all seven piece
// types, so every type appears exactly once per cycle of seven draws.
// Not safe for concurrent use; the engine serializes access.
type Sequencer struct {
	rng    *rand.Rand
	width  int
	height int
}

// NewSequencer creates a sequencer for a board of the given size drawing from rng.
func NewSequencer(rng *rand.Rand, width, height int) *Sequencer {
	return &Sequencer{rng: rng, width: width, height: height}
}

// Bag returns one shuffled permutation of the piece catalog. Each sprite is
// anchored at a random column on the row just above the board, clamped
// horizontally into range.
func (q *Sequencer) Bag() []Sprite {
	bag := make([]Sprite, len(PieceTypes))
	for i, p := range PieceTypes {
		x := 0
		if q.width > 1 {
			x = q.rng.Intn(q.width - 1)
		}
		bag[i] = NewSprite(p, core.Pt(x, -1)).AdjustOffset(q.width, q.height, false)
	}
	q.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// Next pops the head of the queue and returns it with the remaining queue.
// The queue is refilled with a fresh bag whenever it runs empty, so the
// returned queue is never empty.
func (q *Sequencer) Next(queue []Sprite) (Sprite, []Sprite) {
	if len(queue) == 0 {
		queue = q.Bag()
	}
	next := queue[0]
	rest := queue[1:]
	if len(rest) == 0 {
		rest = q.Bag()
	}
	return next, rest
}
