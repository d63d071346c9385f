// Package bricks implements the falling-block puzzle engine: the board and
// sprite model, the piece sequencer, scoring, the event reducer and the staged
// emission of animation frames to subscribers.
package bricks

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// cellKey packs a board position into a single integer key.
// Valid for 0 <= x < 1<<16, which every in-bounds position satisfies.
func cellKey(p core.Point) int {
	return p.Y<<16 | p.X&0xffff
}

// occupancy indexes settled bricks by position.
func occupancy(bricks []core.Point) *intmap.Map[int, struct{}] {
	m := intmap.New[int, struct{}](len(bricks))
	for _, b := range bricks {
		m.Put(cellKey(b), struct{}{})
	}
	return m
}

// IsValid reports whether every location lies inside the board horizontally,
// above its bottom edge, and off every settled brick. Locations with negative
// y are above the visible board and still valid.
func IsValid(locations, bricks []core.Point, width, height int) bool {
	occupied := occupancy(bricks)
	for _, p := range locations {
		if p.X < 0 || p.X >= width || p.Y >= height {
			return false
		}
		if _, ok := occupied.Get(cellKey(p)); ok {
			return false
		}
	}
	return true
}

// FullRows returns the rows whose distinct settled x-coordinates number width,
// in ascending y order.
func FullRows(bricks []core.Point, width int) []int {
	seen := intmap.New[int, struct{}](len(bricks))
	counts := intmap.New[int, int](len(bricks))
	for _, b := range bricks {
		k := cellKey(b)
		if _, dup := seen.Get(k); dup {
			continue
		}
		seen.Put(k, struct{}{})
		n, _ := counts.Get(b.Y)
		counts.Put(b.Y, n+1)
	}

	var rows []int
	counts.ForEach(func(y, n int) bool {
		if n == width {
			rows = append(rows, y)
		}
		return true
	})
	slices.Sort(rows)
	return rows
}

// ClearRows removes every brick on the given rows. It returns the bricks with
// the rows stripped, and the same bricks with everything above each cleared
// row shifted down one cell per cleared row beneath it. Rows must be ascending.
func ClearRows(bricks []core.Point, rows []int) (stripped, shifted []core.Point) {
	stripped = bricks
	shifted = bricks
	for _, row := range rows {
		stripped = removeRow(stripped, row)
		shifted = removeRow(shifted, row)
		for i, b := range shifted {
			if b.Y < row {
				shifted[i] = core.Pt(b.X, b.Y+1)
			}
		}
	}
	return stripped, shifted
}

// removeRow returns a new slice without the bricks on row y.
func removeRow(bricks []core.Point, y int) []core.Point {
	out := make([]core.Point, 0, len(bricks))
	for _, b := range bricks {
		if b.Y != y {
			out = append(out, b)
		}
	}
	return out
}

// fillRows returns full-width bricks for every row in [from, to).
func fillRows(width, from, to int) []core.Point {
	if from >= to {
		return nil
	}
	out := make([]core.Point, 0, width*(to-from))
	for y := from; y < to; y++ {
		for x := 0; x < width; x++ {
			out = append(out, core.Pt(x, y))
		}
	}
	return out
}
