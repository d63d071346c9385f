package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// PieceType identifies one of the seven tetromino shapes.
type PieceType int

const (
	PieceNone PieceType = iota
	PieceZ
	PieceS
	PieceI
	PieceT
	PieceO
	PieceL
	PieceJ
)

// PieceTypes lists the complete piece catalog in canonical order.
var PieceTypes = []PieceType{PieceZ, PieceS, PieceI, PieceT, PieceO, PieceL, PieceJ}

// String returns the single-letter name of the piece.
func (p PieceType) String() string {
	switch p {
	case PieceZ:
		return "Z"
	case PieceS:
		return "S"
	case PieceI:
		return "I"
	case PieceT:
		return "T"
	case PieceO:
		return "O"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	default:
		return "-"
	}
}

// shapes holds the relative offsets of each piece around its local origin.
var shapes = map[PieceType][4]core.Point{
	PieceZ: {{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}},
	PieceS: {{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	PieceI: {{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	PieceT: {{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}},
	PieceO: {{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1}},
	PieceL: {{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	PieceJ: {{X: 1, Y: -1}, {X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}},
}

// Shape returns a fresh copy of the offsets for the given piece type.
func Shape(p PieceType) []core.Point {
	s, ok := shapes[p]
	if !ok {
		return nil
	}
	out := make([]core.Point, len(s))
	copy(out, s[:])
	return out
}

// Sprite is a piece on the board: its shape offsets plus an absolute anchor.
// Sprites are values; every operation returns a new Sprite.
type Sprite struct {
	Type   PieceType
	Shape  []core.Point
	Offset core.Point
}

// Empty is the sentinel for "no active piece".
var Empty = Sprite{}

// NewSprite creates a sprite of the given type anchored at offset.
func NewSprite(p PieceType, offset core.Point) Sprite {
	return Sprite{Type: p, Shape: Shape(p), Offset: offset}
}

// IsEmpty reports whether the sprite is the no-piece sentinel.
func (s Sprite) IsEmpty() bool {
	return len(s.Shape) == 0
}

// Location returns the absolute board cells covered by the sprite.
func (s Sprite) Location() []core.Point {
	out := make([]core.Point, len(s.Shape))
	for i, p := range s.Shape {
		out[i] = p.Add(s.Offset)
	}
	return out
}

// MoveBy translates the anchor. It does not validate the result.
func (s Sprite) MoveBy(dx, dy int) Sprite {
	s.Offset = core.Pt(s.Offset.X+dx, s.Offset.Y+dy)
	return s
}

// Rotate turns the shape a quarter turn about its local origin,
// mapping (x, y) to (y, -x). The anchor is unchanged.
func (s Sprite) Rotate() Sprite {
	rotated := make([]core.Point, len(s.Shape))
	for i, p := range s.Shape {
		rotated[i] = core.Pt(p.Y, -p.X)
	}
	s.Shape = rotated
	return s
}

// AdjustOffset nudges the anchor the minimum amount needed for the sprite to
// fit within [0, width) horizontally and, when adjustY is set, [0, height)
// vertically. A sprite already in range is returned unchanged.
func (s Sprite) AdjustOffset(width, height int, adjustY bool) Sprite {
	if s.IsEmpty() {
		return s
	}
	loc := s.Location()
	minX, maxX, minY, maxY := loc[0].X, loc[0].X, loc[0].Y, loc[0].Y
	for _, p := range loc[1:] {
		minX = core.Min(minX, p.X)
		maxX = core.Max(maxX, p.X)
		minY = core.Min(minY, p.Y)
		maxY = core.Max(maxY, p.Y)
	}

	dx := inward(minX, maxX, width)
	dy := 0
	if adjustY {
		dy = inward(minY, maxY, height)
	}
	return s.MoveBy(dx, dy)
}

// inward returns the shift that brings [lo, hi] inside [0, size).
func inward(lo, hi, size int) int {
	d := 0
	if lo < 0 {
		d -= lo
	}
	if hi > size-1 {
		d += size - 1 - hi
	}
	return d
}

// IsValidIn reports whether the sprite fits the board without overlapping bricks.
func (s Sprite) IsValidIn(bricks []core.Point, width, height int) bool {
	return IsValid(s.Location(), bricks, width, height)
}
