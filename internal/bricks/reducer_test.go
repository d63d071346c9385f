package bricks

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

func newTestReducer(seed int64) *Reducer {
	rules := DefaultRules()
	seq := NewSequencer(rand.New(rand.NewSource(seed)), rules.Width, rules.Height)
	return NewReducer(rules, seq)
}

// runningWith returns a running state holding sp over the given bricks.
func runningWith(r *Reducer, sp Sprite, bricks []core.Point) State {
	s := NewState(r.rules.Width, r.rules.Height, false)
	s.Status = StatusRunning
	s.Bricks = bricks
	s.Sprite = sp
	_, s.Queue = r.seq.Next(nil)
	return s
}

func TestPlayerEventsIgnoredOutsideRunning(t *testing.T) {
	r := newTestReducer(1)
	events := []Event{Move(DirLeft), Move(DirDown), Rotate, Drop, Tick}
	statuses := []Status{StatusGreeting, StatusPausing, StatusLineClearing, StatusScreenClearing, StatusGameOver}

	for _, status := range statuses {
		for _, ev := range events {
			t.Run(status.String()+"/"+ev.String(), func(t *testing.T) {
				s := runningWith(r, NewSprite(PieceT, core.Pt(5, 5)), nil)
				s.Status = status

				res := r.Reduce(s, ev)
				if res.Staged() {
					t.Fatalf("got %d frames, want 1", len(res.Frames))
				}
				got := res.Final()
				if got.Status != status {
					t.Errorf("status = %v, want %v", got.Status, status)
				}
				if got.Sprite.Offset != s.Sprite.Offset || !slices.Equal(got.Sprite.Shape, s.Sprite.Shape) {
					t.Errorf("sprite changed to %+v", got.Sprite)
				}
				if len(res.Cues) != 0 {
					t.Errorf("cues = %v, want none", res.Cues)
				}
			})
		}
	}
}

func TestMove(t *testing.T) {
	r := newTestReducer(1)

	tests := []struct {
		name   string
		sprite Sprite
		dir    Direction
		want   core.Point
	}{
		{"left", NewSprite(PieceT, core.Pt(5, 5)), DirLeft, core.Pt(4, 5)},
		{"right", NewSprite(PieceT, core.Pt(5, 5)), DirRight, core.Pt(6, 5)},
		{"down", NewSprite(PieceT, core.Pt(5, 5)), DirDown, core.Pt(5, 6)},
		{"up", NewSprite(PieceT, core.Pt(5, 5)), DirUp, core.Pt(5, 4)},
		{"into left wall", NewSprite(PieceI, core.Pt(0, 5)), DirLeft, core.Pt(0, 5)},
		{"into floor", NewSprite(PieceI, core.Pt(4, 21)), DirDown, core.Pt(4, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Reduce(runningWith(r, tt.sprite, nil), Move(tt.dir))
			if got := res.Final().Sprite.Offset; got != tt.want {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
			// The cue plays for every attempted move.
			if !slices.Equal(res.Cues, []Cue{CueMove}) {
				t.Errorf("cues = %v, want [move]", res.Cues)
			}
		})
	}
}

func TestMoveBlockedByBrick(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, NewSprite(PieceI, core.Pt(5, 5)), []core.Point{core.Pt(4, 5)})
	if got := r.Reduce(s, Move(DirLeft)).Final().Sprite.Offset; got != core.Pt(5, 5) {
		t.Errorf("offset = %v, want unchanged", got)
	}
}

func TestMutedEmitsNoCues(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, NewSprite(PieceT, core.Pt(5, 5)), nil)
	s.Muted = true

	for _, ev := range []Event{Move(DirLeft), Rotate, Drop} {
		if res := r.Reduce(s, ev); len(res.Cues) != 0 {
			t.Errorf("%v: cues = %v, want none", ev, res.Cues)
		}
	}
}

func TestRotate(t *testing.T) {
	r := newTestReducer(1)

	s := runningWith(r, NewSprite(PieceT, core.Pt(5, 5)), nil)
	res := r.Reduce(s, Rotate)
	if want := s.Sprite.Rotate().Shape; !slices.Equal(res.Final().Sprite.Shape, want) {
		t.Errorf("shape = %v, want %v", res.Final().Sprite.Shape, want)
	}
	if !slices.Equal(res.Cues, []Cue{CueRotate}) {
		t.Errorf("cues = %v, want [rotate]", res.Cues)
	}

	// A vertical I against the left wall is nudged back inside when it turns flat.
	wall := runningWith(r, NewSprite(PieceI, core.Pt(0, 5)), nil)
	if got := r.Reduce(wall, Rotate).Final().Sprite.Offset; got != core.Pt(1, 5) {
		t.Errorf("offset after wall rotate = %v, want (1,5)", got)
	}

	// Rotation into a brick is rejected.
	blocked := runningWith(r, NewSprite(PieceI, core.Pt(5, 5)), []core.Point{core.Pt(6, 5)})
	got := r.Reduce(blocked, Rotate).Final().Sprite
	if !slices.Equal(got.Shape, blocked.Sprite.Shape) {
		t.Errorf("blocked rotate changed shape to %v", got.Shape)
	}
}

func TestDrop(t *testing.T) {
	r := newTestReducer(1)

	tests := []struct {
		name   string
		bricks []core.Point
		want   core.Point
	}{
		{"empty board", nil, core.Pt(5, 23)},
		{"onto brick", []core.Point{core.Pt(5, 20)}, core.Pt(5, 19)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := runningWith(r, NewSprite(PieceO, core.Pt(5, 0)), tt.bricks)
			res := r.Reduce(s, Drop)
			if got := res.Final().Sprite.Offset; got != tt.want {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
			if res.Final().Status != StatusRunning {
				t.Errorf("status = %v, want Running", res.Final().Status)
			}
			if !slices.Equal(res.Cues, []Cue{CueDrop}) {
				t.Errorf("cues = %v, want [drop]", res.Cues)
			}
		})
	}
}

func TestDropWithoutSprite(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, Empty, nil)
	if got := r.Reduce(s, Drop).Final().Sprite; !got.IsEmpty() {
		t.Errorf("sprite = %+v, want Empty", got)
	}
}

func TestTickFalls(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, NewSprite(PieceT, core.Pt(5, 5)), nil)
	res := r.Reduce(s, Tick)
	if got := res.Final().Sprite.Offset; got != core.Pt(5, 6) {
		t.Errorf("offset = %v, want (5,6)", got)
	}
	if len(res.Cues) != 0 {
		t.Errorf("gravity emitted cues %v", res.Cues)
	}
}

func TestTickMergesAndSpawns(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, NewSprite(PieceO, core.Pt(5, 23)), nil)
	head := s.Queue[0]

	res := r.Reduce(s, Tick)
	if res.Staged() {
		t.Fatalf("got %d frames, want 1", len(res.Frames))
	}
	got := res.Final()
	if len(got.Bricks) != 4 {
		t.Errorf("bricks = %v, want 4 merged cells", got.Bricks)
	}
	if got.Score != 12 {
		t.Errorf("score = %d, want 12", got.Score)
	}
	if got.Sprite.Type != head.Type || got.Sprite.Offset != head.Offset {
		t.Errorf("spawned %v, want queue head %v", got.Sprite.Type, head.Type)
	}
	if len(got.Queue) == 0 {
		t.Error("queue empty after spawn")
	}
	if len(s.Bricks) != 0 {
		t.Error("input state modified")
	}
}

func TestTickWithoutSpriteSpawns(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, Empty, nil)
	got := r.Reduce(s, Tick).Final()
	if got.Sprite.IsEmpty() {
		t.Error("no sprite spawned")
	}
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
}

func TestLineClear(t *testing.T) {
	r := newTestReducer(1)
	w, h := r.rules.Width, r.rules.Height

	// Bottom row full except column 4, plus one loose brick above it.
	var bricks []core.Point
	for x := 0; x < w; x++ {
		if x != 4 {
			bricks = append(bricks, core.Pt(x, h-1))
		}
	}
	bricks = append(bricks, core.Pt(0, h-2))

	s := runningWith(r, NewSprite(PieceI, core.Pt(4, h-6)), bricks)
	for i := 0; i < 3; i++ {
		res := r.Reduce(s, Tick)
		if res.Staged() {
			t.Fatalf("tick %d staged early", i)
		}
		s = res.Final()
	}

	res := r.Reduce(s, Tick)
	if want := r.rules.FlashCount + 1; len(res.Frames) != want {
		t.Fatalf("got %d frames, want %d", len(res.Frames), want)
	}
	if !slices.Equal(res.Cues, []Cue{CueClean}) {
		t.Errorf("cues = %v, want [clean]", res.Cues)
	}

	mergedLen := len(bricks) + 4
	for i, f := range res.Frames[:r.rules.FlashCount] {
		if f.State.Status != StatusLineClearing {
			t.Errorf("frame %d status = %v, want LineClearing", i, f.State.Status)
		}
		if !f.State.Sprite.IsEmpty() {
			t.Errorf("frame %d shows a sprite", i)
		}
		want := mergedLen
		if i%2 == 1 {
			want = mergedLen - w
		}
		if len(f.State.Bricks) != want {
			t.Errorf("frame %d has %d bricks, want %d", i, len(f.State.Bricks), want)
		}
		wantDelay := r.rules.FlashInterval
		if i == 0 {
			wantDelay = 0
		}
		if f.Delay != wantDelay {
			t.Errorf("frame %d delay = %v, want %v", i, f.Delay, wantDelay)
		}
	}

	final := res.Final()
	if final.Status != StatusRunning {
		t.Errorf("final status = %v, want Running", final.Status)
	}
	if final.Score != s.Score+100+12 {
		t.Errorf("score = %d, want %d", final.Score, s.Score+112)
	}
	if final.Lines != 1 {
		t.Errorf("lines = %d, want 1", final.Lines)
	}

	wantBricks := []core.Point{core.Pt(0, h-1), core.Pt(4, h-3), core.Pt(4, h-2), core.Pt(4, h-1)}
	got := slices.Clone(final.Bricks)
	sortPoints(got)
	sortPoints(wantBricks)
	if !slices.Equal(got, wantBricks) {
		t.Errorf("bricks = %v, want %v", got, wantBricks)
	}
	if final.Sprite.IsEmpty() {
		t.Error("no sprite spawned after clear")
	}
}

func sortPoints(ps []core.Point) {
	slices.SortFunc(ps, func(a, b core.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

func TestPauseResume(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, NewSprite(PieceT, core.Pt(5, 5)), nil)

	paused := r.Reduce(s, Pause).Final()
	if paused.Status != StatusPausing {
		t.Fatalf("Pause: status = %v, want Pausing", paused.Status)
	}
	if got := r.Reduce(paused, Pause).Final().Status; got != StatusPausing {
		t.Errorf("Pause while paused: status = %v", got)
	}
	if got := r.Reduce(paused, Resume).Final().Status; got != StatusRunning {
		t.Errorf("Resume: status = %v, want Running", got)
	}
	if got := r.Reduce(s, Resume).Final().Status; got != StatusRunning {
		t.Errorf("Resume while running: status = %v", got)
	}
	if got := r.Reduce(NewState(12, 24, false), Pause).Final().Status; got != StatusGreeting {
		t.Errorf("Pause from Greeting: status = %v", got)
	}
}

func TestMuteTwice(t *testing.T) {
	r := newTestReducer(1)
	statuses := []Status{StatusGreeting, StatusRunning, StatusLineClearing, StatusPausing, StatusScreenClearing, StatusGameOver}

	for _, status := range statuses {
		for _, muted := range []bool{false, true} {
			s := runningWith(r, Empty, nil)
			s.Status = status
			s.Muted = muted

			once := r.Reduce(s, Mute).Final()
			if once.Muted == muted || once.Status != status {
				t.Errorf("%v: Mute gave muted=%v status=%v", status, once.Muted, once.Status)
			}
			if twice := r.Reduce(once, Mute).Final(); twice.Muted != muted {
				t.Errorf("%v: Mute twice gave muted=%v, want %v", status, twice.Muted, muted)
			}
		}
	}
}

func TestResetFromGreeting(t *testing.T) {
	r := newTestReducer(1)
	h := r.rules.Height

	res := r.Reduce(NewState(r.rules.Width, h, false), Reset)
	if want := 2*(h+1) + 1; len(res.Frames) != want {
		t.Fatalf("got %d frames, want %d", len(res.Frames), want)
	}
	for i, f := range res.Frames[:len(res.Frames)-1] {
		if f.State.Status != StatusScreenClearing {
			t.Errorf("frame %d status = %v, want ScreenClearing", i, f.State.Status)
		}
	}
	if res.Frames[0].Delay != 0 {
		t.Errorf("first frame delay = %v, want 0", res.Frames[0].Delay)
	}
	for i, f := range res.Frames[1:] {
		if f.Delay != r.rules.WipeStep {
			t.Errorf("frame %d delay = %v, want %v", i+1, f.Delay, r.rules.WipeStep)
		}
	}
	if full := res.Frames[h].State.Bricks; len(full) != r.rules.Width*h {
		t.Errorf("filled frame has %d bricks, want %d", len(full), r.rules.Width*h)
	}

	final := res.Final()
	if final.Status != StatusRunning {
		t.Errorf("status = %v, want Running", final.Status)
	}
	if final.Score != 0 || final.Lines != 0 {
		t.Errorf("score=%d lines=%d, want zero", final.Score, final.Lines)
	}
	if final.Sprite.IsEmpty() {
		t.Error("no active sprite after reset")
	}
	if len(final.Queue) == 0 {
		t.Error("empty queue after reset")
	}
	if len(final.Bricks) != 0 {
		t.Errorf("bricks = %v, want none", final.Bricks)
	}
	if !slices.Equal(res.Cues, []Cue{CueStart}) {
		t.Errorf("cues = %v, want [start]", res.Cues)
	}
}

func TestResetKeepsOnlyMute(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, Empty, []core.Point{core.Pt(1, 23)})
	s.Status = StatusGameOver
	s.Score = 500
	s.Lines = 7
	s.Muted = true

	res := r.Reduce(s, Reset)
	final := res.Final()
	if !final.Muted {
		t.Error("mute lost on reset")
	}
	if final.Score != 0 || final.Lines != 0 || len(final.Bricks) != 0 {
		t.Errorf("reset kept score=%d lines=%d bricks=%v", final.Score, final.Lines, final.Bricks)
	}
	if len(res.Cues) != 0 {
		t.Errorf("muted reset emitted %v", res.Cues)
	}
}

func TestResetIgnoredWhileRunning(t *testing.T) {
	r := newTestReducer(1)
	s := runningWith(r, NewSprite(PieceT, core.Pt(5, 5)), nil)
	s.Score = 40
	res := r.Reduce(s, Reset)
	if res.Staged() || res.Final().Score != 40 || res.Final().Status != StatusRunning {
		t.Errorf("Reset while running changed state: %+v", res.Final())
	}
}

// blockedBoard fills every row except the rightmost column.
func blockedBoard(w, h int) []core.Point {
	var bricks []core.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			bricks = append(bricks, core.Pt(x, y))
		}
	}
	return bricks
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	r := newTestReducer(1)
	w, h := r.rules.Width, r.rules.Height

	s := runningWith(r, Empty, blockedBoard(w, h))
	s.Queue = []Sprite{NewSprite(PieceT, core.Pt(5, -1))}
	s.Score = 300
	s.Lines = 3

	res := r.Reduce(s, Tick)
	if want := 2*(h+1) + 1; len(res.Frames) != want {
		t.Fatalf("got %d frames, want %d", len(res.Frames), want)
	}
	final := res.Final()
	if final.Status != StatusGameOver {
		t.Fatalf("status = %v, want GameOver", final.Status)
	}
	if final.Score != 300 || final.Lines != 3 {
		t.Errorf("score=%d lines=%d, want 300 and 3", final.Score, final.Lines)
	}
	if len(final.Bricks) != 0 {
		t.Errorf("%d bricks left after wipe", len(final.Bricks))
	}
	if !slices.Equal(res.Cues, []Cue{CueStart}) {
		t.Errorf("cues = %v, want [start]", res.Cues)
	}
}

func TestGameOverWhenSpriteInvalid(t *testing.T) {
	r := newTestReducer(1)
	w, h := r.rules.Width, r.rules.Height

	s := runningWith(r, NewSprite(PieceO, core.Pt(3, 5)), blockedBoard(w, h))
	if got := r.Reduce(s, Tick).Final().Status; got != StatusGameOver {
		t.Errorf("status = %v, want GameOver", got)
	}
}
