package bricks

// Cue names a sound effect the audio collaborator may play. Cues are only
// emitted while the state that triggered them is not muted.
type Cue int

const (
	CueMove Cue = iota
	CueRotate
	CueDrop
	CueClean
	CueStart
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueRotate:
		return "rotate"
	case CueDrop:
		return "drop"
	case CueClean:
		return "clean"
	case CueStart:
		return "start"
	default:
		return "unknown"
	}
}
