package bricks

// EventType enumerates the events the engine accepts.
type EventType int

const (
	EventMove EventType = iota
	EventRotate
	EventDrop
	EventTick
	EventReset
	EventPause
	EventResume
	EventMute
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventMove:
		return "Move"
	case EventRotate:
		return "Rotate"
	case EventDrop:
		return "Drop"
	case EventTick:
		return "GameTick"
	case EventReset:
		return "Reset"
	case EventPause:
		return "Pause"
	case EventResume:
		return "Resume"
	case EventMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// Direction is the direction of a Move event.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the cell offset for one step in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Event is a discrete input to the reducer. Direction is only meaningful
// for EventMove.
type Event struct {
	Type      EventType
	Direction Direction
}

// String returns the event name, with direction for moves.
func (e Event) String() string {
	if e.Type == EventMove {
		return e.Type.String() + "(" + e.Direction.String() + ")"
	}
	return e.Type.String()
}

// Move returns a Move event in the given direction.
func Move(d Direction) Event {
	return Event{Type: EventMove, Direction: d}
}

// Events without parameters.
var (
	Rotate = Event{Type: EventRotate}
	Drop   = Event{Type: EventDrop}
	Tick   = Event{Type: EventTick}
	Reset  = Event{Type: EventReset}
	Pause  = Event{Type: EventPause}
	Resume = Event{Type: EventResume}
	Mute   = Event{Type: EventMute}
)
