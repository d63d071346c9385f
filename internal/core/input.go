package core

// Action represents a semantic player intent, abstracted from physical key presses.
// The platform maps keys to actions and actions to engine events.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow - shift piece left
	ActionRight         // D, Right arrow - shift piece right
	ActionDown          // S, Down arrow - soft drop one row
	ActionUp            // W, Up arrow - hard drop (remapped by the input layer)
	ActionRotate        // Space, X - rotate a quarter turn
	ActionPause         // P, Esc - pause/resume
	ActionRestart       // R, Enter - start a new game from greeting or game over
	ActionMute          // M - toggle sound cues
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
