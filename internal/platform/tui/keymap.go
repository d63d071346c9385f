package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/bricks"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Drop    key.Binding
	Rotate  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Mute    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Drop, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Drop},
		{k.Rotate, k.Pause, k.Restart, k.Mute},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Drop: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "rotate"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "new game"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Drop):
		return core.ActionUp
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	}
	return core.ActionNone
}

// EventFor maps an action to the engine event it triggers. Up is a hard
// drop, and Pause resumes a paused game. The second result is false for
// actions the engine does not handle.
func EventFor(a core.Action, status bricks.Status) (bricks.Event, bool) {
	switch a {
	case core.ActionLeft:
		return bricks.Move(bricks.DirLeft), true
	case core.ActionRight:
		return bricks.Move(bricks.DirRight), true
	case core.ActionDown:
		return bricks.Move(bricks.DirDown), true
	case core.ActionUp:
		return bricks.Drop, true
	case core.ActionRotate:
		return bricks.Rotate, true
	case core.ActionPause:
		if status == bricks.StatusPausing {
			return bricks.Resume, true
		}
		return bricks.Pause, true
	case core.ActionRestart:
		return bricks.Reset, true
	case core.ActionMute:
		return bricks.Mute, true
	}
	return bricks.Event{}, false
}
