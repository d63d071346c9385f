package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/bricks"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

// StateMsg carries a state published by the engine.
type StateMsg struct {
	State bricks.State
}

// CueMsg carries a sound cue published by the engine.
type CueMsg struct {
	Cue bricks.Cue
}

// streamClosedMsg reports that the engine closed the subscription.
type streamClosedMsg struct{}

// waitForState blocks until the next published state.
func waitForState(sub *bricks.Subscription) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-sub.States()
		if !ok {
			return streamClosedMsg{}
		}
		return StateMsg{State: s}
	}
}

// waitForCue blocks until the next sound cue.
func waitForCue(sub *bricks.Subscription) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-sub.Cues()
		if !ok {
			return streamClosedMsg{}
		}
		return CueMsg{Cue: c}
	}
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	engine  *bricks.Engine
	sub     *bricks.Subscription
	gravity bricks.Gravity
	store   *storage.Store
	logger  *log.Logger
	screen  *core.Screen
	keys    KeyMap
	help    help.Model

	state      bricks.State
	highScore  int
	lastCue    string
	width      int
	height     int
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model that drives engine and records finished games in
// store. The store and logger may be nil.
func NewModel(engine *bricks.Engine, store *storage.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rules := engine.Rules()
	w, h := ScreenSize(rules.Width, rules.Height)

	m := Model{
		engine:  engine,
		sub:     engine.Subscribe(0),
		gravity: rules.Gravity,
		store:   store,
		logger:  logger,
		screen:  core.NewScreen(w, h),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		state:   engine.State(),
	}

	if store != nil {
		high, err := store.HighScore()
		if err != nil {
			logger.Warn("cannot load high score", "err", err)
		}
		m.highScore = high
	}
	return m
}

// Init starts listening to the engine and starts the gravity clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.sub),
		waitForCue(m.sub),
		tickCmd(m.gravity.Interval(m.state.Level())),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StateMsg:
		m.handleState(msg.State)
		return m, waitForState(m.sub)

	case CueMsg:
		m.lastCue = msg.Cue.String()
		return m, waitForCue(m.sub)

	case TickMsg:
		if st := m.engine.State(); !st.IsAnimating() {
			m.engine.Dispatch(bricks.Tick)
		}
		return m, tickCmd(m.gravity.Interval(m.engine.State().Level()))

	case streamClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey maps a key to an engine event and dispatches it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if ev, ok := EventFor(action, m.engine.State().Status); ok {
		m.engine.Dispatch(ev)
	}
	return m, nil
}

// handleState records a published state and saves the score once per game over.
func (m *Model) handleState(s bricks.State) {
	m.state = s
	if s.Status != bricks.StatusGameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.highScore = max(m.highScore, s.Score)

	if m.store == nil || s.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(s.Score, s.Lines, s.Level()); err != nil {
		m.logger.Warn("cannot save score", "err", err)
		return
	}
	m.logger.Info("score saved", "score", s.Score, "lines", s.Lines, "level", s.Level())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.screen.Width(), m.screen.Height()
	if m.width > 0 && (m.width < w || m.height < h+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h+1, m.width, m.height)
	}

	DrawGame(m.screen, m.state, Panel{HighScore: m.highScore, LastCue: m.lastCue})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a new engine with rules and plays it until the user quits.
// The screen size in cfg is used until the terminal reports its own.
func Run(rules bricks.Rules, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	engine := bricks.NewEngine(bricks.Options{
		Rules:  rules,
		Seed:   cfg.Seed,
		Muted:  cfg.Muted,
		Logger: logger,
	})
	defer engine.Close()

	model := NewModel(engine, store, logger)
	model.width, model.height = cfg.ScreenW, cfg.ScreenH

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
