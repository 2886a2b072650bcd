package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

// lostLinger is how long the final frame stays visible after a loss.
const lostLinger = 1500 * time.Millisecond

// Options configure a play session.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int // 0 = DefaultHoldTicks
	Logger    *log.Logger
}

// quitMsg ends the program once the final frame has been shown.
type quitMsg struct{}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	ending     bool // Loss shown, waiting for quitMsg
}

// NewModel creates a Bubble Tea model for a game that has already been Reset.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       newHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The last row holds the key help
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case action.IsDirection():
		m.hold.press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	m.hold.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		// Restarted; drop directions still held from the last session
		m.hold.release()
	}

	if m.gameState.Lost() {
		m.ending = true
		return m, tea.Tick(lostLinger, func(time.Time) tea.Msg { return quitMsg{} })
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run resets the game and plays it until the player quits or loses.
// It returns the final game state.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(opts.Runtime); err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return core.GameState{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	return m.State(), nil
}
