package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// DefaultHoldTicks is how many ticks a direction stays held after a key event.
// Terminals report key repeats, not key releases, so a held key is emulated
// by keeping the direction active until the next repeat arrives.
const DefaultHoldTicks = 8

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns arrows, WASD and vim-style movement keys.
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
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// holdTracker turns discrete key events into per-tick held directions.
type holdTracker struct {
	ticks     int
	remaining map[core.Action]int
}

func newHoldTracker(ticks int) *holdTracker {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &holdTracker{ticks: ticks, remaining: make(map[core.Action]int)}
}

// press holds a direction for the configured number of ticks.
// Pressing a direction releases its opposite.
func (h *holdTracker) press(a core.Action) {
	if !a.IsDirection() {
		return
	}
	h.remaining[a] = h.ticks
	delete(h.remaining, opposite[a])
}

// apply marks every held direction in f and counts one tick down.
func (h *holdTracker) apply(f *core.InputFrame) {
	for _, a := range core.Directions {
		if h.remaining[a] > 0 {
			f.Set(a)
			h.remaining[a]--
		}
	}
}

func (h *holdTracker) release() {
	clear(h.remaining)
}
