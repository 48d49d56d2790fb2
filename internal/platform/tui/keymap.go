package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catzzz/internal/core"
)

// DefaultHold is how long a key press counts as held. Terminals report
// presses and auto-repeats but never releases, so a key stays down until
// its last repeat is this old.
const DefaultHold = 120 * time.Millisecond

// KeyMap defines the key bindings for the terminal player.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Grow  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Grow, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grow, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Grow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grow"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Grow):
		return core.ActionGrow
	}
	return core.ActionNone
}

// HeldKeys turns discrete key presses into held-key state.
type HeldKeys struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHeldKeys creates a tracker where each press holds for hold.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Press records a press (or repeat) of action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.until[a] = now.Add(h.hold)
}

// Frame returns the actions still held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			in.Set(a)
			continue
		}
		delete(h.until, a)
	}
	return in
}
