package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/endless-runner/internal/core"
)

// defaultHoldTicks is how long a key press counts as held. Terminals report
// key repeats but no key releases, so a held key is one pressed recently.
const defaultHoldTicks = 6

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Help, k.Quit},
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
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HeldKeys turns discrete key presses into per-tick held state.
// Movement stays held for a few ticks after each press; jump, pause and
// restart fire on exactly one tick per press.
type HeldKeys struct {
	hold    int
	held    map[core.Action]int
	pending core.InputFrame
}

// NewHeldKeys creates a tracker that holds movement keys for holdTicks
// ticks after each press.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}
	return &HeldKeys{
		hold:    holdTicks,
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press registers a key press.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		// Reversing direction releases the other one
		delete(h.held, opposite(a))
		h.held[a] = h.hold
	case core.ActionNone:
	default:
		h.pending.Set(a)
	}
}

// Frame returns the input for the next tick and ages held keys.
func (h *HeldKeys) Frame() core.InputFrame {
	f := h.pending.Clone()
	h.pending.Clear()

	for a, n := range h.held {
		f.Set(a)
		if n <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = n - 1
		}
	}
	return f
}

// Release drops all held and pending keys.
func (h *HeldKeys) Release() {
	clear(h.held)
	h.pending.Clear()
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}
