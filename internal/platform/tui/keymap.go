package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stroids/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap so the
// footer can list them.
type KeyMap struct {
	RotateCCW  key.Binding
	RotateCW   key.Binding
	Thrust     key.Binding
	Fire       key.Binding
	Blink      key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateCCW: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Blink: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blink"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateCCW, k.RotateCW, k.Thrust, k.Fire, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateCCW, k.RotateCW, k.Thrust, k.Fire},
		{k.Blink, k.Pause, k.Screenshot, k.Back, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.RotateCCW):
		return core.ActionRotateCCW, false
	case key.Matches(msg, km.keys.RotateCW):
		return core.ActionRotateCW, false
	case key.Matches(msg, km.keys.Thrust):
		return core.ActionThrust, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Blink):
		return core.ActionBlink, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

var menuKeys = struct {
	Up, Down, Select, Quit key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
	Select: key.NewBinding(key.WithKeys("enter", " ")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, menuKeys.Quit):
		return MenuActionQuit
	case key.Matches(msg, menuKeys.Up):
		return MenuActionUp
	case key.Matches(msg, menuKeys.Down):
		return MenuActionDown
	case key.Matches(msg, menuKeys.Select):
		return MenuActionSelect
	}
	return MenuActionNone
}

// DefaultHoldTicks is how long a single key press keeps a held action
// asserted. Terminals report presses and auto-repeats but never releases.
const DefaultHoldTicks = 12

// HoldTracker turns key presses into per-tick held actions. Continuous
// actions (turning, thrust, fire) stay asserted for a number of ticks after
// each press so that auto-repeat reads as holding the key; toggles (blink,
// pause) fire for exactly one tick.
type HoldTracker struct {
	hold      int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker that holds continuous actions for the
// given number of ticks. Values below 1 use DefaultHoldTicks.
func NewHoldTracker(hold int) *HoldTracker {
	if hold < 1 {
		hold = DefaultHoldTicks
	}
	return &HoldTracker{hold: hold, remaining: make(map[core.Action]int)}
}

// Press records a key press for action.
func (h *HoldTracker) Press(action core.Action) {
	switch action {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionBlink, core.ActionPause:
		h.remaining[action] = 1
	default:
		h.remaining[action] = h.hold
	}
}

// Frame returns the actions held for the current tick and counts every
// hold down by one.
func (h *HoldTracker) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range h.remaining {
		if n > 0 {
			f.Set(a)
		}
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return f
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}
