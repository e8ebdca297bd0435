package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

// GameKeyMap defines key bindings for the running game.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	End        key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.End, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart, k.End},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		End: key.NewBinding(
			key.WithKeys("e", "esc"),
			key.WithHelp("e", "end"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerKeyMap defines key bindings for the ball color picker.
type PickerKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Scores, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Select},
		{k.Scores, k.Quit},
	}
}

// DefaultPickerKeyMap returns the default picker key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "a", "up", "k"),
			key.WithHelp("←/a", "prev color"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "d", "down", "j"),
			key.WithHelp("→/d", "next color"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "session scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action. Screenshot has no action and
// is handled by the model directly.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.End):
		return core.ActionEnd
	}
	return core.ActionNone
}

// HoldTracker emulates held keys on a terminal, which reports presses but no
// releases. A pressed action stays held for a number of ticks after its last
// press; key auto-repeat keeps refreshing it.
type HoldTracker struct {
	ticks     int
	held      core.InputFrame
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker that holds each press for ticks frames.
// Values below 1 hold a press for exactly one frame.
func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{
		ticks:     core.Max(ticks, 1),
		held:      core.NewInputFrame(),
		remaining: make(map[core.Action]int),
	}
}

// Press marks a as held. Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.release(core.ActionRight)
	case core.ActionRight:
		h.release(core.ActionLeft)
	}
	h.held.Set(a)
	h.remaining[a] = h.ticks
}

// Frame returns a copy of the actions currently held.
func (h *HoldTracker) Frame() core.InputFrame {
	return h.held.Clone()
}

// Tick ages every held action by one frame.
func (h *HoldTracker) Tick() {
	for a := range h.remaining {
		h.remaining[a]--
		if h.remaining[a] <= 0 {
			h.release(a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	h.held.Clear()
	clear(h.remaining)
}

func (h *HoldTracker) release(a core.Action) {
	h.held.Unset(a)
	delete(h.remaining, a)
}
