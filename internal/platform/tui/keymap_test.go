package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"e", runeKey("e"), core.ActionEnd},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionEnd},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
		{"screenshot has no action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		assert.True(t, h.Frame().Has(core.ActionLeft), "tick %d", i)
		h.Tick()
	}
	assert.False(t, h.Frame().Has(core.ActionLeft))
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionRight)
	h.Tick()
	h.Tick()
	h.Press(core.ActionRight)
	h.Tick()
	h.Tick()

	assert.True(t, h.Frame().Has(core.ActionRight))
}

func TestHoldTrackerOppositeDirectionReleases(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := h.Frame()
	assert.False(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRight))
	assert.Equal(t, 1, frame.Horizontal())
}

func TestHoldTrackerMinimumOneFrame(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionLeft)

	assert.True(t, h.Frame().Has(core.ActionLeft))
	h.Tick()
	assert.False(t, h.Frame().Has(core.ActionLeft))
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionLeft)
	h.Reset()

	assert.Equal(t, 0, h.Frame().Horizontal())
}

func TestHoldTrackerFrameIsCopy(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionLeft)

	frame := h.Frame()
	frame.Clear()
	frame.Set(core.ActionRight)

	assert.Equal(t, -1, h.Frame().Horizontal(), "editing a frame must not change what is held")
}
