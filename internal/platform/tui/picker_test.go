package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

func pick(t *testing.T, m PickerModel, msg tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(PickerModel)
	require.True(t, ok)
	return model, cmd
}

func newTestPicker(initial core.Color) PickerModel {
	return NewPickerModel(core.Palette, initial, NewSession(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func TestPickerCursorWraps(t *testing.T) {
	m := newTestPicker(core.Palette[0])
	assert.Equal(t, 0, m.cursor)

	m, _ = pick(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, len(core.Palette)-1, m.cursor)

	m, _ = pick(t, m, runeKey("d"))
	assert.Equal(t, 0, m.cursor)
}

func TestPickerStartsOnInitialColor(t *testing.T) {
	assert.Equal(t, 5, newTestPicker(core.Palette[5]).cursor)
	assert.Equal(t, 0, newTestPicker("#123456").cursor, "unknown color falls back to the first")
}

func TestPickerNumberKeys(t *testing.T) {
	m := newTestPicker(core.Palette[0])

	m, _ = pick(t, m, runeKey("4"))
	assert.Equal(t, 3, m.cursor)

	m, _ = pick(t, m, runeKey("9"))
	assert.Equal(t, 3, m.cursor, "out of range number is ignored")
}

func TestPickerSelect(t *testing.T) {
	m := newTestPicker(core.Palette[0])
	m, _ = pick(t, m, runeKey("3"))

	m, cmd := pick(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, core.Palette[2], m.Selected())
	assert.False(t, m.IsQuitting())
}

func TestPickerScoresAndQuit(t *testing.T) {
	m, _ := pick(t, newTestPicker(core.Palette[0]), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScores())

	m, _ = pick(t, newTestPicker(core.Palette[0]), runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Equal(t, core.ColorNone, m.Selected())
}

func TestPickerViewShowsBest(t *testing.T) {
	session := NewSession()
	session.Record(ScoreEntry{Score: 12})
	m := NewPickerModel(core.Palette, core.Palette[0], session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	view := m.View()
	assert.Contains(t, view, "Pick your ball")
	assert.Contains(t, view, "Best this session: 12 (1 games)")
}
