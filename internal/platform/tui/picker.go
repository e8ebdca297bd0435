package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

const swatchWidth = 4

// PickerModel is the Bubble Tea model for choosing the ball color.
type PickerModel struct {
	colors      []core.Color
	cursor      int
	width       int
	height      int
	session     *Session
	config      core.RuntimeConfig
	keys        PickerKeyMap
	help        help.Model
	theme       Theme
	quitting    bool
	selected    core.Color
	wantsScores bool
}

// NewPickerModel creates a picker over colors with the cursor on initial.
func NewPickerModel(colors []core.Color, initial core.Color, session *Session, cfg core.RuntimeConfig) PickerModel {
	if session == nil {
		session = NewSession()
	}
	return PickerModel{
		colors:  colors,
		cursor:  max(slices.Index(colors, initial), 0),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		session: session,
		config:  cfg,
		keys:    DefaultPickerKeyMap(),
		help:    help.New(),
		theme:   DefaultTheme(),
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for color selection.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Number keys jump straight to a color.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(m.colors) {
			m.cursor = i
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		if len(m.colors) > 0 {
			m.cursor = (m.cursor - 1 + len(m.colors)) % len(m.colors)
		}

	case key.Matches(msg, m.keys.Next):
		if len(m.colors) > 0 {
			m.cursor = (m.cursor + 1) % len(m.colors)
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.colors) > 0 {
			m.selected = m.colors[m.cursor]
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scores):
		m.wantsScores = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("J O L L Y   J U M P E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick your ball", m.width))
	b.WriteString("\n\n")

	swatches := make([]string, len(m.colors))
	labels := make([]string, len(m.colors))
	for i, c := range m.colors {
		swatches[i] = swatch(c.String(), swatchWidth)
		label := fmt.Sprintf("%-*d", swatchWidth, i+1)
		if i == m.cursor {
			label = m.theme.MenuItemActive.Render(fmt.Sprintf("%-*s", swatchWidth, fmt.Sprintf("^%d", i+1)))
		}
		labels[i] = label
	}
	rowWidth := len(m.colors)*(swatchWidth+1) - 1
	pad := strings.Repeat(" ", max((m.width-rowWidth)/2, 0))
	b.WriteString(pad + strings.Join(swatches, " ") + "\n")
	b.WriteString(pad + strings.Join(labels, " ") + "\n\n")

	if len(m.colors) > 0 {
		b.WriteString(centerText(m.colors[m.cursor].String(), m.width))
		b.WriteString("\n")
	}
	if best, ok := m.session.Best(); ok {
		line := fmt.Sprintf("Best this session: %d (%d games)", best.Score, m.session.Len())
		b.WriteString(m.theme.HUDLabel.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen color, or ColorNone.
func (m PickerModel) Selected() core.Color {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores returns true if user asked for the session scores.
func (m PickerModel) WantsScores() bool {
	return m.wantsScores
}

// Config returns the current runtime config (may have been updated by resize).
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	Color       core.Color
	Config      core.RuntimeConfig
	WantsScores bool
	Quit        bool
}

// RunPicker runs the color picker and returns the selection result.
func RunPicker(colors []core.Color, initial core.Color, session *Session, cfg core.RuntimeConfig) (PickerResult, error) {
	p := tea.NewProgram(NewPickerModel(colors, initial, session, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Config: cfg}, fmt.Errorf("tui: picker: %w", err)
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Config: cfg, Quit: true}, nil
	}

	result := PickerResult{Config: m.Config()}
	switch {
	case m.WantsScores():
		result.WantsScores = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != core.ColorNone:
		result.Color = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
