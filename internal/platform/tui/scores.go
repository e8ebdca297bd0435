package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

// ScoreEntry is one finished game.
type ScoreEntry struct {
	Color   core.Color
	Score   int
	Tier    int
	Frames  int
	EndedAt time.Time
}

// Session keeps the results of the games played since the program started.
// Nothing is written to disk.
type Session struct {
	entries []ScoreEntry
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Record adds a finished game.
func (s *Session) Record(e ScoreEntry) {
	s.entries = append(s.entries, e)
}

// Len returns the number of recorded games.
func (s *Session) Len() int {
	return len(s.entries)
}

// Ranked returns the entries best first; ties keep play order.
func (s *Session) Ranked() []ScoreEntry {
	ranked := slices.Clone(s.entries)
	slices.SortStableFunc(ranked, func(a, b ScoreEntry) int {
		return b.Score - a.Score
	})
	return ranked
}

// Best returns the highest score so far.
func (s *Session) Best() (ScoreEntry, bool) {
	if len(s.entries) == 0 {
		return ScoreEntry{}, false
	}
	return s.Ranked()[0], true
}

// ScoresKeyMap defines key bindings for the session scores screen.
type ScoresKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoresKeyMap returns the default scores key bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoresModel is the Bubble Tea model for the session scores screen.
type ScoresModel struct {
	session  *Session
	table    table.Model
	help     help.Model
	keys     ScoresKeyMap
	theme    Theme
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoresModel creates a new scores model.
func NewScoresModel(session *Session, width, height int) ScoresModel {
	m := ScoresModel{
		session: session,
		help:    help.New(),
		keys:    DefaultScoresKeyMap(),
		theme:   DefaultTheme(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoresModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Tier", Width: 6},
		{Title: "Ball", Width: 6},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ScoresModel) updateTableRows() {
	ranked := m.session.Ranked()
	rows := make([]table.Row, len(ranked))
	for i, e := range ranked {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Tier),
			e.Color.String(),
			e.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scores model.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scores screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scores screen.
func (m ScoresModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.MenuTitle.Render(centerText("SESSION SCORES", m.width)))
	b.WriteString("\n\n")

	if m.session.Len() == 0 {
		b.WriteString(centerText("No games finished yet.", m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if the user asked to exit the program.
func (m ScoresModel) IsQuitting() bool {
	return m.quitting
}

// RunScores shows the session scores until the user goes back or quits.
// It reports whether the user quit.
func RunScores(session *Session, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoresModel(session, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scores: %w", err)
	}
	m, ok := final.(ScoresModel)
	return !ok || m.IsQuitting(), nil
}
