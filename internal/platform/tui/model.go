package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jollyjumper/internal/core"
	"github.com/vovakirdan/jollyjumper/internal/games/jolly"
)

// Rows taken by the HUD line and the help footer.
const chromeRows = 2

// Outcome is how a game session ended.
type Outcome int

const (
	OutcomeQuit  Outcome = iota // Exit the program
	OutcomeEnded                // Back to the color picker
)

// GameOptions configures the game model.
type GameOptions struct {
	Runtime   core.RuntimeConfig
	HoldTicks int
	Session   *Session
	Logger    *log.Logger
	// ScreenshotDir is where Ctrl+S writes the current frame. Empty means
	// ~/.jolly/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives a running simulation.
type Model struct {
	sim      *jolly.Simulation
	snap     jolly.Snapshot
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	hold     *HoldTracker
	help     help.Model
	theme    Theme
	session  *Session
	logger   *log.Logger
	shotDir  string
	paused   bool
	recorded bool // Whether the current game over has been recorded
	outcome  Outcome
	quitting bool
}

// NewModel creates a game model for a simulation that has already been
// started.
func NewModel(sim *jolly.Simulation, opts GameOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session := opts.Session
	if session == nil {
		session = NewSession()
	}

	cfg := opts.Runtime
	return Model{
		sim:     sim,
		snap:    sim.Snapshot(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-chromeRows),
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(opts.HoldTicks),
		help:    help.New(),
		theme:   DefaultTheme(),
		session: session,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	running := m.snap.Phase == jolly.PhaseRunning

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.outcome = OutcomeQuit
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		if running && !m.paused {
			m.hold.Press(action)
		}

	case core.ActionPause:
		if running {
			m.paused = !m.paused
			m.hold.Reset()
			m.logger.Debug("pause toggled", "paused", m.paused)
		}

	case core.ActionRestart:
		if m.snap.GameOver {
			if err := m.sim.Restart(); err != nil {
				m.logger.Error("restart failed", "error", err)
				return m, nil
			}
			m.hold.Reset()
			m.recorded = false
			m.snap = m.sim.Snapshot()
			m.logger.Info("game restarted")
		}

	case core.ActionEnd:
		m.record()
		m.sim.End()
		m.snap = m.sim.Snapshot()
		m.outcome = OutcomeEnded
		m.logger.Info("game ended")
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The field is rescaled, the
// game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-chromeRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused || m.snap.Phase != jolly.PhaseRunning {
		return m, tickCmd(m.config.TickRate)
	}

	m.snap = m.sim.Step(m.hold.Frame())
	m.hold.Tick()

	if m.snap.GameOver && !m.recorded {
		m.record()
		m.logger.Info("game over", "score", m.snap.FinalScore, "tier", m.snap.Tier, "frames", m.snap.Frame)
	}

	return m, tickCmd(m.config.TickRate)
}

// record adds the current game to the session once, when it is over.
func (m *Model) record() {
	if m.recorded || !m.snap.GameOver {
		return
	}
	m.session.Record(ScoreEntry{
		Color:   m.snap.Ball.Color,
		Score:   m.snap.FinalScore,
		Tier:    m.snap.Tier,
		Frames:  m.snap.Frame,
		EndedAt: time.Now(),
	})
	m.recorded = true
}

// draw renders the current snapshot into the screen buffer.
func (m *Model) draw() {
	DrawField(m.screen, m.snap)
	switch {
	case m.snap.GameOver:
		DrawGameOver(m.screen, m.snap)
	case m.paused:
		DrawOverlay(m.screen, "PAUSED", "p resume")
	}
}

// saveScreenshot writes the current frame as plain text, one screen row per
// line with trailing blanks trimmed.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot: %w", err)
		}
		dir = filepath.Join(home, ".jolly", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("jolly_%s.txt", timestamp))
	var b strings.Builder
	for y := 0; y < m.screen.Height(); y++ {
		b.WriteString(strings.TrimRight(m.screen.Row(y), " "))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// hud renders the status line above the field.
func (m Model) hud() string {
	t := m.theme
	st := m.sim.State()
	parts := []string{
		t.HUDValue.Render("JOLLY JUMPER"),
		t.HUDLabel.Render("score ") + t.HUDValue.Render(fmt.Sprint(st.Score)),
		t.HUDLabel.Render("tier ") + t.HUDValue.Render(fmt.Sprint(m.snap.Tier)),
	}
	if best, ok := m.session.Best(); ok {
		parts = append(parts, t.HUDLabel.Render("best ")+t.HUDValue.Render(fmt.Sprint(best.Score)))
	}
	switch {
	case st.GameOver:
		parts = append(parts, t.OverlayTitle.Render("GAME OVER"))
	case m.paused:
		parts = append(parts, t.OverlayTitle.Render("PAUSED"))
	}
	return strings.Join(parts, t.HUDMuted.Render("  │  "))
}

// View renders the HUD, the field and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// Outcome reports how the model finished.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Snapshot returns the last snapshot the model drew.
func (m Model) Snapshot() jolly.Snapshot {
	return m.snap
}

// Run plays one game on sim until the user ends it or quits.
func Run(sim *jolly.Simulation, opts GameOptions) (Outcome, error) {
	p := tea.NewProgram(NewModel(sim, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return OutcomeQuit, fmt.Errorf("tui: game: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return OutcomeQuit, nil
	}
	return m.Outcome(), nil
}
