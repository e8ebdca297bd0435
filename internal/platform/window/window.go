// Package window is the desktop driver for Jolly Jumper. It runs the
// simulation at the tick rate inside an ebiten window and reads real held-key
// state, which the terminal driver has to emulate.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/jollyjumper/internal/core"
	"github.com/vovakirdan/jollyjumper/internal/games/jolly"
)

// Options configures the window driver.
type Options struct {
	Runtime core.RuntimeConfig
	// Colors offered in the picker; the cursor starts on Initial.
	Colors  []core.Color
	Initial core.Color
	// Scale multiplies the field size to get the window size.
	Scale  float64
	Logger *log.Logger
}

var (
	background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	ringColor  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	dimColor   = color.RGBA{A: 0xb0}
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// whiteSubImage is the source texture for filled triangles.
var whiteSubImage *ebiten.Image

func solidTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Game implements ebiten.Game around a simulation.
type Game struct {
	sim    *jolly.Simulation
	snap   jolly.Snapshot
	colors []core.Color
	cursor int
	paused bool
	logger *log.Logger
}

// NewGame creates a window game over an idle simulation.
func NewGame(sim *jolly.Simulation, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	colors := opts.Colors
	if len(colors) == 0 {
		colors = core.Palette
	}
	return &Game{
		sim:    sim,
		snap:   sim.Snapshot(),
		colors: colors,
		cursor: max(slices.Index(colors, opts.Initial), 0),
		logger: logger,
	}
}

// Update runs one tick: picker input while idle, one simulation step while
// running.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	var err error
	switch g.sim.Phase() {
	case jolly.PhaseIdle:
		err = g.updatePicker()
	case jolly.PhaseRunning:
		g.updateRunning()
	case jolly.PhaseGameOver:
		err = g.updateGameOver()
	}
	g.snap = g.sim.Snapshot()
	return err
}

func (g *Game) updatePicker() error {
	for i, k := range digitKeys {
		if i < len(g.colors) && inpututil.IsKeyJustPressed(k) {
			g.cursor = i
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.cursor = (g.cursor - 1 + len(g.colors)) % len(g.colors)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.cursor = (g.cursor + 1) % len(g.colors)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		c := g.colors[g.cursor]
		if err := g.sim.Start(c); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		g.paused = false
		g.logger.Info("game started", "color", c)
	}
	return nil
}

func (g *Game) updateRunning() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.sim.End()
		g.logger.Info("game ended")
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	snap := g.sim.Step(heldInput())
	if snap.GameOver {
		g.logger.Info("game over", "score", snap.FinalScore, "tier", snap.Tier, "frames", snap.Frame)
	}
}

func (g *Game) updateGameOver() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.sim.Restart(); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		g.logger.Info("game restarted")
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.sim.End()
		g.logger.Info("game ended")
	}
	return nil
}

// heldInput samples the movement keys as they are right now.
func heldInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	return in
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.snap.Phase == jolly.PhaseIdle {
		g.drawPicker(screen)
		return
	}

	g.drawWorld(screen)
	g.drawHUD(screen)

	switch {
	case g.snap.GameOver:
		g.drawBanner(screen, "GAME OVER",
			fmt.Sprintf("Score: %d", g.snap.FinalScore),
			"R restart   E end   Esc quit")
	case g.paused:
		g.drawBanner(screen, "PAUSED", "P resume")
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	for _, o := range g.snap.Obstacles {
		if o.Broken {
			for _, p := range o.Pieces {
				vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2),
					p.Color.RGBA(p.Opacity), true)
			}
			continue
		}
		drawObstacle(screen, o)
	}

	b := g.snap.Ball
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), b.Color.RGBA(1), true)
}

func drawObstacle(screen *ebiten.Image, o jolly.ObstacleView) {
	c := o.Color.RGBA(1)
	switch o.Shape {
	case jolly.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(o.X+o.Width/2), float32(o.Y+o.Height/2), float32(o.Width/2), c, true)
	case jolly.ShapeTriangle:
		var path vector.Path
		path.MoveTo(float32(o.X+o.Width/2), float32(o.Y))
		path.LineTo(float32(o.X), float32(o.Y+o.Height))
		path.LineTo(float32(o.X+o.Width), float32(o.Y+o.Height))
		path.Close()
		fillPath(screen, &path, c)
	default:
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.Width), float32(o.Height), c, false)
	}
}

// fillPath fills path with a solid premultiplied color.
func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gr, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, gr, b, a
	}
	screen.DrawTriangles(vs, is, solidTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Tier: %d", g.snap.Score, g.snap.Tier), 10, 8)
	ebitenutil.DebugPrintAt(screen, "A/D move  P pause  E end", 10, 24)
}

func (g *Game) drawBanner(screen *ebiten.Image, title string, lines ...string) {
	w, h := float32(g.snap.FieldWidth), float32(g.snap.FieldHeight)
	vector.DrawFilledRect(screen, 0, h/2-60, w, 120, dimColor, false)

	ebitenutil.DebugPrintAt(screen, title, centerX(w, title), int(h/2)-40)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, centerX(w, l), int(h/2)-10+20*i)
	}
}

func (g *Game) drawPicker(screen *ebiten.Image) {
	w, h := float32(g.snap.FieldWidth), float32(g.snap.FieldHeight)

	title := "J O L L Y   J U M P E R"
	ebitenutil.DebugPrintAt(screen, title, centerX(w, title), int(h/4))

	const radius, gap = 24, 20
	n := float32(len(g.colors))
	rowW := n*2*radius + (n-1)*gap
	x0 := (w-rowW)/2 + radius
	y := h / 2

	for i, c := range g.colors {
		x := x0 + float32(i)*(2*radius+gap)
		vector.DrawFilledCircle(screen, x, y, radius, c.RGBA(1), true)
		if i == g.cursor {
			vector.StrokeCircle(screen, x, y, radius+6, 3, ringColor, true)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(i+1), int(x)-3, int(y+radius+14))
	}

	hint := "1-8 or A/D pick   Enter start   Esc quit"
	ebitenutil.DebugPrintAt(screen, hint, centerX(w, hint), int(h*3/4))
}

// centerX returns the x that centers text in the debug font (6px per glyph).
func centerX(width float32, text string) int {
	return int(width/2) - len(text)*3
}

// Layout keeps the logical screen at field size; ebiten scales it to the
// window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(math.Ceil(g.snap.FieldWidth)), int(math.Ceil(g.snap.FieldHeight))
}

// Run opens the window and blocks until it is closed.
func Run(sim *jolly.Simulation, opts Options) error {
	cfg := sim.Config()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(cfg.Field.Width*scale), int(cfg.Field.Height*scale))
	ebiten.SetWindowTitle("Jolly Jumper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(opts.Runtime.TickRate, 1))

	err := ebiten.RunGame(NewGame(sim, opts))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
