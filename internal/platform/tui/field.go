package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/jollyjumper/internal/core"
	"github.com/vovakirdan/jollyjumper/internal/games/jolly"
)

// Minimum screen size that can show the field.
const (
	minFieldCols = 12
	minFieldRows = 6
)

const fillGlyph = '█'

// Piece glyphs, brightest first.
var pieceGlyphs = []rune{'●', '•', '·'}

// fieldView maps field coordinates onto a screen area. Terminal cells are
// roughly twice as tall as wide, so the two axes scale independently.
type fieldView struct {
	area   core.Rect
	sx, sy float64
}

func newFieldView(area core.Rect, width, height float64) fieldView {
	return fieldView{
		area: area,
		sx:   float64(area.W) / width,
		sy:   float64(area.H) / height,
	}
}

// cellCenter returns the field coordinates of the center of area cell (cx, cy).
func (v fieldView) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / v.sx, (float64(cy) + 0.5) / v.sy
}

// cellAt returns the screen cell holding field point (x, y) and whether it
// lies inside the area.
func (v fieldView) cellAt(x, y float64) (int, int, bool) {
	cx := v.area.X + int(math.Floor(x*v.sx))
	cy := v.area.Y + int(math.Floor(y*v.sy))
	return cx, cy, v.area.Contains(cx, cy)
}

// fill paints every cell inside bounds whose center satisfies inside. A shape
// smaller than one cell still gets its center cell.
func (v fieldView) fill(scr *core.Screen, bounds core.Box, inside func(x, y float64) bool, c core.Color) {
	minX := core.Clamp(int(math.Floor(bounds.X*v.sx)), 0, v.area.W)
	maxX := core.Clamp(int(math.Ceil((bounds.X+bounds.W)*v.sx)), 0, v.area.W)
	minY := core.Clamp(int(math.Floor(bounds.Y*v.sy)), 0, v.area.H)
	maxY := core.Clamp(int(math.Ceil((bounds.Y+bounds.H)*v.sy)), 0, v.area.H)

	drawn := false
	for cy := minY; cy < maxY; cy++ {
		for cx := minX; cx < maxX; cx++ {
			if inside(v.cellCenter(cx, cy)) {
				scr.SetColored(v.area.X+cx, v.area.Y+cy, fillGlyph, c)
				drawn = true
			}
		}
	}
	if drawn {
		return
	}
	if cx, cy, ok := v.cellAt(bounds.Center()); ok {
		scr.SetColored(cx, cy, fillGlyph, c)
	}
}

// DrawField draws a snapshot into scr: a frame around the field, obstacles,
// fading pieces and the ball.
func DrawField(scr *core.Screen, snap jolly.Snapshot) {
	scr.Clear()
	if scr.Width() < minFieldCols || scr.Height() < minFieldRows {
		scr.DrawTextCentered(scr.Height()/2, "too small")
		return
	}

	outer := core.NewRect(0, 0, scr.Width(), scr.Height())
	scr.DrawBox(outer)

	view := newFieldView(core.NewRect(1, 1, outer.W-2, outer.H-2), snap.FieldWidth, snap.FieldHeight)

	for _, o := range snap.Obstacles {
		if o.Broken {
			drawPieces(scr, view, o.Pieces)
			continue
		}
		drawObstacle(scr, view, o)
	}

	b := snap.Ball
	view.fill(scr, core.Box{X: b.X - b.Radius, Y: b.Y - b.Radius, W: 2 * b.Radius, H: 2 * b.Radius},
		func(x, y float64) bool { return math.Hypot(x-b.X, y-b.Y) <= b.Radius }, b.Color)
}

func drawObstacle(scr *core.Screen, view fieldView, o jolly.ObstacleView) {
	box := core.Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
	cx, cy := box.Center()

	var inside func(x, y float64) bool
	switch o.Shape {
	case jolly.ShapeCircle:
		// Radius is width/2 even when the box is not square.
		r := o.Width / 2
		box = core.Box{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
		inside = func(x, y float64) bool { return math.Hypot(x-cx, y-cy) <= r }
	case jolly.ShapeTriangle:
		// Apex at top center, base along the bottom edge.
		inside = func(x, y float64) bool {
			if y < o.Y || y > o.Y+o.Height {
				return false
			}
			half := (y - o.Y) / o.Height * o.Width / 2
			return math.Abs(x-cx) <= half
		}
	default:
		inside = func(x, y float64) bool {
			return x >= o.X && x <= o.X+o.Width && y >= o.Y && y <= o.Y+o.Height
		}
	}
	view.fill(scr, box, inside, o.Color)
}

func drawPieces(scr *core.Screen, view fieldView, pieces []jolly.PieceView) {
	// Pieces are round, centered on their position.
	for _, p := range pieces {
		cx, cy, ok := view.cellAt(p.X, p.Y)
		if !ok {
			continue
		}
		scr.SetColored(cx, cy, pieceGlyph(p.Opacity), p.Color.Dim(p.Opacity))
	}
}

// pieceGlyph picks a smaller glyph as a piece fades.
func pieceGlyph(opacity float64) rune {
	switch {
	case opacity > 2.0/3:
		return pieceGlyphs[0]
	case opacity > 1.0/3:
		return pieceGlyphs[1]
	default:
		return pieceGlyphs[2]
	}
}

// DrawOverlay draws a centered box with a title and lines of text over
// whatever is on the screen.
func DrawOverlay(scr *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 4

	box := core.NewRect((scr.Width()-width)/2, (scr.Height()-height)/2, width, height)
	scr.DrawRect(box, ' ')
	scr.DrawBox(box)

	scr.DrawTextCentered(box.Y+1, title)
	scr.DrawHLine(box.X+1, box.Y+2, box.W-2, '─')
	scr.Set(box.X, box.Y+2, '├')
	scr.Set(box.Right()-1, box.Y+2, '┤')
	for i, l := range lines {
		scr.DrawTextCentered(box.Y+3+i, l)
	}
}

// DrawGameOver draws the game-over overlay for snap.
func DrawGameOver(scr *core.Screen, snap jolly.Snapshot) {
	DrawOverlay(scr, "GAME OVER",
		fmt.Sprintf("Score: %d", snap.FinalScore),
		"r restart · e end · q quit",
	)
}
