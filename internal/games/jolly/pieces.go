package jolly

import (
	"math"

	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
)

// Piece is a purely visual fragment of a broken obstacle.
type Piece struct {
	X, Y    float64 // Center
	Size    float64 // Diameter
	Color   core.Color
	DX, DY  float64
	Gravity float64
	Life    float64 // Remaining frames
}

// Opacity fades a piece out over its last fadeFrames frames.
func (p Piece) Opacity(fadeFrames float64) float64 {
	return math.Max(0, p.Life/fadeFrames)
}

// breakObstacle marks o broken and fills it with a burst of pieces scattered
// over its bounding box.
func breakObstacle(o *Obstacle, cfg config.PieceConfig, rng Rand) {
	o.Broken = true

	count := cfg.MinCount
	if span := cfg.MaxCount - cfg.MinCount + 1; span > 1 {
		count += rng.Intn(span)
	}

	size := math.Min(o.Width, o.Height) / cfg.SizeDivisor
	o.Pieces = make([]Piece, 0, count)
	for i := 0; i < count; i++ {
		o.Pieces = append(o.Pieces, Piece{
			X:     o.X + uniform(rng, o.Width),
			Y:     o.Y + uniform(rng, o.Height),
			Size:  size,
			Color: o.Color,
			DX:    (rng.Float64() - 0.5) * cfg.Spread,
			// Always launched upward, gravity brings them back down.
			DY:      (rng.Float64() - 1) * cfg.Lift,
			Gravity: cfg.Gravity,
			Life:    cfg.MinLife + uniform(rng, cfg.LifeJitter),
		})
	}
}

// updatePieces advances every piece one frame and drops the expired ones and
// the ones that left the field through the bottom.
func updatePieces(o *Obstacle, fieldHeight float64) {
	alive := o.Pieces[:0]
	for _, p := range o.Pieces {
		p.DY += p.Gravity
		p.X += p.DX
		p.Y += p.DY
		p.Life--
		if p.Life <= 0 || p.Y > fieldHeight {
			continue
		}
		alive = append(alive, p)
	}
	o.Pieces = alive
}
