package jolly

import (
	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
)

// Ball is the player-controlled ball. X, Y is its center.
type Ball struct {
	X, Y    float64
	DX, DY  float64
	Radius  float64
	Color   core.Color
	Gravity float64
	Bounce  float64
}

// newBall places a resting ball centered horizontally, StartOffset above the
// floor.
func newBall(cfg config.BallConfig, field config.FieldConfig, color core.Color) Ball {
	return Ball{
		X:       field.Width / 2,
		Y:       field.Height - cfg.StartOffset,
		Radius:  cfg.Radius,
		Color:   color,
		Gravity: cfg.Gravity,
		Bounce:  cfg.Bounce,
	}
}

// Steer sets dx from the held direction. This overrides velocity, it is not a
// force.
func (b *Ball) Steer(dir int, speed float64) {
	b.DX = float64(dir) * speed
}

// Update applies gravity, integrates position and resolves wall contacts.
func (b *Ball) Update(width, height float64) {
	b.DY += b.Gravity
	b.Y += b.DY
	b.X += b.DX

	// Inelastic reflection: each contact keeps Bounce of the speed.
	if b.Y+b.Radius > height {
		b.Y = height - b.Radius
		b.DY = -b.DY * b.Bounce
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = -b.DY * b.Bounce
	}
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = -b.DX * b.Bounce
	}
	if b.X+b.Radius > width {
		b.X = width - b.Radius
		b.DX = -b.DX * b.Bounce
	}
}

// Circle returns the ball's collision circle.
func (b Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}
