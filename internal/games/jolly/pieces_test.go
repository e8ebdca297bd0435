package jolly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
)

func TestObstacleBreaksOnFloor(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		s := newRunning(t, WithSeed(seed))
		s.obstacles.Push(Obstacle{
			X: 0, Y: 600 - 24 - 1, Width: 60, Height: 24,
			Color: core.Palette[2], Shape: ShapeRect, SpeedMultiplier: 1,
		})

		s.Step(noInput())

		o := s.obstacles.At(0)
		require.True(t, o.Broken, "seed %d", seed)
		assert.GreaterOrEqual(t, len(o.Pieces), 6, "seed %d", seed)
		assert.LessOrEqual(t, len(o.Pieces), 9, "seed %d", seed)
		for _, p := range o.Pieces {
			assert.Equal(t, core.Palette[2], p.Color)
			assert.InDelta(t, 6.0, p.Size, 1e-9, "min(60, 24) / 4")
		}
	}
}

func TestObstacleStillFallingAboveFloor(t *testing.T) {
	s := newRunning(t)
	s.obstacles.Push(Obstacle{X: 0, Y: 600 - 24 - 5, Width: 60, Height: 24, SpeedMultiplier: 1})

	s.Step(noInput())

	o := s.obstacles.At(0)
	assert.False(t, o.Broken)
	assert.InDelta(t, 600-24-1, o.Y, 1e-9)
}

func TestBreakPieceRanges(t *testing.T) {
	cfg := config.DefaultJollyConfig().Pieces

	low := Obstacle{X: 100, Y: 500, Width: 80, Height: 40}
	breakObstacle(&low, cfg, fixedRand{f: 0})
	require.Len(t, low.Pieces, 6)
	p := low.Pieces[0]
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 500.0, p.Y)
	assert.Equal(t, 10.0, p.Size)
	assert.Equal(t, -3.0, p.DX)
	assert.Equal(t, -6.0, p.DY)
	assert.Equal(t, 40.0, p.Life)
	assert.Equal(t, 0.3, p.Gravity)

	high := Obstacle{X: 100, Y: 500, Width: 80, Height: 40}
	breakObstacle(&high, cfg, fixedRand{f: 0.999})
	require.Len(t, high.Pieces, 9)
	p = high.Pieces[0]
	assert.Less(t, p.X, 180.0)
	assert.Less(t, p.DX, 3.0)
	assert.Less(t, p.DY, 0.0, "pieces always launch upward")
	assert.Less(t, p.Life, 60.0)
}

func TestUpdatePieces(t *testing.T) {
	o := Obstacle{
		Broken: true,
		Pieces: []Piece{
			{X: 10, Y: 100, DX: 1, DY: -2, Gravity: 0.3, Life: 10},
			{X: 10, Y: 100, Life: 1},                   // expires this frame
			{X: 10, Y: 599, DY: 2, Gravity: 0.3, Life: 50}, // leaves through the floor
		},
	}

	updatePieces(&o, 600)

	require.Len(t, o.Pieces, 1)
	p := o.Pieces[0]
	assert.InDelta(t, -1.7, p.DY, 1e-9)
	assert.InDelta(t, 11, p.X, 1e-9)
	assert.InDelta(t, 98.3, p.Y, 1e-9)
	assert.Equal(t, 9.0, p.Life)
}

func TestPieceOpacity(t *testing.T) {
	assert.Equal(t, 1.0, Piece{Life: 60}.Opacity(60))
	assert.Equal(t, 0.5, Piece{Life: 30}.Opacity(60))
	assert.Equal(t, 0.0, Piece{Life: -2}.Opacity(60))
}

func TestBrokenObstacleAnimatesFromNextFrame(t *testing.T) {
	s := newRunning(t, WithRand(fixedRand{f: 0}))
	s.obstacles.Push(Obstacle{X: 0, Y: 580, Width: 60, Height: 24, SpeedMultiplier: 1})

	s.Step(noInput())
	o := s.obstacles.At(0)
	require.True(t, o.Broken)
	assert.Equal(t, 40.0, o.Pieces[0].Life, "fresh pieces are not advanced on the break frame")

	s.Step(noInput())
	assert.Equal(t, 39.0, o.Pieces[0].Life)
}
