package jolly

import (
	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
)

// Shape is the drawn form of an obstacle.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeTriangle
	shapeCount
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Obstacle falls from above the field until it hits the floor, then breaks
// into pieces. X, Y is the top-left corner of its bounding box.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64
	Color  core.Color
	Shape  Shape
	Broken bool
	// SpeedMultiplier is locked in from the tier at spawn time.
	SpeedMultiplier float64
	Pieces          []Piece
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Done reports whether the obstacle can be retired: broken with every piece
// expired.
func (o *Obstacle) Done() bool {
	return o.Broken && len(o.Pieces) == 0
}

// obstacleQueue is a ring buffer of obstacles in spawn order, front = oldest.
// Popping the front is O(1); the buffer grows when full.
type obstacleQueue struct {
	buf  []Obstacle
	head int
	n    int
}

func newObstacleQueue(capacity int) *obstacleQueue {
	return &obstacleQueue{buf: make([]Obstacle, core.Max(capacity, 1))}
}

// Len returns the number of obstacles, broken ones included.
func (q *obstacleQueue) Len() int {
	return q.n
}

// At returns the i-th oldest obstacle.
func (q *obstacleQueue) At(i int) *Obstacle {
	return &q.buf[(q.head+i)%len(q.buf)]
}

// Push appends a newly spawned obstacle.
func (q *obstacleQueue) Push(o Obstacle) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = o
	q.n++
}

// PopFront removes the oldest obstacle.
func (q *obstacleQueue) PopFront() {
	if q.n == 0 {
		return
	}
	q.buf[q.head] = Obstacle{}
	q.head = (q.head + 1) % len(q.buf)
	q.n--
}

// Reset drops every obstacle.
func (q *obstacleQueue) Reset() {
	clear(q.buf)
	q.head = 0
	q.n = 0
}

func (q *obstacleQueue) grow() {
	buf := make([]Obstacle, len(q.buf)*2)
	for i := 0; i < q.n; i++ {
		buf[i] = *q.At(i)
	}
	q.buf = buf
	q.head = 0
}

// Spawner decides when a new obstacle enters the field and rolls its
// parameters.
type Spawner struct {
	cfg        config.ObstacleConfig
	palette    []core.Color
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner. The palette must already be validated.
func NewSpawner(cfg config.ObstacleConfig, palette []core.Color, diff *config.DifficultyManager) *Spawner {
	return &Spawner{cfg: cfg, palette: palette, difficulty: diff}
}

// ShouldSpawn reports whether frame is a spawn frame and there is room.
// Broken obstacles still animating count toward the limit.
func (s *Spawner) ShouldSpawn(frame, active int) bool {
	return frame > 0 && frame%s.cfg.SpawnInterval == 0 && active < s.cfg.MaxActive
}

// Spawn rolls a new obstacle just above the top edge.
// Random draws happen in a fixed order: width, height, x, color, shape.
func (s *Spawner) Spawn(rng Rand, score int, fieldWidth float64) Obstacle {
	size := s.difficulty.SizeMultiplier(score)

	width := s.cfg.BaseWidth*size + uniform(rng, s.cfg.WidthJitter)*size
	height := s.cfg.BaseHeight*size + uniform(rng, s.cfg.HeightJitter)*size
	x := uniform(rng, fieldWidth-width)
	color := s.palette[rng.Intn(len(s.palette))]
	shape := Shape(rng.Intn(int(shapeCount)))

	return Obstacle{
		X:               x,
		Y:               -height,
		Width:           width,
		Height:          height,
		Color:           color,
		Shape:           shape,
		SpeedMultiplier: s.difficulty.SpeedMultiplier(score),
	}
}
