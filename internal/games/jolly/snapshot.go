package jolly

import "github.com/vovakirdan/jollyjumper/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	Phase      Phase
	Frame      int
	Score      int
	Tier       int
	GameOver   bool
	FinalScore int // Valid when GameOver

	FieldWidth  float64
	FieldHeight float64

	Ball      BallView
	Obstacles []ObstacleView
}

// BallView is the drawable part of the ball.
type BallView struct {
	X, Y   float64
	Radius float64
	Color  core.Color
}

// ObstacleView is the drawable part of an obstacle. Broken obstacles are drawn
// through their pieces only.
type ObstacleView struct {
	X, Y            float64
	Width, Height   float64
	Color           core.Color
	Shape           Shape
	Broken          bool
	SpeedMultiplier float64
	Pieces          []PieceView
}

// PieceView is a drawable fragment: a dot of diameter Size centered on (X, Y).
type PieceView struct {
	X, Y    float64
	Size    float64
	Color   core.Color
	Opacity float64
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       s.phase,
		Frame:       s.frame,
		Score:       s.score,
		Tier:        s.difficulty.Tier(s.score),
		GameOver:    s.phase == PhaseGameOver,
		FinalScore:  s.finalScore,
		FieldWidth:  s.cfg.Field.Width,
		FieldHeight: s.cfg.Field.Height,
		Ball: BallView{
			X:      s.ball.X,
			Y:      s.ball.Y,
			Radius: s.ball.Radius,
			Color:  s.ball.Color,
		},
		Obstacles: make([]ObstacleView, 0, s.obstacles.Len()),
	}

	for i := 0; i < s.obstacles.Len(); i++ {
		o := s.obstacles.At(i)
		view := ObstacleView{
			X:               o.X,
			Y:               o.Y,
			Width:           o.Width,
			Height:          o.Height,
			Color:           o.Color,
			Shape:           o.Shape,
			Broken:          o.Broken,
			SpeedMultiplier: o.SpeedMultiplier,
		}
		if len(o.Pieces) > 0 {
			view.Pieces = make([]PieceView, len(o.Pieces))
			for j, p := range o.Pieces {
				view.Pieces[j] = PieceView{
					X:       p.X,
					Y:       p.Y,
					Size:    p.Size,
					Color:   p.Color,
					Opacity: p.Opacity(s.cfg.Pieces.FadeFrames),
				}
			}
		}
		snap.Obstacles = append(snap.Obstacles, view)
	}

	return snap
}
