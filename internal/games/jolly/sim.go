// Package jolly implements the Jolly Jumper simulation: a ball bouncing under
// gravity while obstacles fall, break on the floor and score once their pieces
// fade. The package holds pure frame-stepped logic; drivers own timing, input
// and drawing.
package jolly

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
)

// Phase is the lifecycle state of a Simulation.
type Phase int

const (
	PhaseIdle     Phase = iota // No game; waiting for Start
	PhaseRunning               // Step advances the world
	PhaseGameOver              // Frozen until Restart or End
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned by commands issued in the wrong phase.
var ErrInvalidTransition = errors.New("jolly: invalid phase transition")

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand injects the random source. The default is seeded with 0.
func WithRand(rng Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = NewRand(seed)
	}
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Simulation owns all game state and advances it one frame per Step.
// It is not safe for concurrent use; a single driver goroutine calls it.
type Simulation struct {
	cfg          config.JollyConfig
	rng          Rand
	logger       *log.Logger
	difficulty   *config.DifficultyManager
	spawner      *Spawner
	defaultColor core.Color

	phase      Phase
	color      core.Color // Ball color chosen at Start, kept across restarts
	ball       Ball
	obstacles  *obstacleQueue
	score      int
	finalScore int
	frame      int
}

// New validates cfg and builds an idle simulation.
func New(cfg config.JollyConfig, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jolly: %w", err)
	}

	palette := make([]core.Color, 0, len(cfg.Obstacles.Palette))
	for _, p := range cfg.Obstacles.Palette {
		c, err := core.ParseColor(p)
		if err != nil {
			return nil, fmt.Errorf("jolly: palette: %w", err)
		}
		palette = append(palette, c)
	}

	defaultColor := palette[0]
	if cfg.Ball.DefaultColor != "" {
		c, err := core.ParseColor(cfg.Ball.DefaultColor)
		if err != nil {
			return nil, fmt.Errorf("jolly: default color: %w", err)
		}
		defaultColor = c
	}

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	s := &Simulation{
		cfg:          cfg,
		rng:          NewRand(0),
		logger:       log.New(io.Discard),
		difficulty:   difficulty,
		spawner:      NewSpawner(cfg.Obstacles, palette, difficulty),
		defaultColor: defaultColor,
		obstacles:    newObstacleQueue(cfg.Obstacles.MaxActive),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reset(defaultColor)
	return s, nil
}

// Start begins a game with the chosen ball color. An empty color falls back to
// the configured default.
func (s *Simulation) Start(color core.Color) error {
	if s.phase != PhaseIdle {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, s.phase)
	}
	if color == core.ColorNone {
		color = s.defaultColor
	}
	s.reset(color)
	s.phase = PhaseRunning
	s.logger.Debug("game started", "color", color)
	return nil
}

// Restart reinitializes the world and resumes running with the same color.
func (s *Simulation) Restart() error {
	if s.phase == PhaseIdle {
		return fmt.Errorf("%w: restart while %s", ErrInvalidTransition, s.phase)
	}
	s.reset(s.color)
	s.phase = PhaseRunning
	s.logger.Debug("game restarted")
	return nil
}

// End discards the game and returns to idle. Ending an idle simulation is a
// no-op.
func (s *Simulation) End() {
	if s.phase == PhaseIdle {
		return
	}
	s.logger.Debug("game ended", "phase", s.phase, "score", s.score)
	s.reset(s.defaultColor)
	s.phase = PhaseIdle
}

func (s *Simulation) reset(color core.Color) {
	s.color = color
	s.ball = newBall(s.cfg.Ball, s.cfg.Field, color)
	s.obstacles.Reset()
	s.score = 0
	s.finalScore = 0
	s.frame = 0
}

// Step advances one frame using the held actions in `in` and returns the
// resulting snapshot. Outside PhaseRunning it changes nothing.
func (s *Simulation) Step(in core.InputFrame) Snapshot {
	if s.phase != PhaseRunning {
		return s.Snapshot()
	}

	s.ball.Steer(in.Horizontal(), s.cfg.Ball.MoveSpeed)
	s.ball.Update(s.cfg.Field.Width, s.cfg.Field.Height)

	s.updateObstacles()
	s.sweep()

	if i := firstHit(s.ball, s.obstacles); i >= 0 {
		s.phase = PhaseGameOver
		s.finalScore = s.score
		o := s.obstacles.At(i)
		s.logger.Debug("game over", "score", s.score, "frame", s.frame, "shape", o.Shape)
		return s.Snapshot()
	}

	s.frame++
	if s.spawner.ShouldSpawn(s.frame, s.obstacles.Len()) {
		s.obstacles.Push(s.spawner.Spawn(s.rng, s.score, s.cfg.Field.Width))
	}

	return s.Snapshot()
}

// updateObstacles drops unbroken obstacles and animates the pieces of broken
// ones. An obstacle that breaks this frame starts animating next frame.
func (s *Simulation) updateObstacles() {
	for i := 0; i < s.obstacles.Len(); i++ {
		o := s.obstacles.At(i)
		if o.Broken {
			updatePieces(o, s.cfg.Field.Height)
			continue
		}

		o.Y += s.difficulty.FallSpeed(s.cfg.Obstacles.BaseSpeed, s.cfg.Obstacles.ScoreSpeedFactor, s.score, o.SpeedMultiplier)
		if o.Box().Bottom() >= s.cfg.Field.Height {
			breakObstacle(o, s.cfg.Pieces, s.rng)
		}
	}
}

// sweep retires finished obstacles from the front only, so score follows spawn
// order. Obstacles that finished behind a slower one are credited as soon as
// the front clears.
func (s *Simulation) sweep() {
	for s.obstacles.Len() > 0 && s.obstacles.At(0).Done() {
		s.obstacles.PopFront()
		s.score++
	}
}

// State returns the compact game status.
func (s *Simulation) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase == PhaseGameOver,
	}
}

// Phase returns the lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.JollyConfig {
	return s.cfg
}
