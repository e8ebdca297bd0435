// Package config provides YAML/TOML configuration loading and difficulty
// management for the simulation.
package config

// JollyConfig contains all tunables of the simulation.
type JollyConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Pieces     PieceConfig      `yaml:"pieces" toml:"pieces"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls" toml:"controls"`
}

// FieldConfig is the play-field size in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the player ball.
type BallConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	Bounce       float64 `yaml:"bounce" toml:"bounce"`         // Fraction of speed kept per wall/floor hit
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed"` // |dx| while a direction is held
	StartOffset  float64 `yaml:"start_offset" toml:"start_offset"`
	DefaultColor string  `yaml:"default_color" toml:"default_color"`
}

// ObstacleConfig defines spawning and falling of obstacles.
type ObstacleConfig struct {
	SpawnInterval    int      `yaml:"spawn_interval" toml:"spawn_interval"` // Frames between spawn attempts
	MaxActive        int      `yaml:"max_active" toml:"max_active"`
	BaseWidth        float64  `yaml:"base_width" toml:"base_width"`
	WidthJitter      float64  `yaml:"width_jitter" toml:"width_jitter"`
	BaseHeight       float64  `yaml:"base_height" toml:"base_height"`
	HeightJitter     float64  `yaml:"height_jitter" toml:"height_jitter"`
	BaseSpeed        float64  `yaml:"base_speed" toml:"base_speed"`
	ScoreSpeedFactor float64  `yaml:"score_speed_factor" toml:"score_speed_factor"` // Added to base speed per point
	Palette          []string `yaml:"palette" toml:"palette"`
}

// PieceConfig defines the particle burst of a breaking obstacle.
type PieceConfig struct {
	MinCount    int     `yaml:"min_count" toml:"min_count"`
	MaxCount    int     `yaml:"max_count" toml:"max_count"`
	SizeDivisor float64 `yaml:"size_divisor" toml:"size_divisor"`
	Spread      float64 `yaml:"spread" toml:"spread"` // Width of the dx range, centered on 0
	Lift        float64 `yaml:"lift" toml:"lift"`     // Max upward launch speed
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	MinLife     float64 `yaml:"min_life" toml:"min_life"`
	LifeJitter  float64 `yaml:"life_jitter" toml:"life_jitter"`
	FadeFrames  float64 `yaml:"fade_frames" toml:"fade_frames"` // Lifetime at which a piece is fully opaque
}

// DifficultyConfig defines score-tier scaling.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	PointsPerTier int     `yaml:"points_per_tier" toml:"points_per_tier"`
	SizeStep      float64 `yaml:"size_step" toml:"size_step"`   // Size multiplier added per tier
	SpeedStep     float64 `yaml:"speed_step" toml:"speed_step"` // Speed multiplier added per tier
}

// ControlsConfig holds driver-side input settings.
type ControlsConfig struct {
	// HoldTicks is how long a terminal key press counts as held.
	// Terminals report presses only, auto-repeat keeps refreshing it.
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the configured scaling untouched.
func ApplyPreset(cfg *JollyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.PointsPerTier = 15
		cfg.Difficulty.SpeedStep = 0.12
		cfg.Difficulty.SizeStep = 0.15
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.PointsPerTier = 5
		cfg.Difficulty.SpeedStep = 0.25
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
