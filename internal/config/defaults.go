package config

import (
	_ "embed"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

//go:embed defaults/jolly.yaml
var defaultJollyYAML []byte

// DefaultJollyConfig returns the hardcoded default configuration.
// It matches defaults/jolly.yaml and backs it up if the embed fails to parse.
func DefaultJollyConfig() JollyConfig {
	palette := make([]string, len(core.Palette))
	for i, c := range core.Palette {
		palette[i] = c.String()
	}

	return JollyConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:       22,
			Gravity:      0.5,
			Bounce:       0.8,
			MoveSpeed:    6,
			StartOffset:  40,
			DefaultColor: "#ff6f91",
		},
		Obstacles: ObstacleConfig{
			SpawnInterval:    60,
			MaxActive:        6,
			BaseWidth:        60,
			WidthJitter:      60,
			BaseHeight:       24,
			HeightJitter:     16,
			BaseSpeed:        4,
			ScoreSpeedFactor: 0.1,
			Palette:          palette,
		},
		Pieces: PieceConfig{
			MinCount:    6,
			MaxCount:    9,
			SizeDivisor: 4,
			Spread:      6,
			Lift:        6,
			Gravity:     0.3,
			MinLife:     40,
			LifeJitter:  20,
			FadeFrames:  60,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			PointsPerTier: 10,
			SizeStep:      0.2,
			SpeedStep:     0.18,
		},
		Controls: ControlsConfig{
			HoldTicks: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJollyYAML
}
