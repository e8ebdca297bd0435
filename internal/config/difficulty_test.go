package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyTiers(t *testing.T) {
	d := NewDifficultyManager(DefaultJollyConfig().Difficulty)

	tests := []struct {
		score     int
		tier      int
		sizeMult  float64
		speedMult float64
	}{
		{0, 0, 1.0, 1.0},
		{9, 0, 1.0, 1.0},
		{10, 1, 1.2, 1.18},
		{25, 2, 1.4, 1.36},
		{99, 9, 2.8, 2.62},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.tier, d.Tier(tc.score), "tier at score %d", tc.score)
		assert.InDelta(t, tc.sizeMult, d.SizeMultiplier(tc.score), 1e-9, "size at score %d", tc.score)
		assert.InDelta(t, tc.speedMult, d.SpeedMultiplier(tc.score), 1e-9, "speed at score %d", tc.score)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultJollyConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	assert.False(t, d.IsEnabled())
	assert.Equal(t, 0, d.Tier(55))
	assert.Equal(t, 1.0, d.SpeedMultiplier(55))
}

func TestFallSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultJollyConfig().Difficulty)

	assert.InDelta(t, 4.0, d.FallSpeed(4, 0.1, 0, 1), 1e-9)
	assert.InDelta(t, (4+2.5)*1.36, d.FallSpeed(4, 0.1, 25, 1.36), 1e-9)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultJollyConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	assert.Equal(t, DefaultJollyConfig(), cfg, "normal keeps the configured scaling")

	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	cfg = DefaultJollyConfig()
	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 5, cfg.Difficulty.PointsPerTier)

	assert.Equal(t, DifficultyEasy, ParsePreset("easy"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("brutal"))
}
