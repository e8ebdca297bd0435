package config

// DifficultyManager derives obstacle scaling from the score.
// Difficulty moves in whole tiers: every PointsPerTier points bump both the
// obstacle size multiplier and the speed multiplier new obstacles lock in.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether tier progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.PointsPerTier > 0
}

// Tier returns floor(score / PointsPerTier), or 0 when progression is off.
func (d *DifficultyManager) Tier(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.PointsPerTier
}

// SizeMultiplier returns 1 + SizeStep*tier for the given score.
func (d *DifficultyManager) SizeMultiplier(score int) float64 {
	return 1 + float64(d.Tier(score))*d.cfg.SizeStep
}

// SpeedMultiplier returns 1 + SpeedStep*tier for the given score.
func (d *DifficultyManager) SpeedMultiplier(score int) float64 {
	return 1 + float64(d.Tier(score))*d.cfg.SpeedStep
}

// FallSpeed returns the per-frame fall speed of an obstacle that locked in
// speedMultiplier at spawn time. The score term is always live.
func (d *DifficultyManager) FallSpeed(baseSpeed, scoreFactor float64, score int, speedMultiplier float64) float64 {
	return (baseSpeed + float64(score)*scoreFactor) * speedMultiplier
}
