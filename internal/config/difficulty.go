package config

import "math"

// DifficultyManager derives session parameters from the difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0), or 0 when scaling is off.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.initialLevel
}

// PursuerSpeed scales the base pursuer speed, keeping it strictly below limit.
func (d *DifficultyManager) PursuerSpeed(base, limit float64) float64 {
	speed := base * (1.0 + d.Level()*d.cfg.Scaling.SpeedMultiplier)
	if speed >= limit {
		// Pursuers must stay slower than the avatar
		speed = math.Nextafter(limit, 0)
	}
	return speed
}

// PursuerCount adds extra pursuers proportionally to the level.
func (d *DifficultyManager) PursuerCount(base int) int {
	return base + int(d.Level()*float64(d.cfg.Scaling.ExtraPursuers))
}

// Apply returns a copy of cfg with the difficulty scaling baked into the
// pursuer speed and count.
func (d *DifficultyManager) Apply(cfg ChaseConfig) ChaseConfig {
	cfg.Pursuers.Speed = d.PursuerSpeed(cfg.Pursuers.Speed, cfg.Avatar.Speed)
	cfg.Pursuers.Count = d.PursuerCount(cfg.Pursuers.Count)
	return cfg
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
