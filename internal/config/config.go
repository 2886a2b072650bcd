// Package config provides YAML-based game configuration loading and
// difficulty management for maze chase.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ChaseConfig contains all configuration for a maze chase session.
type ChaseConfig struct {
	World      ChaseWorld       `yaml:"world"`
	Avatar     ChaseAvatar      `yaml:"avatar"`
	Pursuers   ChasePursuers    `yaml:"pursuers"`
	Pickups    ChasePickups     `yaml:"pickups"`
	Obstacles  []ChaseObstacle  `yaml:"obstacles"`
	Placement  ChasePlacement   `yaml:"placement"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChaseWorld defines the playfield size in world units.
type ChaseWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size is a sprite size used to derive bounding boxes.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ChaseAvatar defines the player-controlled avatar.
type ChaseAvatar struct {
	Speed float64 `yaml:"speed"` // World units per frame
	Size  Size    `yaml:"size"`
	Start *Point  `yaml:"start"` // nil = world center
}

// ChasePursuers defines the chasing agents.
type ChasePursuers struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"` // Must be below the avatar speed
	Size  Size    `yaml:"size"`
	// Bounded applies the world-bounds check to pursuer moves as well as
	// obstacle checks. False keeps pursuers restricted by obstacles only.
	Bounded bool `yaml:"bounded"`
	// Positions, when set, replace random placement and Count is ignored.
	Positions []Point `yaml:"positions,omitempty"`
}

// ChasePickups defines the collectibles.
type ChasePickups struct {
	Count int  `yaml:"count"`
	Size  Size `yaml:"size"`
	// Positions, when set, replace random placement and Count is ignored.
	Positions []Point `yaml:"positions,omitempty"`
}

// ChaseObstacle is a maze wall given by its top-left corner and size.
type ChaseObstacle struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ChasePlacement bounds the rejection sampling used to spawn entities.
type ChasePlacement struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// AvatarStart returns the configured start position, defaulting to the world center.
func (c ChaseConfig) AvatarStart() Point {
	if c.Avatar.Start != nil {
		return *c.Avatar.Start
	}
	return Point{X: float64(int(c.World.Width) / 2), Y: float64(int(c.World.Height) / 2)}
}

// Validate checks that every value is usable by the simulation.
func (c ChaseConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g must be positive", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Avatar.Speed <= 0:
		return fmt.Errorf("%w: avatar.speed must be positive", ErrInvalidConfig)
	case c.Pursuers.Speed <= 0:
		return fmt.Errorf("%w: pursuers.speed must be positive", ErrInvalidConfig)
	case c.Pursuers.Speed >= c.Avatar.Speed:
		return fmt.Errorf("%w: pursuers.speed %g must be below avatar.speed %g",
			ErrInvalidConfig, c.Pursuers.Speed, c.Avatar.Speed)
	case c.Pursuers.Count < 0:
		return fmt.Errorf("%w: pursuers.count must not be negative", ErrInvalidConfig)
	case c.Pickups.Count < 0:
		return fmt.Errorf("%w: pickups.count must not be negative", ErrInvalidConfig)
	case c.Placement.MaxAttempts <= 0:
		return fmt.Errorf("%w: placement.max_attempts must be positive", ErrInvalidConfig)
	}

	sizes := map[string]Size{
		"avatar.size":   c.Avatar.Size,
		"pursuers.size": c.Pursuers.Size,
		"pickups.size":  c.Pickups.Size,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s %gx%g must be positive", ErrInvalidConfig, name, s.Width, s.Height)
		}
	}

	for i, o := range c.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			return fmt.Errorf("%w: obstacles[%d] size %gx%g must be positive", ErrInvalidConfig, i, o.W, o.H)
		}
	}

	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1]", ErrInvalidConfig)
	}

	return nil
}

// DifficultyConfig defines how a difficulty level scales the pursuers.
// The level is fixed for a whole session.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to pursuer speed multiplier at max difficulty
	ExtraPursuers   int     `yaml:"extra_pursuers"`   // Pursuers added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
