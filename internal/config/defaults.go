package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the built-in maze chase configuration.
// It mirrors defaults/chase.yaml and is used if the embedded file cannot be parsed.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		World: ChaseWorld{Width: 640, Height: 600},
		Avatar: ChaseAvatar{
			Speed: 5,
			Size:  Size{Width: 25, Height: 25},
			Start: &Point{X: 320, Y: 300},
		},
		Pursuers: ChasePursuers{
			Count:   3,
			Speed:   1,
			Size:    Size{Width: 20, Height: 20},
			Bounded: true,
		},
		Pickups: ChasePickups{
			Count: 10,
			Size:  Size{Width: 25, Height: 25},
		},
		Placement: ChasePlacement{MaxAttempts: 1000},
		Obstacles: DefaultMaze(640, 600),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraPursuers:   2,
			},
		},
	}
}

// DefaultMaze returns the stock maze for a w x h playfield: a border of
// thickness 20 and interior walls laid out relative to the edges.
func DefaultMaze(w, h float64) []ChaseObstacle {
	return []ChaseObstacle{
		{X: 0, Y: 0, W: 20, H: h},
		{X: w - 20, Y: 0, W: 20, H: h},
		{X: 0, Y: 0, W: w, H: 20},
		{X: 0, Y: h - 20, W: w, H: 20},
		{X: 100, Y: 100, W: w - 200, H: 20},
		{X: 150, Y: 150, W: w - 300, H: 20},
		{X: 100, Y: 150, W: 20, H: h - 300},
		{X: w - 120, Y: 150, W: 20, H: h - 300},
		{X: w - 170, Y: 200, W: 20, H: h - 400},
		{X: 150, Y: h - 170, W: w - 300, H: 20},
		{X: 150, Y: 200, W: 20, H: 200},
		{X: 50, Y: 50, W: w - 100, H: 20},
		{X: 50, Y: h - 70, W: w - 100, H: 20},
		{X: 100, Y: h - 120, W: w - 200, H: 20},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
