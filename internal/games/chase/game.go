// Package chase implements a maze chase game.
// The player steers an avatar through a maze of walls, collecting every
// pickup while slower pursuers wander and home in on it.
package chase

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "chase"

// Game adapts a World to the platform's registry.Game interface,
// adding pause, restart and logging around the simulation.
type Game struct {
	cfg    config.ChaseConfig
	logger *log.Logger
	rng    *rand.Rand
	world  *World
	paused bool
}

// New creates a game from a validated configuration.
func New(cfg config.ChaseConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// NewFromOptions loads the configuration named by opts, applies the
// difficulty preset and scaling, and creates the game.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadChase(opts.ConfigPath, opts.Logger)
	if err != nil {
		return nil, err
	}

	config.ApplyChasePreset(&cfg, opts.Difficulty)
	cfg = config.NewDifficultyManager(cfg.Difficulty).Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New(cfg, opts.Logger), nil
}

func init() {
	registry.Register(ID, "Maze Chase", func(opts registry.Options) (registry.Game, error) {
		return NewFromOptions(opts)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Config returns the effective configuration.
func (g *Game) Config() config.ChaseConfig {
	return g.cfg
}

// Reset builds a fresh world seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	world, err := NewWorld(ParamsFromConfig(g.cfg), rng)
	if err != nil {
		return fmt.Errorf("chase: cannot start session: %w", err)
	}

	g.rng = rng
	g.world = world
	g.paused = false

	g.logger.Info("session started",
		"seed", cfg.Seed,
		"pursuers", len(world.pursuers),
		"pickups", world.total,
		"obstacles", world.field.Len(),
	)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Restart is only honoured once the session is over
	if in.Has(core.ActionRestart) && g.world.Terminal() != Playing {
		if err := g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()}); err != nil {
			g.logger.Error("restart failed", "error", err)
		}
		return core.StepResult{State: g.State()}
	}

	if g.world.Terminal() != Playing {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.world.Collected()
	outcome := g.world.Step(InputFromFrame(in))

	if got := g.world.Collected(); got > before {
		g.logger.Debug("pickup collected",
			"frame", g.world.FrameNumber(),
			"collected", got,
			"remaining", g.world.Remaining(),
		)
	}
	if outcome != Playing {
		g.logger.Info("session ended",
			"outcome", outcome,
			"frame", g.world.FrameNumber(),
			"collected", g.world.Collected(),
		)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	sink := NewScreenSink(dst)
	sink.Paused = g.paused
	g.world.Render(sink)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	t := g.world.Terminal()
	return core.GameState{
		Score:    g.world.Collected(),
		GameOver: t != Playing,
		Won:      t == Won,
		Paused:   g.paused,
	}
}

// World exposes the running simulation, or nil before the first Reset.
func (g *Game) World() *World {
	return g.world
}
