package chase

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
)

// Terminal is the session outcome state. Won and Lost are final.
type Terminal int

const (
	Playing Terminal = iota
	Won
	Lost
)

func (t Terminal) String() string {
	switch t {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Input is the set of directions held during one frame.
type Input struct {
	Left, Right, Up, Down bool
}

// InputFromFrame extracts the held directions from a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
	}
}

// Params are the construction-time settings of a session.
type Params struct {
	Bounds      Bounds
	Obstacles   []core.Box
	MaxAttempts int // Rejection sampling limit per entity

	AvatarStart  core.Vec
	AvatarSpeed  float64
	AvatarSprite Sprite

	PursuerCount     int
	PursuerSpeed     float64
	PursuerSprite    Sprite
	PursuersBounded  bool
	PursuerPositions []core.Vec // Fixed spawns; replace PursuerCount when set

	PickupCount     int
	PickupSprite    Sprite
	PickupPositions []core.Vec // Fixed spawns; replace PickupCount when set
}

// ParamsFromConfig converts a validated configuration into session parameters.
func ParamsFromConfig(cfg config.ChaseConfig) Params {
	obstacles := make([]core.Box, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		obstacles[i] = core.BoxFromRect(o.X, o.Y, o.W, o.H)
	}
	start := cfg.AvatarStart()

	return Params{
		Bounds:      Bounds{W: cfg.World.Width, H: cfg.World.Height},
		Obstacles:   obstacles,
		MaxAttempts: cfg.Placement.MaxAttempts,

		AvatarStart:  core.V(start.X, start.Y),
		AvatarSpeed:  cfg.Avatar.Speed,
		AvatarSprite: Sprite{W: cfg.Avatar.Size.Width, H: cfg.Avatar.Size.Height},

		PursuerCount:     cfg.Pursuers.Count,
		PursuerSpeed:     cfg.Pursuers.Speed,
		PursuerSprite:    Sprite{W: cfg.Pursuers.Size.Width, H: cfg.Pursuers.Size.Height},
		PursuersBounded:  cfg.Pursuers.Bounded,
		PursuerPositions: toVecs(cfg.Pursuers.Positions),

		PickupCount:     cfg.Pickups.Count,
		PickupSprite:    Sprite{W: cfg.Pickups.Size.Width, H: cfg.Pickups.Size.Height},
		PickupPositions: toVecs(cfg.Pickups.Positions),
	}
}

func toVecs(points []config.Point) []core.Vec {
	if len(points) == 0 {
		return nil
	}
	out := make([]core.Vec, len(points))
	for i, p := range points {
		out[i] = core.V(p.X, p.Y)
	}
	return out
}

// World owns every entity of a session and advances it one frame at a time.
type World struct {
	bounds   Bounds
	field    *Field
	rng      *rand.Rand
	avatar   Avatar
	pursuers []Pursuer
	pickups  []*Pickup // Active (unconsumed) pickups only
	total    int
	frame    uint64
	terminal Terminal
}

// NewWorld builds a session: the obstacle field, the avatar at its start,
// and pursuers and pickups placed clear of obstacles.
// Placement failures are configuration errors and are returned immediately.
func NewWorld(p Params, rng *rand.Rand) (*World, error) {
	field, err := NewField(p.Obstacles)
	if err != nil {
		return nil, err
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	pl := placer{rng: rng, field: field, bounds: p.Bounds, maxAttempts: attempts}

	w := &World{
		bounds: p.Bounds,
		field:  field,
		rng:    rng,
		avatar: Avatar{
			Body:  Body{Pos: p.AvatarStart, Sprite: p.AvatarSprite},
			Speed: p.AvatarSpeed,
		},
	}

	if _, err := pl.fixed(KindAvatar, p.AvatarSprite, p.AvatarStart); err != nil {
		return nil, err
	}
	if !core.WithinBounds(w.avatar.Box(), p.Bounds.W, p.Bounds.H) {
		return nil, fmt.Errorf("chase: avatar start (%g, %g) is outside the %gx%g world",
			p.AvatarStart.X, p.AvatarStart.Y, p.Bounds.W, p.Bounds.H)
	}

	pursuerPos, err := pl.spawn(KindPursuer, p.PursuerSprite, p.PursuerCount, p.PursuerPositions)
	if err != nil {
		return nil, err
	}
	for _, pos := range pursuerPos {
		w.pursuers = append(w.pursuers, Pursuer{
			Body:    Body{Pos: pos, Sprite: p.PursuerSprite},
			Speed:   p.PursuerSpeed,
			Bounded: p.PursuersBounded,
		})
	}

	pickupPos, err := pl.spawn(KindPickup, p.PickupSprite, p.PickupCount, p.PickupPositions)
	if err != nil {
		return nil, err
	}
	for _, pos := range pickupPos {
		w.pickups = append(w.pickups, NewPickup(pos, p.PickupSprite))
	}
	w.total = len(w.pickups)

	return w, nil
}

// Step advances the world by one frame in a fixed order:
// avatar moves, pursuers wander then chase, capture check, pickup
// consumption, win check. Once the session is won or lost, Step does nothing.
func (w *World) Step(in Input) Terminal {
	if w.terminal != Playing {
		return w.terminal
	}
	w.frame++

	// Each held direction is applied as its own move, so diagonals combine
	if in.Left {
		w.avatar.Move(core.V(-1, 0), w.field, w.bounds)
	}
	if in.Right {
		w.avatar.Move(core.V(1, 0), w.field, w.bounds)
	}
	if in.Up {
		w.avatar.Move(core.V(0, -1), w.field, w.bounds)
	}
	if in.Down {
		w.avatar.Move(core.V(0, 1), w.field, w.bounds)
	}

	// The chase step runs after the wander step and has the final say
	for i := range w.pursuers {
		w.pursuers[i].Wander(w.rng, w.field, w.bounds)
		w.pursuers[i].Chase(w.avatar.Pos, w.field, w.bounds)
	}

	// Capture is checked before consumption
	avatarBox := w.avatar.Box()
	for i := range w.pursuers {
		if core.Overlaps(w.pursuers[i].Box(), avatarBox) {
			w.terminal = Lost
			return w.terminal
		}
	}

	active := w.pickups[:0]
	for _, p := range w.pickups {
		if !p.CheckCollision(w.avatar.Pos, w.avatar.Sprite.W/2) {
			active = append(active, p)
		}
	}
	clear(w.pickups[len(active):])
	w.pickups = active

	if len(w.pickups) == 0 {
		w.terminal = Won
	}
	return w.terminal
}

// Terminal returns the current session outcome.
func (w *World) Terminal() Terminal {
	return w.terminal
}

// FrameNumber returns the number of frames processed so far.
func (w *World) FrameNumber() uint64 {
	return w.frame
}

// Avatar returns a copy of the avatar.
func (w *World) Avatar() Avatar {
	return w.avatar
}

// Pursuers returns a copy of the pursuers.
func (w *World) Pursuers() []Pursuer {
	out := make([]Pursuer, len(w.pursuers))
	copy(out, w.pursuers)
	return out
}

// Remaining returns the number of active pickups.
func (w *World) Remaining() int {
	return len(w.pickups)
}

// Collected returns the number of consumed pickups.
func (w *World) Collected() int {
	return w.total - len(w.pickups)
}

// Bounds returns the world size.
func (w *World) Bounds() Bounds {
	return w.bounds
}
