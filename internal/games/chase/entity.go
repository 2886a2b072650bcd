package chase

import (
	"math/rand"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Kind tags the entity variants of the game.
type Kind int

const (
	KindAvatar Kind = iota
	KindPursuer
	KindPickup
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindAvatar:
		return "avatar"
	case KindPursuer:
		return "pursuer"
	case KindPickup:
		return "pickup"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Sprite is the fixed size an entity's bounding box is derived from.
type Sprite struct {
	W, H float64
}

// Bounds is the world rectangle [0, W) x [0, H).
type Bounds struct {
	W, H float64
}

// Body is a positioned entity with a box derived from its sprite.
type Body struct {
	Pos    core.Vec
	Sprite Sprite
}

// Box returns the bounding box at the current position.
func (b Body) Box() core.Box {
	return b.boxAt(b.Pos)
}

func (b Body) boxAt(p core.Vec) core.Box {
	return core.NewBox(p, b.Sprite.W, b.Sprite.H)
}

// stepTo moves the body to the candidate position when its box clears every
// obstacle and, if bounded, its center stays inside the world. Rejected moves
// leave the body untouched. Reports whether the body moved.
func (b *Body) stepTo(candidate core.Vec, field *Field, bounds Bounds, bounded bool) bool {
	box := b.boxAt(candidate)
	if field.Blocks(box) {
		return false
	}
	if bounded && !core.WithinBounds(box, bounds.W, bounds.H) {
		return false
	}
	b.Pos = candidate
	return true
}

// Avatar is the player-controlled entity.
type Avatar struct {
	Body
	Speed float64
}

// Move attempts a directed step of dir*speed, where dir components are in {-1, 0, 1}.
// The avatar is always bounds-checked.
func (a *Avatar) Move(dir core.Vec, field *Field, bounds Bounds) bool {
	return a.stepTo(a.Pos.Add(dir.Scale(a.Speed)), field, bounds, true)
}

// Pursuer is a mobile threat that wanders and chases the avatar.
type Pursuer struct {
	Body
	Speed   float64
	Bounded bool // Apply the world-bounds check in addition to obstacles
}

// Wander takes one random diagonal step: each axis moves by ±speed,
// chosen independently and uniformly.
func (p *Pursuer) Wander(rng *rand.Rand, field *Field, bounds Bounds) bool {
	dir := core.V(randomSign(rng), randomSign(rng))
	return p.stepTo(p.Pos.Add(dir.Scale(p.Speed)), field, bounds, p.Bounded)
}

// Chase takes one greedy step straight toward target.
// There is no pathfinding: a wall in the way simply stalls the pursuer.
// A pursuer sitting exactly on the target does not move, and the final
// step stops on the target instead of overshooting it.
func (p *Pursuer) Chase(target core.Vec, field *Field, bounds Bounds) bool {
	delta := target.Sub(p.Pos)
	dir, ok := delta.Normalize()
	if !ok {
		return false
	}
	return p.stepTo(p.Pos.Add(dir.Scale(min(p.Speed, delta.Len()))), field, bounds, p.Bounded)
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
