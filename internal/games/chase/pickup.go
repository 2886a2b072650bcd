package chase

import "github.com/vovakirdan/maze-chase/internal/core"

// Pickup is a static collectible.
type Pickup struct {
	Body
	consumed bool
}

// NewPickup creates an unconsumed pickup centered on pos.
func NewPickup(pos core.Vec, sprite Sprite) *Pickup {
	return &Pickup{Body: Body{Pos: pos, Sprite: sprite}}
}

// CheckCollision consumes the pickup when the avatar center is closer than
// the sum of both half-widths. This circle test is looser than box overlap.
// Consumption is permanent; repeated calls keep returning true.
func (p *Pickup) CheckCollision(avatarPos core.Vec, avatarHalfWidth float64) bool {
	if p.consumed {
		return true
	}
	if core.Distance(avatarPos, p.Pos) < avatarHalfWidth+p.Sprite.W/2 {
		p.consumed = true
	}
	return p.consumed
}

// Consumed reports whether the pickup has been collected.
func (p *Pickup) Consumed() bool {
	return p.consumed
}
