package chase

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/maze-chase/internal/core"
)

var (
	// ErrNoFreeSpace means rejection sampling gave up before finding a spot
	// that clears every obstacle.
	ErrNoFreeSpace = errors.New("chase: no free space to place entity")

	// ErrBlocked means a fixed start position overlaps an obstacle.
	ErrBlocked = errors.New("chase: start position overlaps an obstacle")
)

// placer spawns entities at random integer positions clear of obstacles.
type placer struct {
	rng         *rand.Rand
	field       *Field
	bounds      Bounds
	maxAttempts int
}

// place draws centers in [size/2, world-size/2] on each axis until the
// sprite's box clears every obstacle, giving up after maxAttempts draws.
func (pl placer) place(kind Kind, sprite Sprite) (core.Vec, error) {
	loX, hiX := int(sprite.W)/2, int(pl.bounds.W)-int(sprite.W)/2
	loY, hiY := int(sprite.H)/2, int(pl.bounds.H)-int(sprite.H)/2
	if hiX < loX || hiY < loY {
		return core.Vec{}, fmt.Errorf("%w: %s sprite %gx%g is larger than the world",
			ErrNoFreeSpace, kind, sprite.W, sprite.H)
	}

	body := Body{Sprite: sprite}
	for attempt := 0; attempt < pl.maxAttempts; attempt++ {
		p := core.V(
			float64(loX+pl.rng.Intn(hiX-loX+1)),
			float64(loY+pl.rng.Intn(hiY-loY+1)),
		)
		if !pl.field.Blocks(body.boxAt(p)) {
			return p, nil
		}
	}

	return core.Vec{}, fmt.Errorf("%w: %s after %d attempts", ErrNoFreeSpace, kind, pl.maxAttempts)
}

// fixed checks an explicitly configured position.
func (pl placer) fixed(kind Kind, sprite Sprite, p core.Vec) (core.Vec, error) {
	body := Body{Pos: p, Sprite: sprite}
	if pl.field.Blocks(body.Box()) {
		return core.Vec{}, fmt.Errorf("%w: %s at (%g, %g)", ErrBlocked, kind, p.X, p.Y)
	}
	return p, nil
}

// spawn returns positions for count entities, or the fixed positions when given.
func (pl placer) spawn(kind Kind, sprite Sprite, count int, positions []core.Vec) ([]core.Vec, error) {
	if len(positions) > 0 {
		out := make([]core.Vec, 0, len(positions))
		for _, p := range positions {
			v, err := pl.fixed(kind, sprite, p)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	out := make([]core.Vec, 0, count)
	for i := 0; i < count; i++ {
		v, err := pl.place(kind, sprite)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
