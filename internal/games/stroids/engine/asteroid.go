package engine

import (
	"math"

	"github.com/vovakirdan/stroids/internal/core"
)

// Asteroid is a drifting, spinning rock. Its diameter is both its collision
// size and its score value.
type Asteroid struct {
	Body
}

// Advance integrates position and rotation and wraps with its own diameter.
func (a *Asteroid) Advance(dt float64, bounds core.Vector) {
	a.Integrate(dt)
	a.WrapTo(bounds)
}

// Points is the score awarded for destroying the asteroid.
func (a Asteroid) Points() int64 {
	return int64(math.Round(a.Diameter))
}
