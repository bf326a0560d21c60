package engine

import (
	"math"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
)

// Laser is a short-lived projectile. It dies when its life runs out or when
// it strikes an asteroid, whichever comes first.
type Laser struct {
	Body
	Life float64 // Seconds remaining, never negative
}

// SpawnLaser creates a laser at origin travelling along the forward heading
// of a ship with the given rotation.
func SpawnLaser(origin core.Vector, rotation float64, cfg config.LaserConfig, handle Handle) Laser {
	return Laser{
		Body: Body{
			Position: origin,
			Velocity: core.FromPolar(cfg.Speed, rotation+HeadingOffset),
			Rotation: rotation,
			Diameter: cfg.Diameter,
			Handle:   handle,
		},
		Life: cfg.Lifetime,
	}
}

// Advance integrates, wraps and burns dt seconds of life.
func (l *Laser) Advance(dt float64, bounds core.Vector) {
	l.Integrate(dt)
	l.WrapTo(bounds)
	if l.Life > 0 {
		l.Life = math.Max(0, l.Life-dt)
	}
}

// Expired reports whether the laser has no life left.
func (l Laser) Expired() bool {
	return l.Life <= 0
}
