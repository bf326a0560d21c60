package engine

import (
	"math"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
)

// Source supplies uniform draws in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SpawnPolicy selects how asteroids are placed on the field.
type SpawnPolicy int

const (
	// SpawnPolar places asteroids at a random angle and distance from the
	// field center. Asteroids can never land on a freshly reset ship.
	SpawnPolar SpawnPolicy = iota
	// SpawnUniform picks any point on the field and rejects points that are
	// too close to the center.
	SpawnUniform
)

// maxUniformAttempts bounds rejection sampling before falling back to polar.
const maxUniformAttempts = 64

func (p SpawnPolicy) String() string {
	switch p {
	case SpawnPolar:
		return "polar"
	case SpawnUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// SpawnAsteroid draws a new asteroid from the configured ranges. The draw
// order is fixed (speed, heading, spin, scale, placement) so that a seeded
// source always produces the same wave.
func SpawnAsteroid(cfg config.RoidConfig, field config.FieldConfig, src Source, policy SpawnPolicy, handle Handle) Asteroid {
	speed := uniform(src, cfg.MinSpeed, cfg.MaxSpeed)
	heading := uniform(src, 0, 360)
	spin := uniform(src, -cfg.MaxRotation, cfg.MaxRotation)
	scale := uniform(src, cfg.MinScale, cfg.MaxScale)

	bounds := core.V(field.Width, field.Height)
	var pos core.Vector
	switch policy {
	case SpawnUniform:
		pos = uniformPlacement(cfg, bounds, src)
	default:
		pos = polarPlacement(cfg, bounds, src)
	}

	return Asteroid{Body: Body{
		Position:           pos,
		Velocity:           core.FromPolar(speed, heading),
		RotationalVelocity: spin,
		Diameter:           math.Max(cfg.SpriteWidth, cfg.SpriteHeight) * scale,
		Handle:             handle,
	}}
}

func polarPlacement(cfg config.RoidConfig, bounds core.Vector, src Source) core.Vector {
	mag := uniform(src, cfg.MinSpawnMag, cfg.MaxSpawnMag)
	angle := uniform(src, 0, 360)
	return bounds.Scale(0.5).Add(core.FromPolar(mag, angle))
}

func uniformPlacement(cfg config.RoidConfig, bounds core.Vector, src Source) core.Vector {
	center := bounds.Scale(0.5)
	for range maxUniformAttempts {
		p := core.V(uniform(src, 0, bounds.X), uniform(src, 0, bounds.Y))
		if !core.WithinRadius(p, center, cfg.MinSpawnMag) {
			return p
		}
	}
	return polarPlacement(cfg, bounds, src)
}
