// Package engine is the stroids simulation: kinematic bodies on a toroidal
// field, cooldown-gated ship actions, circular collision and the wave/level
// state machine. It is single-threaded and deterministic for a given random
// source, dt sequence and input sequence. It never renders, reads input
// devices or logs.
package engine

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/stroids/internal/core"
)

// FrameRate is the rate velocities are expressed against. A velocity of 1
// moves one world unit per frame at 60 Hz, so integration scales by dt*60.
const FrameRate = 60.0

// Handle correlates an entity with its on-screen representation.
// The simulation carries it around and never looks inside.
type Handle = uuid.UUID

// Body is the motion state shared by the ship, lasers and asteroids.
type Body struct {
	Position           core.Vector
	Velocity           core.Vector // Units per frame at 60 Hz
	Rotation           float64     // Degrees, unbounded
	RotationalVelocity float64     // Degrees per second
	Diameter           float64     // Collision size and wrap margin, always > 0
	Handle             Handle
}

// Integrate advances position and rotation by dt seconds.
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt * FrameRate))
	b.Rotation += b.RotationalVelocity * dt
}

// WrapTo wraps the position across a field of the given size, using the
// body's own diameter as the margin.
func (b *Body) WrapTo(bounds core.Vector) {
	b.Position = core.Wrap(b.Position, b.Diameter, bounds)
}

// View returns the render-facing part of the body.
func (b Body) View() EntityView {
	return EntityView{
		Handle:   b.Handle,
		Position: b.Position,
		Rotation: b.Rotation,
		Diameter: b.Diameter,
	}
}
