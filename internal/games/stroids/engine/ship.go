package engine

import (
	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
)

// HeadingOffset turns a stored rotation into the direction the artwork
// points: rotation 0 faces up the screen.
const HeadingOffset = -90.0

// Actions is the per-tick intent snapshot written by the input adapter.
// It is replaced wholesale before every Advance.
type Actions struct {
	RotateCW  bool
	RotateCCW bool
	Thrust    bool
	Fire      bool
	Blink     bool
}

const (
	bitRotateCW uint8 = 1 << iota
	bitRotateCCW
	bitThrust
	bitFire
	bitBlink
)

// Bits packs the actions into one byte for recording.
func (a Actions) Bits() uint8 {
	var b uint8
	if a.RotateCW {
		b |= bitRotateCW
	}
	if a.RotateCCW {
		b |= bitRotateCCW
	}
	if a.Thrust {
		b |= bitThrust
	}
	if a.Fire {
		b |= bitFire
	}
	if a.Blink {
		b |= bitBlink
	}
	return b
}

// ActionsFromBits is the inverse of Actions.Bits.
func ActionsFromBits(b uint8) Actions {
	return Actions{
		RotateCW:  b&bitRotateCW != 0,
		RotateCCW: b&bitRotateCCW != 0,
		Thrust:    b&bitThrust != 0,
		Fire:      b&bitFire != 0,
		Blink:     b&bitBlink != 0,
	}
}

// Ship is the player entity. It is created once per session and is never
// removed; death only clears Alive until the World revives it.
type Ship struct {
	Body
	Actions Actions
	Radius  float64
	Tinted  bool
	Alive   bool

	blink Cooldown
	fire  Cooldown

	cfg    config.ShipConfig
	bounds core.Vector
}

// NewShip creates a live ship at the center of the field.
func NewShip(cfg config.ShipConfig, bounds core.Vector, handle Handle) *Ship {
	s := &Ship{
		Body: Body{
			Diameter: cfg.Radius * 2,
			Handle:   handle,
		},
		Radius: cfg.Radius,
		Alive:  true,
		cfg:    cfg,
		bounds: bounds,
	}
	s.Reset()
	return s
}

// Heading returns the direction the ship faces, in degrees.
func (s *Ship) Heading() float64 {
	return s.Rotation + HeadingOffset
}

// ApplyActions applies every asserted intent for a step of dt seconds.
func (s *Ship) ApplyActions(dt float64) {
	if s.Actions.RotateCW {
		s.Rotation += s.cfg.RotationRate * dt
	}
	if s.Actions.RotateCCW {
		s.Rotation -= s.cfg.RotationRate * dt
	}
	if s.Actions.Thrust {
		s.Velocity = s.Velocity.Add(core.FromPolar(s.cfg.Thrust*dt, s.Heading()))
		if s.cfg.MaxSpeed > 0 {
			limit := core.Splat(s.cfg.MaxSpeed)
			s.Velocity = s.Velocity.Min(limit).Max(limit.Scale(-1))
		}
	}
	if s.Actions.Blink && s.blink.Ready() {
		s.Tinted = !s.Tinted
		s.blink.Reset(s.cfg.BlinkCooldown)
	}
}

// Advance integrates, wraps, applies actions and ticks both cooldowns.
func (s *Ship) Advance(dt float64) {
	s.Integrate(dt)
	s.WrapTo(s.bounds)
	s.ApplyActions(dt)
	s.blink.Tick(dt)
	s.fire.Tick(dt)
}

// FireReady reports whether a laser should be spawned this tick.
func (s *Ship) FireReady() bool {
	return s.fire.Ready() && s.Actions.Fire
}

// ResetFireCooldown starts the fire cooldown after a laser is spawned.
func (s *Ship) ResetFireCooldown() {
	s.fire.Reset(s.cfg.FireCooldown)
}

// LaserSpawnPoint is the nose of the ship: half the radius ahead of center
// along the current heading.
func (s *Ship) LaserSpawnPoint() core.Vector {
	return s.Position.Add(core.FromPolar(s.Radius/2, s.Heading()))
}

// Reset recenters the ship and stops it. Rotation, cooldowns, tint and the
// alive flag are left alone.
func (s *Ship) Reset() {
	s.Position = s.bounds.Scale(0.5)
	s.Velocity = core.Vector{}
}

// Kill flags the ship as destroyed.
func (s *Ship) Kill() {
	s.Alive = false
}

// Revive flags the ship as alive again.
func (s *Ship) Revive() {
	s.Alive = true
}

// Speed returns the magnitude of the ship's velocity.
func (s *Ship) Speed() float64 {
	return s.Velocity.Len()
}
