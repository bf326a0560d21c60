package engine

import "math"

// Cooldown is a countdown gating a repeatable action.
// Remaining time never goes below zero.
type Cooldown struct {
	remaining float64
}

// Tick counts down by dt, flooring at zero. Negative dt is ignored.
func (c *Cooldown) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	c.remaining = math.Max(0, c.remaining-dt)
}

// Ready reports whether the countdown has reached exactly zero.
func (c Cooldown) Ready() bool {
	return c.remaining == 0
}

// Reset restarts the countdown at d seconds.
func (c *Cooldown) Reset(d float64) {
	c.remaining = math.Max(0, d)
}

// Remaining returns the time left in seconds.
func (c Cooldown) Remaining() float64 {
	return c.remaining
}
