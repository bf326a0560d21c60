package stroids

import "github.com/vovakirdan/stroids/internal/core"

// Autopilot timing, in ticks.
const (
	autopilotCycle  = 240
	autopilotThrust = 20
)

// Autopilot returns a scripted input for the given tick: the ship spins
// clockwise and fires continuously, with a short burst of thrust at the
// start of every cycle. It depends only on the tick, so a session driven by
// it is fully determined by the seed.
func Autopilot(tick int) core.InputFrame {
	f := core.FrameOf(core.ActionRotateCW, core.ActionFire)
	if tick%autopilotCycle < autopilotThrust {
		f.Set(core.ActionThrust)
	}
	return f
}
