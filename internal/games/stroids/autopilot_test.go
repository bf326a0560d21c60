package stroids

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
)

func TestAutopilotSchedule(t *testing.T) {
	if !Autopilot(0).Has(core.ActionThrust) {
		t.Error("autopilot should thrust at the start of a cycle")
	}
	if Autopilot(autopilotThrust).Has(core.ActionThrust) {
		t.Error("autopilot should stop thrusting after the burst")
	}
	for _, tick := range []int{0, 1, 100, autopilotCycle + 5} {
		a := ActionsFromFrame(Autopilot(tick))
		if !a.RotateCW || !a.Fire || a.RotateCCW || a.Blink {
			t.Errorf("tick %d: unexpected actions %+v", tick, a)
		}
	}
}

func TestAutopilotSessionIsReplayable(t *testing.T) {
	g := newTestGame(t, IDPolar, 5)
	for i := 0; i < 900; i++ {
		g.Step(Autopilot(i))
	}

	out, err := Replay(g.Recording(), nil)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if out.Ticks != 900 {
		t.Errorf("ticks = %d, want 900", out.Ticks)
	}
	if diff := cmp.Diff(g.Snapshot(), out.Snapshot, cmpopts.IgnoreFields(engine.EntityView{}, "Handle")); diff != "" {
		t.Errorf("replay diverged from the autopilot session (-live +replay):\n%s", diff)
	}
}
