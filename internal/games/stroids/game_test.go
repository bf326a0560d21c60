package stroids

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
	"github.com/vovakirdan/stroids/internal/registry"
)

func runtimeFor(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, id string, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(id, config.DefaultStroidsConfig())
	g.Reset(runtimeFor(seed))
	if err := g.Err(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func scriptedFrame(i int) core.InputFrame {
	f := core.NewInputFrame()
	if i%240 < 120 {
		f.Set(core.ActionRotateCW)
	} else {
		f.Set(core.ActionRotateCCW)
	}
	if i%100 < 15 {
		f.Set(core.ActionThrust)
	}
	if i%4 == 0 {
		f.Set(core.ActionFire)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDPolar, IDClassic} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestStepMapsActions(t *testing.T) {
	g := newTestGame(t, IDPolar, 1)
	g.Step(core.FrameOf(core.ActionFire, core.ActionRotateCW))

	if len(g.LastStep().Fired) != 1 {
		t.Errorf("Fired = %d, want 1", len(g.LastStep().Fired))
	}
	if g.Snapshot().Ship.Rotation <= 0 {
		t.Errorf("ship did not rotate clockwise: %v", g.Snapshot().Ship.Rotation)
	}
	want := engine.Actions{RotateCW: true, Fire: true}
	if got := g.Recording().Frames; len(got) != 1 || got[0] != want.Bits() {
		t.Errorf("recorded frames = %v, want [%d]", got, want.Bits())
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, IDPolar, 1)
	g.Step(core.NewInputFrame())
	before := g.Snapshot()

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.FrameOf(core.ActionThrust))
	}
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("paused world changed:\n%s", diff)
	}
	if n := len(g.Recording().Frames); n != 1 {
		t.Errorf("paused ticks were recorded: %d frames", n)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, IDClassic, 4242)
	g2 := newTestGame(t, IDClassic, 4242)

	for i := 0; i < 900; i++ {
		g1.Step(scriptedFrame(i))
		g2.Step(scriptedFrame(i))
	}

	if g1.State() != g2.State() {
		t.Errorf("state mismatch: %+v vs %+v", g1.State(), g2.State())
	}
	opt := cmpopts.IgnoreFields(engine.EntityView{}, "Handle")
	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot(), opt); diff != "" {
		t.Errorf("snapshots differ:\n%s", diff)
	}
}

func TestReplayMatchesLiveSession(t *testing.T) {
	for _, id := range []string{IDPolar, IDClassic} {
		t.Run(id, func(t *testing.T) {
			g := newTestGame(t, id, 99)
			for i := 0; i < 1500; i++ {
				g.Step(scriptedFrame(i))
			}

			var steps int
			out, err := Replay(g.Recording(), func(engine.StepResult) { steps++ })
			if err != nil {
				t.Fatalf("Replay: %v", err)
			}
			if steps != 1500 || out.Ticks != 1500 {
				t.Errorf("replayed %d steps, %d ticks", steps, out.Ticks)
			}
			if out.Score != int64(g.State().Score) || out.Level != g.State().Level {
				t.Errorf("replay reached score %d level %d, live %d/%d",
					out.Score, out.Level, g.State().Score, g.State().Level)
			}
			opt := cmpopts.IgnoreFields(engine.EntityView{}, "Handle")
			if diff := cmp.Diff(g.Snapshot(), out.Snapshot, opt); diff != "" {
				t.Errorf("replay diverged:\n%s", diff)
			}
		})
	}
}

func TestReplayUnknownGame(t *testing.T) {
	_, err := Replay(Recording{GameID: "snake"}, nil)
	if err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestReplayInvalidConfig(t *testing.T) {
	cfg := config.DefaultStroidsConfig()
	cfg.Field.Width = 0
	_, err := Replay(Recording{GameID: IDPolar, TickRate: 60, Config: cfg}, nil)
	if err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestRenderHUDAndShip(t *testing.T) {
	g := newTestGame(t, IDPolar, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Targets Remaining: 4  Score: 0  Level: 1") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	// field center projects to column 40, row 1 + 11
	if got := screen.Get(40, 12); got != '▲' {
		t.Errorf("ship glyph = %q, want ▲", got)
	}
	if !strings.ContainsRune(screen.String(), AsteroidChar) {
		t.Error("no asteroids drawn")
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, IDPolar, 1)
	g.Step(core.FrameOf(core.ActionPause))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause message not drawn")
	}
}

func TestRenderTintedShip(t *testing.T) {
	g := newTestGame(t, IDPolar, 1)
	g.Step(core.FrameOf(core.ActionBlink))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if c := screen.GetCell(40, 12); c.Color != core.ColorBrightRed {
		t.Errorf("tinted ship color = %v, want bright-red", c.Color)
	}
}

func TestShipGlyph(t *testing.T) {
	cases := map[float64]rune{
		0:    '▲',
		90:   '▶',
		180:  '▼',
		-90:  '◀',
		359:  '▲',
		765:  '◥',
		-405: '◤',
	}
	for rot, want := range cases {
		if got := ShipGlyph(rot); got != want {
			t.Errorf("ShipGlyph(%v) = %q, want %q", rot, got, want)
		}
	}
}

func TestConfigErrorIsReported(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())
	if g.Err() == nil {
		t.Fatal("expected a config error")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "CONFIG ERROR") {
		t.Error("config error not rendered")
	}
	// stepping without a world is a no-op
	g.Step(core.FrameOf(core.ActionFire))
}
