package stroids

import (
	"fmt"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
)

// Recording is everything needed to re-simulate a session: the world is
// rebuilt from GameID, Seed and Config, then fed one action byte per tick.
type Recording struct {
	GameID   string
	Seed     int64
	TickRate int
	Config   config.StroidsConfig
	Frames   []byte
}

// Recording returns the session recorded since the last Reset.
func (g *Game) Recording() Recording {
	return Recording{
		GameID:   g.id,
		Seed:     g.runtime.Seed,
		TickRate: g.runtime.TickRate,
		Config:   g.cfg,
		Frames:   append([]byte(nil), g.frames...),
	}
}

// Outcome is the final state reached by a replay.
type Outcome struct {
	Ticks    int
	Score    int64
	Level    int
	Alive    bool
	Cleared  int // FieldCleared transitions
	Deaths   int // ShipDestroyed transitions
	Snapshot engine.Snapshot
}

// Replay re-simulates a recording headlessly. The optional onStep callback
// sees every tick's result.
func Replay(rec Recording, onStep func(engine.StepResult)) (Outcome, error) {
	if rec.GameID != IDPolar && rec.GameID != IDClassic {
		return Outcome{}, fmt.Errorf("stroids: cannot replay game %q", rec.GameID)
	}

	g := NewWithConfig(rec.GameID, rec.Config)
	g.Reset(core.RuntimeConfig{TickRate: rec.TickRate, Seed: rec.Seed})
	if err := g.Err(); err != nil {
		return Outcome{}, fmt.Errorf("stroids: replay: %w", err)
	}

	var out Outcome
	dt := g.runtime.DeltaTime()
	for _, b := range rec.Frames {
		g.world.SetActions(engine.ActionsFromBits(b))
		res := g.world.Advance(dt)
		switch res.Transition {
		case engine.TransitionFieldCleared:
			out.Cleared++
		case engine.TransitionShipDestroyed:
			out.Deaths++
		}
		if onStep != nil {
			onStep(res)
		}
	}

	out.Ticks = len(rec.Frames)
	out.Score = g.world.Score()
	out.Level = g.world.Level()
	out.Alive = g.world.Ship().Alive
	out.Snapshot = g.world.Snapshot()
	return out, nil
}
