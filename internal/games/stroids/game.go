// Package stroids adapts the simulation engine to the platform game interface:
// it maps platform actions to ship intents, drives the fixed tick, renders the
// world onto a character screen and records every tick for replay.
package stroids

import (
	"math/rand"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
	"github.com/vovakirdan/stroids/internal/registry"
)

// Registered game IDs.
const (
	IDPolar   = "stroids"
	IDClassic = "stroids_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration selected by SetConfigPath and applies
// the preset selected by SetDifficultyPreset.
func LoadConfig() (config.StroidsConfig, error) {
	cfg, err := config.LoadStroids(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyStroidsPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game implements registry.Game on top of engine.World.
type Game struct {
	id     string
	title  string
	policy engine.SpawnPolicy

	cfg     config.StroidsConfig
	fixed   bool // cfg was supplied by the caller and is never reloaded
	runtime core.RuntimeConfig
	world   *engine.World
	err     error

	paused bool
	last   engine.StepResult
	frames []byte
}

// New creates a game using polar asteroid placement.
func New() *Game {
	return &Game{id: IDPolar, title: "Stroids", policy: engine.SpawnPolar}
}

// NewClassic creates a game using rejection-sampled asteroid placement.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Stroids (Classic Spawn)", policy: engine.SpawnUniform}
}

// NewWithConfig creates a game for the given ID with a fixed configuration,
// bypassing the loader. Replay uses it to rebuild a recorded session.
func NewWithConfig(id string, cfg config.StroidsConfig) *Game {
	g := New()
	if id == IDClassic {
		g = NewClassic()
	}
	g.cfg = cfg
	g.fixed = true
	return g
}

func init() {
	registry.Register(IDPolar, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Description explains how the variant places asteroids.
func (g *Game) Description() string {
	switch g.policy {
	case engine.SpawnUniform:
		return "Asteroids appear anywhere outside a safe zone around the ship"
	default:
		return "Asteroids appear in a ring around the ship"
	}
}

// Reset loads configuration and builds a new world seeded from cfg.Seed.
// A configuration error leaves the game without a world; Err reports it and
// Render shows it.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.frames = g.frames[:0]
	g.last = engine.StepResult{}

	if !g.fixed {
		cfg, err := LoadConfig()
		if err != nil {
			g.world, g.err = nil, err
			return
		}
		g.cfg = cfg
	}

	g.world, g.err = engine.NewWorld(g.cfg, rand.New(rand.NewSource(rc.Seed)), engine.WithSpawnPolicy(g.policy))
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances one fixed tick. Pause toggles on the Pause action and holds
// the world still without recording a frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	a := ActionsFromFrame(in)
	g.world.SetActions(a)
	g.last = g.world.Advance(g.runtime.DeltaTime())
	g.frames = append(g.frames, a.Bits())

	return core.StepResult{State: g.State()}
}

// ActionsFromFrame maps platform actions to ship intents.
func ActionsFromFrame(in core.InputFrame) engine.Actions {
	return engine.Actions{
		RotateCW:  in.Has(core.ActionRotateCW),
		RotateCCW: in.Has(core.ActionRotateCCW),
		Thrust:    in.Has(core.ActionThrust),
		Fire:      in.Has(core.ActionFire),
		Blink:     in.Has(core.ActionBlink),
	}
}

// LastStep returns the engine result of the most recent advanced tick.
func (g *Game) LastStep() engine.StepResult {
	return g.last
}

// Snapshot returns the world state, or a zero snapshot if there is no world.
func (g *Game) Snapshot() engine.Snapshot {
	if g.world == nil {
		return engine.Snapshot{}
	}
	return g.world.Snapshot()
}

// Config returns the configuration the current world was built with.
func (g *Game) Config() config.StroidsConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Level: 1, Paused: g.paused}
	}
	return core.GameState{
		Score:  int(g.world.Score()),
		Level:  g.world.Level(),
		Alive:  g.world.Ship().Alive,
		Paused: g.paused,
	}
}
