package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
)

// Transition is the wave/life state change decided at the end of a tick.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionFieldCleared
	TransitionShipDestroyed
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionFieldCleared:
		return "field_cleared"
	case TransitionShipDestroyed:
		return "ship_destroyed"
	default:
		return "unknown"
	}
}

// Destroyed records an asteroid removed by a laser and the points it paid.
type Destroyed struct {
	Asteroid Handle
	Laser    Handle
	Points   int64
}

// StepResult reports what happened during one Advance.
type StepResult struct {
	Tick       uint64
	Transition Transition
	Killed     bool // The ship died this tick
	Fired      []Handle
	Destroyed  []Destroyed
	Score      int64
	Level      int
	Alive      bool
}

// Option configures a World.
type Option func(*World)

// WithSpawnPolicy selects asteroid placement. The default is SpawnPolar.
func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(w *World) {
		w.policy = p
	}
}

// WithHandles replaces the render handle generator. The default draws
// random UUIDs; tests use a counter for reproducible handles.
func WithHandles(next func() Handle) Option {
	return func(w *World) {
		if next != nil {
			w.nextHandle = next
		}
	}
}

// World owns the ship, lasers and asteroids and advances them one tick at a
// time. It is not safe for concurrent use.
type World struct {
	cfg    config.StroidsConfig
	rng    Source
	policy SpawnPolicy
	bounds core.Vector

	nextHandle func() Handle

	ship      *Ship
	lasers    []Laser
	asteroids []Asteroid

	score int64
	level int
	tick  uint64
}

// NewWorld validates cfg and builds a world at level 1 with the first wave
// already spawned from rng.
func NewWorld(cfg config.StroidsConfig, rng Source, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: nil random source: %w", config.ErrInvalidConfig)
	}

	w := &World{
		cfg:        cfg,
		rng:        rng,
		bounds:     core.V(cfg.Field.Width, cfg.Field.Height),
		nextHandle: uuid.New,
		level:      1,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.ship = NewShip(cfg.Ship, w.bounds, w.nextHandle())
	w.spawnWave(cfg.Generator.WaveSize(w.level))
	return w, nil
}

// SetActions overwrites the ship's intents for the next Advance.
func (w *World) SetActions(a Actions) {
	w.ship.Actions = a
}

// Advance runs one simulation tick of dt seconds. Negative or non-finite dt
// is treated as zero.
func (w *World) Advance(dt float64) StepResult {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	w.tick++
	res := StepResult{Tick: w.tick}

	// Death from the previous tick is resolved first; a dead ship is frozen.
	wasDead := !w.ship.Alive
	if w.ship.Alive {
		w.ship.Advance(dt)
		if w.ship.FireReady() {
			l := SpawnLaser(w.ship.LaserSpawnPoint(), w.ship.Rotation, w.cfg.Laser, w.nextHandle())
			w.lasers = append(w.lasers, l)
			w.ship.ResetFireCooldown()
			res.Fired = append(res.Fired, l.Handle)
		}
	}

	for i := range w.lasers {
		w.lasers[i].Advance(dt, w.bounds)
	}
	for i := range w.asteroids {
		w.asteroids[i].Advance(dt, w.bounds)
	}

	hits := FindHits(w.lasers, w.asteroids)
	consumed := make([]bool, len(w.lasers))
	destroyed := make([]bool, len(w.asteroids))
	for _, h := range hits {
		a := w.asteroids[h.Asteroid]
		consumed[h.Laser] = true
		destroyed[h.Asteroid] = true
		w.score += a.Points()
		res.Destroyed = append(res.Destroyed, Destroyed{
			Asteroid: a.Handle,
			Laser:    w.lasers[h.Laser].Handle,
			Points:   a.Points(),
		})
	}

	if w.ship.Alive && ShipCollides(w.ship, w.asteroids, destroyed) {
		w.ship.Kill()
		res.Killed = true
	}

	w.sweep(consumed, destroyed)

	switch {
	case wasDead:
		w.ship.Reset()
		w.ship.Revive()
		w.level = 1
		w.score = 0
		w.asteroids = w.asteroids[:0]
		w.spawnWave(w.cfg.Generator.WaveSize(w.level))
		res.Transition = TransitionShipDestroyed
	case !w.ship.Alive:
		// the kill is resolved on the next tick
	case len(w.asteroids) == 0:
		w.ship.Reset()
		w.level++
		w.spawnWave(w.cfg.Generator.WaveSize(w.level))
		res.Transition = TransitionFieldCleared
	}

	res.Score = w.score
	res.Level = w.level
	res.Alive = w.ship.Alive
	return res
}

func (w *World) sweep(consumed, destroyed []bool) {
	lasers := w.lasers[:0]
	for i, l := range w.lasers {
		if consumed[i] || l.Expired() {
			continue
		}
		lasers = append(lasers, l)
	}
	clear(w.lasers[len(lasers):])
	w.lasers = lasers

	roids := w.asteroids[:0]
	for i, a := range w.asteroids {
		if destroyed[i] {
			continue
		}
		roids = append(roids, a)
	}
	clear(w.asteroids[len(roids):])
	w.asteroids = roids
}

func (w *World) spawnWave(n int) {
	for range n {
		w.asteroids = append(w.asteroids, SpawnAsteroid(w.cfg.Roid, w.cfg.Field, w.rng, w.policy, w.nextHandle()))
	}
}

// Ship returns a copy of the ship.
func (w *World) Ship() Ship {
	return *w.ship
}

// Lasers returns a copy of the live lasers in spawn order.
func (w *World) Lasers() []Laser {
	return append([]Laser(nil), w.lasers...)
}

// Asteroids returns a copy of the asteroids in spawn order.
func (w *World) Asteroids() []Asteroid {
	return append([]Asteroid(nil), w.asteroids...)
}

// Score returns the current score.
func (w *World) Score() int64 {
	return w.score
}

// Level returns the current level, starting at 1.
func (w *World) Level() int {
	return w.level
}

// Tick returns the number of completed Advance calls.
func (w *World) Tick() uint64 {
	return w.tick
}

// Bounds returns the field size.
func (w *World) Bounds() core.Vector {
	return w.bounds
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.StroidsConfig {
	return w.cfg
}

// Snapshot copies the render-facing state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  w.tick,
		Score: w.score,
		Level: w.level,
		Field: w.bounds,
		Ship: ShipView{
			EntityView: w.ship.View(),
			Radius:     w.ship.Radius,
			Tinted:     w.ship.Tinted,
			Alive:      w.ship.Alive,
		},
		Lasers:    make([]EntityView, 0, len(w.lasers)),
		Asteroids: make([]EntityView, 0, len(w.asteroids)),
	}
	for _, l := range w.lasers {
		s.Lasers = append(s.Lasers, l.View())
	}
	for _, a := range w.asteroids {
		s.Asteroids = append(s.Asteroids, a.View())
	}
	return s
}
