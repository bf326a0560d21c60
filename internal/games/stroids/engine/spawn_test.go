package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
)

func TestSpawnDrawOrder(t *testing.T) {
	cfg := config.DefaultStroidsConfig()
	src := &seqSource{vals: []float64{0}}
	a := SpawnAsteroid(cfg.Roid, cfg.Field, src, SpawnPolar, Handle{})

	if !near(a.Velocity.X, cfg.Roid.MinSpeed) || !near(a.Velocity.Y, 0) {
		t.Errorf("Velocity = %v, want (%v, 0)", a.Velocity, cfg.Roid.MinSpeed)
	}
	if a.RotationalVelocity != -cfg.Roid.MaxRotation {
		t.Errorf("RotationalVelocity = %v, want %v", a.RotationalVelocity, -cfg.Roid.MaxRotation)
	}
	if a.Diameter != 50*cfg.Roid.MinScale {
		t.Errorf("Diameter = %v, want %v", a.Diameter, 50*cfg.Roid.MinScale)
	}
	want := core.V(512+cfg.Roid.MinSpawnMag, 384)
	if !near(a.Position.X, want.X) || !near(a.Position.Y, want.Y) {
		t.Errorf("Position = %v, want %v", a.Position, want)
	}
	if src.i != 6 {
		t.Errorf("polar spawn used %d draws, want 6", src.i)
	}
}

func TestSpawnPolarRanges(t *testing.T) {
	cfg := config.DefaultStroidsConfig()
	cfg.Roid.SpriteWidth = 80
	rng := rand.New(rand.NewSource(99))
	center := core.V(cfg.Field.Width/2, cfg.Field.Height/2)

	for i := 0; i < 1000; i++ {
		a := SpawnAsteroid(cfg.Roid, cfg.Field, rng, SpawnPolar, Handle{})

		dist := a.Position.Sub(center).Len()
		if dist < cfg.Roid.MinSpawnMag-1e-9 || dist > cfg.Roid.MaxSpawnMag+1e-9 {
			t.Fatalf("spawn distance %v outside [%v, %v]", dist, cfg.Roid.MinSpawnMag, cfg.Roid.MaxSpawnMag)
		}
		speed := a.Velocity.Len()
		if speed < cfg.Roid.MinSpeed-1e-9 || speed > cfg.Roid.MaxSpeed+1e-9 {
			t.Fatalf("speed %v outside range", speed)
		}
		if math.Abs(a.RotationalVelocity) > cfg.Roid.MaxRotation {
			t.Fatalf("spin %v outside range", a.RotationalVelocity)
		}
		// the larger sprite side sets the diameter
		if a.Diameter < 80*cfg.Roid.MinScale || a.Diameter > 80*cfg.Roid.MaxScale {
			t.Fatalf("diameter %v outside range", a.Diameter)
		}
	}
}

func TestSpawnUniformAvoidsCenter(t *testing.T) {
	cfg := config.DefaultStroidsConfig()
	rng := rand.New(rand.NewSource(5))
	center := core.V(cfg.Field.Width/2, cfg.Field.Height/2)

	for i := 0; i < 1000; i++ {
		a := SpawnAsteroid(cfg.Roid, cfg.Field, rng, SpawnUniform, Handle{})
		if core.WithinRadius(a.Position, center, cfg.Roid.MinSpawnMag) {
			t.Fatalf("uniform spawn %v within %v of center", a.Position, cfg.Roid.MinSpawnMag)
		}
		if a.Position.X < 0 || a.Position.X >= cfg.Field.Width || a.Position.Y < 0 || a.Position.Y >= cfg.Field.Height {
			t.Fatalf("uniform spawn %v outside field", a.Position)
		}
	}
}

func TestSpawnUniformFallsBackToPolar(t *testing.T) {
	cfg := config.DefaultStroidsConfig()
	cfg.Field = config.FieldConfig{Width: 100, Height: 100}
	cfg.Roid.MinSpawnMag = 1000
	cfg.Roid.MaxSpawnMag = 1000
	rng := rand.New(rand.NewSource(1))

	a := SpawnAsteroid(cfg.Roid, cfg.Field, rng, SpawnUniform, Handle{})
	dist := a.Position.Sub(core.V(50, 50)).Len()
	if !near(dist, 1000) {
		t.Errorf("fallback distance = %v, want 1000", dist)
	}
}

func TestSpawnPolicyString(t *testing.T) {
	if SpawnPolar.String() != "polar" || SpawnUniform.String() != "uniform" {
		t.Errorf("unexpected names %q %q", SpawnPolar, SpawnUniform)
	}
}
