package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// FieldError names the offending configuration key.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidConfig).
func (e *FieldError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks every range and sign constraint. All problems are
// reported together via errors.Join.
func (c StroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, &FieldError{Field: field, Reason: reason})
		}
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"ship.radius", c.Ship.Radius},
		{"ship.rotation_rate", c.Ship.RotationRate},
		{"ship.thrust", c.Ship.Thrust},
		{"ship.max_speed", c.Ship.MaxSpeed},
		{"ship.fire_cooldown", c.Ship.FireCooldown},
		{"ship.blink_cooldown", c.Ship.BlinkCooldown},
		{"laser.speed", c.Laser.Speed},
		{"laser.lifetime", c.Laser.Lifetime},
		{"laser.diameter", c.Laser.Diameter},
		{"roid.min_speed", c.Roid.MinSpeed},
		{"roid.max_speed", c.Roid.MaxSpeed},
		{"roid.max_rot", c.Roid.MaxRotation},
		{"roid.min_scale", c.Roid.MinScale},
		{"roid.max_scale", c.Roid.MaxScale},
		{"roid.min_spawn_mag", c.Roid.MinSpawnMag},
		{"roid.max_spawn_mag", c.Roid.MaxSpawnMag},
		{"roid.sprite_width", c.Roid.SpriteWidth},
		{"roid.sprite_height", c.Roid.SpriteHeight},
	} {
		check(!math.IsInf(f.v, 0) && !math.IsNaN(f.v), f.name, "must be finite")
	}

	check(c.Field.Width > 0, "field.width", "must be positive")
	check(c.Field.Height > 0, "field.height", "must be positive")

	check(c.Ship.Radius > 0, "ship.radius", "must be positive")
	check(c.Ship.RotationRate >= 0, "ship.rotation_rate", "must not be negative")
	check(c.Ship.Thrust >= 0, "ship.thrust", "must not be negative")
	check(c.Ship.MaxSpeed >= 0, "ship.max_speed", "must not be negative")
	check(c.Ship.FireCooldown >= 0, "ship.fire_cooldown", "must not be negative")
	check(c.Ship.BlinkCooldown >= 0, "ship.blink_cooldown", "must not be negative")

	check(c.Laser.Speed >= 0, "laser.speed", "must not be negative")
	check(c.Laser.Lifetime > 0, "laser.lifetime", "must be positive")
	check(c.Laser.Diameter > 0, "laser.diameter", "must be positive")

	check(c.Roid.MinSpeed >= 0, "roid.min_speed", "must not be negative")
	check(c.Roid.MinSpeed <= c.Roid.MaxSpeed, "roid.min_speed", "must not exceed roid.max_speed")
	check(c.Roid.MaxRotation >= 0, "roid.max_rot", "must not be negative")
	check(c.Roid.MinScale > 0, "roid.min_scale", "must be positive")
	check(c.Roid.MinScale <= c.Roid.MaxScale, "roid.min_scale", "must not exceed roid.max_scale")
	check(c.Roid.SpriteWidth > 0, "roid.sprite_width", "must be positive")
	check(c.Roid.SpriteHeight > 0, "roid.sprite_height", "must be positive")
	check(c.Roid.MinSpawnMag >= 0, "roid.min_spawn_mag", "must not be negative")
	check(c.Roid.MinSpawnMag <= c.Roid.MaxSpawnMag, "roid.min_spawn_mag", "must not exceed roid.max_spawn_mag")

	check(c.Generator.NumAsteroids >= 0, "generator.num_of_asteroids", "must not be negative")

	return errors.Join(errs...)
}
