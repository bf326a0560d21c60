// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for stroids.
package config

// StroidsConfig contains all tuning for one stroids session. It is loaded
// once, validated, and then passed by value into the simulation.
type StroidsConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Ship      ShipConfig      `yaml:"ship"`
	Laser     LaserConfig     `yaml:"laser"`
	Roid      RoidConfig      `yaml:"roid"`
	Generator GeneratorConfig `yaml:"generator"`
}

// FieldConfig defines the size of the toroidal play field in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines handling for the player ship.
// Velocities are in units per frame at 60 Hz; rates are per second.
type ShipConfig struct {
	Radius        float64 `yaml:"radius"`         // Collision radius
	RotationRate  float64 `yaml:"rotation_rate"`  // Degrees per second
	Thrust        float64 `yaml:"thrust"`         // Velocity gained per second of thrust
	MaxSpeed      float64 `yaml:"max_speed"`      // Per-axis speed cap, 0 = uncapped
	FireCooldown  float64 `yaml:"fire_cooldown"`  // Seconds between lasers
	BlinkCooldown float64 `yaml:"blink_cooldown"` // Seconds between tint toggles
}

// LaserConfig defines projectile parameters.
type LaserConfig struct {
	Speed    float64 `yaml:"speed"`    // Units per frame at 60 Hz
	Lifetime float64 `yaml:"lifetime"` // Seconds before expiry
	Diameter float64 `yaml:"diameter"` // Wrap margin
}

// RoidConfig defines the ranges asteroids are drawn from at spawn time.
type RoidConfig struct {
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MaxRotation  float64 `yaml:"max_rot"` // Degrees per second, either direction
	MinScale     float64 `yaml:"min_scale"`
	MaxScale     float64 `yaml:"max_scale"`
	MinSpawnMag  float64 `yaml:"min_spawn_mag"` // Distance from field center
	MaxSpawnMag  float64 `yaml:"max_spawn_mag"`
	SpriteWidth  float64 `yaml:"sprite_width"`
	SpriteHeight float64 `yaml:"sprite_height"`
}

// GeneratorConfig defines wave sizes.
type GeneratorConfig struct {
	NumAsteroids int  `yaml:"num_of_asteroids"` // Base count for every wave
	Fixed        bool `yaml:"fixed,omitempty"`  // Every wave gets the base count
}

// WaveSize returns the number of asteroids spawned for a level.
// Level 1 (a fresh session or a restart after death) gets the base count;
// every later level N gets base + N*N. A fixed generator never grows.
func (g GeneratorConfig) WaveSize(level int) int {
	if level <= 1 || g.Fixed {
		return g.NumAsteroids
	}
	return g.NumAsteroids + level*level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables wave growth.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
