package config

import (
	_ "embed"
)

//go:embed defaults/stroids.yaml
var defaultStroidsYAML []byte

// DefaultStroidsConfig returns the hard-coded default configuration.
// It matches defaults/stroids.yaml and is used if the embedded file is unusable.
func DefaultStroidsConfig() StroidsConfig {
	return StroidsConfig{
		Field: FieldConfig{
			Width:  1024,
			Height: 768,
		},
		Ship: ShipConfig{
			Radius:        40,
			RotationRate:  270,
			Thrust:        8,
			MaxSpeed:      12,
			FireCooldown:  0.15,
			BlinkCooldown: 0.04,
		},
		Laser: LaserConfig{
			Speed:    10,
			Lifetime: 1.0,
			Diameter: 4,
		},
		Roid: RoidConfig{
			MinSpeed:     0.5,
			MaxSpeed:     2.0,
			MaxRotation:  90,
			MinScale:     0.5,
			MaxScale:     1.5,
			MinSpawnMag:  200,
			MaxSpawnMag:  400,
			SpriteWidth:  50,
			SpriteHeight: 50,
		},
		Generator: GeneratorConfig{
			NumAsteroids: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStroidsYAML
}
