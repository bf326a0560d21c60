package config

import "fmt"

// ParsePreset converts a CLI string to a DifficultyPreset.
// An empty string yields an empty preset, meaning "leave the config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyStroidsPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; fixed keeps them too but stops waves from
// growing with the level.
func ApplyStroidsPreset(cfg *StroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generator.NumAsteroids = max(1, cfg.Generator.NumAsteroids-1)
		cfg.Roid.MinSpeed *= 0.75
		cfg.Roid.MaxSpeed *= 0.75
		cfg.Laser.Lifetime *= 1.25
	case DifficultyHard:
		cfg.Generator.NumAsteroids += 2
		cfg.Roid.MinSpeed *= 1.4
		cfg.Roid.MaxSpeed *= 1.4
		cfg.Laser.Lifetime *= 0.8
		cfg.Ship.FireCooldown *= 1.5
	case DifficultyFixed:
		cfg.Generator.Fixed = true
	}
}
