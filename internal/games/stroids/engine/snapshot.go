package engine

import "github.com/vovakirdan/stroids/internal/core"

// EntityView is the read-only render state of one entity.
type EntityView struct {
	Handle   Handle
	Position core.Vector
	Rotation float64
	Diameter float64
}

// ShipView adds the ship-only render state.
type ShipView struct {
	EntityView
	Radius float64
	Tinted bool
	Alive  bool
}

// Snapshot is a copy of the world between ticks. Adapters draw from it and
// may keep it; later ticks never modify it.
type Snapshot struct {
	Tick      uint64
	Score     int64
	Level     int
	Field     core.Vector
	Ship      ShipView
	Lasers    []EntityView
	Asteroids []EntityView
}

// AsteroidCount returns the number of asteroids still on the field.
func (s Snapshot) AsteroidCount() int {
	return len(s.Asteroids)
}
