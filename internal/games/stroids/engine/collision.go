package engine

import "github.com/vovakirdan/stroids/internal/core"

// Hit pairs a laser with the asteroid it destroyed, by index.
type Hit struct {
	Laser    int
	Asteroid int
}

// FindHits computes which lasers destroy which asteroids without mutating
// anything. Asteroids are visited in order and each takes the first laser
// inside its radius that no earlier asteroid consumed. A laser whose life ran
// out during this tick still hits; it is swept afterwards. Every asteroid and
// every laser appears in at most one hit.
func FindHits(lasers []Laser, roids []Asteroid) []Hit {
	var hits []Hit
	consumed := make([]bool, len(lasers))
	for ai, a := range roids {
		r := a.Diameter / 2
		for li, l := range lasers {
			if consumed[li] {
				continue
			}
			if core.WithinRadius(l.Position, a.Position, r) {
				consumed[li] = true
				hits = append(hits, Hit{Laser: li, Asteroid: ai})
				break
			}
		}
	}
	return hits
}

// ShipCollides reports whether the ship overlaps any asteroid not marked in
// destroyed. destroyed may be nil.
func ShipCollides(ship *Ship, roids []Asteroid, destroyed []bool) bool {
	for i, a := range roids {
		if destroyed != nil && destroyed[i] {
			continue
		}
		if core.WithinRadius(ship.Position, a.Position, a.Diameter/2+ship.Radius) {
			return true
		}
	}
	return false
}
