package engine

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/core"
)

const dt = 1.0 / 60.0

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// counterHandles returns a generator of sequential, reproducible handles.
func counterHandles() func() Handle {
	var n uint64
	return func() Handle {
		n++
		var h uuid.UUID
		binary.BigEndian.PutUint64(h[8:], n)
		return h
	}
}

func testConfig(base int) config.StroidsConfig {
	cfg := config.DefaultStroidsConfig()
	cfg.Generator.NumAsteroids = base
	return cfg
}

func newTestWorld(t *testing.T, cfg config.StroidsConfig, seed int64, opts ...Option) *World {
	t.Helper()
	opts = append([]Option{WithHandles(counterHandles())}, opts...)
	w, err := NewWorld(cfg, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func stationaryRoid(x, y, d float64) Asteroid {
	return Asteroid{Body: Body{Position: core.V(x, y), Diameter: d}}
}

// seqSource replays a fixed sequence of draws, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
