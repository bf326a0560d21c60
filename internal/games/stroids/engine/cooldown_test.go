package engine

import (
	"math/rand"
	"testing"
)

func TestCooldownReadyOnlyAtZero(t *testing.T) {
	var c Cooldown
	if !c.Ready() {
		t.Fatal("zero cooldown should be ready")
	}

	c.Reset(0.1)
	if c.Ready() {
		t.Error("cooldown should not be ready right after reset")
	}
	c.Tick(0.05)
	if c.Ready() {
		t.Errorf("cooldown ready with %v remaining", c.Remaining())
	}
	c.Tick(0.1)
	if !c.Ready() {
		t.Errorf("cooldown should floor at zero, got %v", c.Remaining())
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", c.Remaining())
	}
}

func TestCooldownMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var c Cooldown
	c.Reset(2)
	prev := c.Remaining()
	for i := 0; i < 500; i++ {
		c.Tick(rng.Float64() * 0.05)
		r := c.Remaining()
		if r > prev {
			t.Fatalf("step %d: remaining increased %v -> %v", i, prev, r)
		}
		if r < 0 {
			t.Fatalf("step %d: remaining went negative: %v", i, r)
		}
		if c.Ready() != (r == 0) {
			t.Fatalf("step %d: Ready()=%v with remaining %v", i, c.Ready(), r)
		}
		prev = r
	}
	if !c.Ready() {
		t.Errorf("cooldown never reached zero, remaining %v", c.Remaining())
	}
}

func TestCooldownIgnoresNegativeTick(t *testing.T) {
	var c Cooldown
	c.Reset(1)
	c.Tick(-5)
	if c.Remaining() != 1 {
		t.Errorf("negative tick changed remaining to %v", c.Remaining())
	}
}
