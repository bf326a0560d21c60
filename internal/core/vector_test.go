package core

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVectorComponentwise(t *testing.T) {
	a := V(3, -4)
	b := V(2, 8)

	if got := a.Add(b); got != V(5, 4) {
		t.Errorf("Add() = %v, expected (5, 4)", got)
	}
	if got := a.Sub(b); got != V(1, -12) {
		t.Errorf("Sub() = %v, expected (1, -12)", got)
	}
	if got := a.Mul(b); got != V(6, -32) {
		t.Errorf("Mul() = %v, expected (6, -32)", got)
	}
	if got := a.Div(b); got != V(1.5, -0.5) {
		t.Errorf("Div() = %v, expected (1.5, -0.5)", got)
	}
	if got := a.Scale(2); got != V(6, -8) {
		t.Errorf("Scale() = %v, expected (6, -8)", got)
	}
	if got := a.Min(b); got != V(2, -4) {
		t.Errorf("Min() = %v, expected (2, -4)", got)
	}
	if got := a.Max(b); got != V(3, 8) {
		t.Errorf("Max() = %v, expected (3, 8)", got)
	}
	if got := V(1.5, -2.5).Round(); got != V(2, -3) {
		t.Errorf("Round() = %v, expected (2, -3)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}

	// Receiver must be untouched
	if a != V(3, -4) {
		t.Errorf("operations mutated receiver: %v", a)
	}
}

func TestFromPolar(t *testing.T) {
	tests := []struct {
		name     string
		mag, deg float64
		expected Vector
	}{
		{"east", 10, 0, V(10, 0)},
		{"south (screen down)", 10, 90, V(0, 10)},
		{"west", 10, 180, V(-10, 0)},
		{"up via -90", 10, -90, V(0, -10)},
		{"zero magnitude", 0, 45, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromPolar(tc.mag, tc.deg)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("FromPolar(%f, %f) = %v, expected %v", tc.mag, tc.deg, got, tc.expected)
			}
		})
	}

	if !near(DegToRad(180), math.Pi) {
		t.Errorf("DegToRad(180) = %f, expected pi", DegToRad(180))
	}
}

func TestWithinRadiusInclusive(t *testing.T) {
	if !WithinRadius(V(100, 100), V(90, 90), 15) {
		t.Error("points ~14.1 apart should be within radius 15")
	}
	if !WithinRadius(V(3, 4), V(0, 0), 5) {
		t.Error("boundary distance should count as within radius")
	}
	if WithinRadius(V(3, 4), V(0, 0), 4.999) {
		t.Error("point outside radius reported as within")
	}
	if !WithinRadius(V(7, 7), V(7, 7), 0) {
		t.Error("coincident points should be within radius 0")
	}
}

func TestWithinRadiusSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := V(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		b := V(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		r := rng.Float64() * 1500
		if WithinRadius(a, b, r) != WithinRadius(b, a, r) {
			t.Fatalf("WithinRadius not symmetric for a=%v b=%v r=%f", a, b, r)
		}
	}
}

func TestWrapMargins(t *testing.T) {
	bounds := V(1024, 768)
	d := 50.0

	tests := []struct {
		name     string
		in       Vector
		expected Vector
	}{
		{"inside untouched", V(500, 300), V(500, 300)},
		{"inside the right margin", V(1024+49, 300), V(1024+49, 300)},
		{"exactly at right margin", V(1024+50, 300), V(-50, 300)},
		{"exactly at left margin stays", V(-50, 300), V(-50, 300)},
		{"just past left margin", V(-52, 300), V(1024+48, 300)},
		{"past bottom margin", V(500, 768+53), V(500, -47)},
		{"past top margin", V(500, -51), V(500, 768+49)},
		{"both axes", V(1024+50, -60), V(-50, 768+40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, d, bounds)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestWrapStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	bounds := V(1024, 768)

	for i := 0; i < 5000; i++ {
		d := 0.5 + rng.Float64()*120
		p := V(rng.Float64()*10000-5000, rng.Float64()*10000-5000)
		got := Wrap(p, d, bounds)

		for axis, pair := range [][3]float64{{p.X, got.X, bounds.X}, {p.Y, got.Y, bounds.Y}} {
			in, out, bound := pair[0], pair[1], pair[2]
			if out < -d || out >= bound+d {
				t.Fatalf("axis %d: Wrap(%f, d=%f) = %f outside [%f, %f)", axis, in, d, out, -d, bound+d)
			}
			span := bound + 2*d
			k := (in - out) / span
			if math.Abs(k-math.Round(k)) > 1e-6 {
				t.Fatalf("axis %d: Wrap(%f, d=%f) = %f not congruent mod %f", axis, in, d, out, span)
			}
		}
	}
}
