package core

import "math"

// Vector is a 2D value type in world units.
// All operations return a new Vector; the receiver is never modified.
//
// Mul and Div are componentwise, not dot or cross products, so X and Y can
// be scaled independently.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Splat returns a vector with both components set to n.
func Splat(n float64) Vector {
	return Vector{X: n, Y: n}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the componentwise product.
func (v Vector) Mul(o Vector) Vector {
	return Vector{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the componentwise quotient.
func (v Vector) Div(o Vector) Vector {
	return Vector{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale multiplies both components by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Min returns the componentwise minimum.
func (v Vector) Min(o Vector) Vector {
	return Vector{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y)}
}

// Max returns the componentwise maximum.
func (v Vector) Max(o Vector) Vector {
	return Vector{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y)}
}

// Round rounds both components half away from zero.
func (v Vector) Round() Vector {
	return Vector{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DegToRad converts degrees to radians as deg/180*pi.
func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

// FromPolar returns (cos(deg)*mag, sin(deg)*mag). The angle is in degrees.
func FromPolar(mag, deg float64) Vector {
	rad := DegToRad(deg)
	return Vector{X: math.Cos(rad) * mag, Y: math.Sin(rad) * mag}
}

// WithinRadius reports whether p lies within r of center.
// The boundary is inclusive: a point exactly r away is inside.
func WithinRadius(p, center Vector, r float64) bool {
	return p.Sub(center).Len() <= r
}

// Wrap applies toroidal wrap-around to p for an entity of diameter d on a
// field of size bounds. An entity stays put until its center reaches
// bounds+d (or drops below -d) and then reappears at the opposite margin,
// carrying any overshoot with it. The result always lies in [-d, bounds+d)
// and is congruent to p modulo bounds+2d. Each axis is handled independently.
func Wrap(p Vector, d float64, bounds Vector) Vector {
	return Vector{
		X: wrapAxis(p.X, d, bounds.X),
		Y: wrapAxis(p.Y, d, bounds.Y),
	}
}

func wrapAxis(p, d, bound float64) float64 {
	if p >= -d && p < bound+d {
		return p
	}
	span := bound + 2*d
	r := math.Mod(p+d, span)
	if r < 0 {
		r += span
	}
	// rounding can land exactly on the far margin
	if r >= span || r-d >= bound+d {
		return -d
	}
	return r - d
}
