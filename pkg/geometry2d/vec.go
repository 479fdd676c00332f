package geometry2d

import (
	"math"
	"strconv"
)

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// V creates a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the vector (cos(rad)·mag, sin(rad)·mag).
func FromAngle(rad, mag float32) Vec2 {
	s, c := math.Sincos(float64(rad))
	return Vec2{X: float32(c) * mag, Y: float32(s) * mag}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the inner product v · o.
func (v Vec2) Dot(o Vec2) float32 {
	return DotProduct(v.X, v.Y, o.X, o.Y)
}

// Cross returns the 2D cross product v × o.
func (v Vec2) Cross(o Vec2) float32 {
	return VectorProduct(v.X, v.Y, o.X, o.Y)
}

// Len returns the magnitude of v.
func (v Vec2) Len() float32 {
	return Magnitude(v.X, v.Y)
}

// LenSq returns the squared magnitude of v.
func (v Vec2) LenSq() float32 {
	return SquareMagnitude(v.X, v.Y)
}

// Unit returns v scaled to length 1. The zero vector stays zero.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the angle of v in radians, in [-π, π].
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// Rotate returns v rotated by rad radians.
func (v Vec2) Rotate(rad float32) Vec2 {
	s, c := math.Sincos(float64(rad))
	x, y := float64(v.X), float64(v.Y)
	return Vec2{X: float32(x*c - y*s), Y: float32(x*s + y*c)}
}

// ClampLen rescales v so its length lies in [min, max].
// The zero vector becomes (min, 0).
func (v Vec2) ClampLen(min, max float32) Vec2 {
	l := v.Len()
	switch {
	case l == 0:
		return Vec2{X: min}
	case l < min:
		return v.Scale(min / l)
	case l > max:
		return v.Scale(max / l)
	default:
		return v
	}
}

func (v Vec2) DistanceTo(o Vec2) float32 {
	return EuclideanDistance(v.X, v.Y, o.X, o.Y)
}

func (v Vec2) SquareDistanceTo(o Vec2) float32 {
	return SquareEuclideanDistance(v.X, v.Y, o.X, o.Y)
}

func (v Vec2) ManhattanTo(o Vec2) float32 {
	return ManhattanDistance(v.X, v.Y, o.X, o.Y)
}

func (v Vec2) DiagonalTo(o Vec2) float32 {
	return DiagonalDistance(v.X, v.Y, o.X, o.Y)
}

// String formats v as "(x,y)".
func (v Vec2) String() string {
	return "(" + strconv.FormatFloat(float64(v.X), 'g', -1, 32) +
		"," + strconv.FormatFloat(float64(v.Y), 'g', -1, 32) + ")"
}

// IsCCW reports whether the turn a→b→c is counter-clockwise.
func IsCCW(a, b, c Vec2) bool {
	return CCW(a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

// IsCCWVectors reports the same turn as IsCCW for vectors ab and ac
// sharing an origin.
func IsCCWVectors(ab, ac Vec2) bool {
	return CCWVectors(ab.X, ab.Y, ac.X, ac.Y)
}
