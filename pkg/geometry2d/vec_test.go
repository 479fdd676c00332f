package geometry2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a, b := V(1, 2), V(3, -4)

	assert.Equal(t, V(4, -2), a.Add(b))
	assert.Equal(t, V(-2, 6), a.Sub(b))
	assert.Equal(t, V(2, 4), a.Scale(2))
	assert.Equal(t, V(-1, -2), a.Neg())
	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(-10), a.Cross(b))
	assert.Equal(t, float32(25), b.LenSq())
	assert.Equal(t, float32(5), b.Len())
}

func TestVec2Unit(t *testing.T) {
	u := V(3, 4).Unit()
	assert.InDelta(t, 0.6, u.X, eps)
	assert.InDelta(t, 0.8, u.Y, eps)
	assert.Equal(t, Vec2{}, Vec2{}.Unit())
}

func TestVec2Angles(t *testing.T) {
	r := V(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, eps)
	assert.InDelta(t, 1, r.Y, eps)

	f := FromAngle(math.Pi, 2)
	assert.InDelta(t, -2, f.X, eps)
	assert.InDelta(t, 0, f.Y, eps)

	assert.InDelta(t, math.Pi/2, V(0, 3).Angle(), eps)
}

func TestVec2ClampLen(t *testing.T) {
	assert.Equal(t, V(1, 0), Vec2{}.ClampLen(1, 5))
	assert.InDelta(t, 5, V(30, 40).ClampLen(1, 5).Len(), eps)
	assert.InDelta(t, 2, V(0.3, 0.4).ClampLen(2, 5).Len(), eps)
	assert.Equal(t, V(3, 4), V(3, 4).ClampLen(1, 10))
}

func TestVec2Distances(t *testing.T) {
	a, b := V(1, 1), V(4, 5)
	assert.Equal(t, float32(5), a.DistanceTo(b))
	assert.Equal(t, float32(25), a.SquareDistanceTo(b))
	assert.Equal(t, float32(7), a.ManhattanTo(b))
	assert.Equal(t, float32(4), a.DiagonalTo(b))
}

func TestVec2String(t *testing.T) {
	assert.Equal(t, "(1.5,-2)", V(1.5, -2).String())
}

func TestIsCCW(t *testing.T) {
	assert.True(t, IsCCW(V(0, 0), V(1, 0), V(0, 1)))
	assert.False(t, IsCCW(V(0, 0), V(0, 1), V(1, 0)))
	assert.True(t, IsCCWVectors(V(1, 0), V(0, 1)))
}

func TestShapes(t *testing.T) {
	c := Circle{Center: V(0, 0), Radius: 5}
	assert.True(t, c.Intersects(Circle{Center: V(8, 0), Radius: 4}))
	assert.False(t, c.Intersects(Circle{Center: V(20, 0), Radius: 4}))
	assert.True(t, c.Contains(V(3, 4)))
	assert.False(t, c.Contains(V(4, 4)))
	assert.Equal(t, Rect{Min: V(-5, -5), Max: V(5, 5)}, c.Bounds())

	s := Segment{A: V(4, 0), B: V(-4, 2)}
	assert.True(t, c.IntersectsSegment(s))
	assert.Equal(t, Rect{Min: V(-4, 0), Max: V(4, 2)}, s.Bounds())
	assert.Equal(t, V(-8, 2), s.Vector())
	assert.Equal(t, V(0, 1), s.Center())

	x := Segment{A: V(0, 0), B: V(4, 4)}
	y := Segment{A: V(0, 4), B: V(4, 0)}
	assert.True(t, x.Intersects(y))
	in, ok := x.Intersection(y)
	assert.True(t, ok)
	assert.InDelta(t, 2, in.X, eps)

	h := Segment{A: V(0, 0), B: V(4, 0)}
	assert.Equal(t, float32(4), h.Len())
	assert.Equal(t, V(2, 0), h.ClosestPoint(V(2, 3)))
	assert.Equal(t, float32(3), h.Distance(V(2, 3)))
}

func TestRect(t *testing.T) {
	r := Rect{Min: V(0, 0), Max: V(2, 2)}
	assert.True(t, r.Overlaps(Rect{Min: V(2, 2), Max: V(3, 3)}))
	assert.False(t, r.Overlaps(Rect{Min: V(2.5, 0), Max: V(3, 3)}))
	assert.True(t, r.Contains(V(1, 2)))
	assert.False(t, r.Contains(V(-1, 1)))
}
