package geometry2d

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Vec2
	Radius float32
}

// Intersects reports whether the boundaries of c and o cross.
// See CirclesIntersect.
func (c Circle) Intersects(o Circle) bool {
	return CirclesIntersect(c.Center.X, c.Center.Y, c.Radius, o.Center.X, o.Center.Y, o.Radius)
}

// IntersectsSegment reports whether c intersects s. See CircleLineIntersect.
func (c Circle) IntersectsSegment(s Segment) bool {
	return CircleLineIntersect(c.Center.X, c.Center.Y, c.Radius, s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// Contains reports whether p lies inside or on c.
func (c Circle) Contains(p Vec2) bool {
	return PointInCircle(p.X, p.Y, c.Center.X, c.Center.Y, c.Radius)
}

// Bounds returns the axis-aligned box enclosing c.
func (c Circle) Bounds() Rect {
	r := Vec2{X: c.Radius, Y: c.Radius}
	return Rect{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

// Segment is the finite line segment from A to B.
type Segment struct {
	A, B Vec2
}

// Intersects reports whether s and o properly cross. See LinesIntersect.
func (s Segment) Intersects(o Segment) bool {
	return LinesIntersect(s.A.X, s.A.Y, s.B.X, s.B.Y, o.A.X, o.A.Y, o.B.X, o.B.Y)
}

// Vector returns B − A.
func (s Segment) Vector() Vec2 {
	return s.B.Sub(s.A)
}

func (s Segment) Len() float32 {
	return EuclideanDistance(s.A.X, s.A.Y, s.B.X, s.B.Y)
}

func (s Segment) Center() Vec2 {
	return Vec2{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// ClosestPoint returns the point of s closest to p.
func (s Segment) ClosestPoint(p Vec2) Vec2 {
	x, y := ClosestPointOnSegment(p.X, p.Y, s.A.X, s.A.Y, s.B.X, s.B.Y)
	return Vec2{X: x, Y: y}
}

// Distance returns the distance from p to s.
func (s Segment) Distance(p Vec2) float32 {
	return SegmentDistance(p.X, p.Y, s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// Intersection returns where the lines through s and o meet.
// See LineIntersection.
func (s Segment) Intersection(o Segment) (Intersection, bool) {
	return LineIntersection(s.A.X, s.A.Y, s.B.X, s.B.Y, o.A.X, o.A.Y, o.B.X, o.B.Y)
}

// Bounds returns the axis-aligned box enclosing s.
func (s Segment) Bounds() Rect {
	r := Rect{Min: s.A, Max: s.B}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Rect is an axis-aligned box. Min holds the smallest coordinates.
type Rect struct {
	Min, Max Vec2
}

// Overlaps reports whether r and o share at least one point.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside or on r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
