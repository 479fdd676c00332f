package physics

import "github.com/tomz197/geometry2d/pkg/geometry2d"

// Kind identifies the shape held by a Collider.
type Kind uint8

const (
	KindCircle Kind = iota
	KindSegment
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Collider is a shape taking part in collision detection.
// Only the field matching Kind is meaningful.
type Collider struct {
	ID      int
	Kind    Kind
	Circle  geometry2d.Circle
	Segment geometry2d.Segment
}

// NewCircleCollider wraps a circle.
func NewCircleCollider(id int, c geometry2d.Circle) Collider {
	return Collider{ID: id, Kind: KindCircle, Circle: c}
}

// NewSegmentCollider wraps a segment.
func NewSegmentCollider(id int, s geometry2d.Segment) Collider {
	return Collider{ID: id, Kind: KindSegment, Segment: s}
}

// Bounds returns the axis-aligned box enclosing the collider.
func (c Collider) Bounds() geometry2d.Rect {
	if c.Kind == KindSegment {
		return c.Segment.Bounds()
	}
	return c.Circle.Bounds()
}

// Collide is the narrow phase: it runs the geometry2d predicate matching the
// pair of shapes. Argument order does not matter.
func Collide(a, b Collider) bool {
	switch {
	case a.Kind == KindCircle && b.Kind == KindCircle:
		return a.Circle.Intersects(b.Circle)
	case a.Kind == KindCircle && b.Kind == KindSegment:
		return a.Circle.IntersectsSegment(b.Segment)
	case a.Kind == KindSegment && b.Kind == KindCircle:
		return b.Circle.IntersectsSegment(a.Segment)
	case a.Kind == KindSegment && b.Kind == KindSegment:
		return a.Segment.Intersects(b.Segment)
	default:
		return false
	}
}
