// Package geometry2d provides stateless 2D geometry predicates and metrics:
// orientation tests, vector and distance metrics, and pairwise intersection
// tests between circles and segments.
//
// Every function takes raw float32 components and returns a scalar or a
// boolean. Nothing is retained between calls, so all functions are safe for
// concurrent use.
package geometry2d

import "math"

// CCW reports whether the turn A→B→C is counter-clockwise.
// Collinear points return false.
func CCW(xA, yA, xB, yB, xC, yC float32) bool {
	return (yC-yA)*(xB-xA) > (yB-yA)*(xC-xA)
}

// CCWVectors is CCW for two vectors AB and AC already anchored at A.
func CCWVectors(xAB, yAB, xAC, yAC float32) bool {
	return yAC*xAB > yAB*xAC
}

// SquareMagnitude returns x² + y². Use it instead of Magnitude when only
// comparing lengths.
func SquareMagnitude(x, y float32) float32 {
	return x*x + y*y
}

// Magnitude returns the Euclidean length of the vector (x, y).
func Magnitude(x, y float32) float32 {
	return sqrt32(x*x + y*y)
}

// DotProduct returns the inner product of A and B.
func DotProduct(xA, yA, xB, yB float32) float32 {
	return xA*xB + yA*yB
}

// VectorProduct returns the 2D cross product xA·yB − yA·xB. Its sign gives
// the orientation of B relative to A and its magnitude is twice the signed
// area of the triangle they span.
func VectorProduct(xA, yA, xB, yB float32) float32 {
	return xA*yB - yA*xB
}

// SquareEuclideanDistance returns the squared distance between points A and B.
func SquareEuclideanDistance(xA, yA, xB, yB float32) float32 {
	dX, dY := xB-xA, yB-yA
	return dX*dX + dY*dY
}

// EuclideanDistance returns the distance between points A and B.
func EuclideanDistance(xA, yA, xB, yB float32) float32 {
	dX, dY := xB-xA, yB-yA
	return sqrt32(dX*dX + dY*dY)
}

// ManhattanDistance returns |dx| + |dy| between points A and B.
func ManhattanDistance(xA, yA, xB, yB float32) float32 {
	return abs32(xB-xA) + abs32(yB-yA)
}

// DiagonalDistance returns the Chebyshev distance max(|dx|, |dy|) between
// points A and B.
func DiagonalDistance(xA, yA, xB, yB float32) float32 {
	dX, dY := abs32(xB-xA), abs32(yB-yA)
	if dX > dY {
		return dX
	}
	return dY
}

// CirclesIntersect reports whether the boundaries of two circles cross.
// Circles that only touch, and circles nested without crossing, return false.
func CirclesIntersect(xC1, yC1, r1, xC2, yC2, r2 float32) bool {
	d := EuclideanDistance(xC1, yC1, xC2, yC2)
	return d < r1+r2 && r1 < d+r2 && r2 < d+r1
}

// CircleLineIntersect reports whether the circle of radius r centered at C
// intersects the finite segment AB.
//
// A zero-length segment is treated as the point A.
func CircleLineIntersect(xC, yC, r, xA, yA, xB, yB float32) bool {
	// exactly one endpoint inside: the segment crosses the boundary
	insideA := EuclideanDistance(xA, yA, xC, yC) < r
	insideB := EuclideanDistance(xB, yB, xC, yC) < r
	if insideA != insideB {
		return true
	}

	xU, yU := xB-xA, yB-yA
	l := Magnitude(xU, yU)
	if l == 0 {
		return SquareEuclideanDistance(xA, yA, xC, yC) <= r*r
	}
	xU /= l
	yU /= l

	// projection of C on the line, measured from A
	d := DotProduct(xU, yU, xC-xA, yC-yA)
	if d < 0 || d > l {
		return false
	}

	return SquareEuclideanDistance(xU*d+xA, yU*d+yA, xC, yC) <= r*r
}

// LinesIntersect reports whether the segments AB and CD properly cross.
// Collinear segments and segments meeting at a shared endpoint return false.
func LinesIntersect(xA, yA, xB, yB, xC, yC, xD, yD float32) bool {
	xAC, yAC := xC-xA, yC-yA
	xAD, yAD := xD-xA, yD-yA
	xBC, yBC := xC-xB, yC-yB
	xBD, yBD := xD-xB, yD-yB

	// A and B must see C and D in opposite orders
	if CCWVectors(xAC, yAC, xAD, yAD) == CCWVectors(xBC, yBC, xBD, yBD) {
		return false
	}

	xAB, yAB := xB-xA, yB-yA
	return CCWVectors(xAB, yAB, xAC, yAC) != CCWVectors(xAB, yAB, xAD, yAD)
}

// PointInCircle reports whether P lies inside or on the circle of radius r
// centered at C.
func PointInCircle(xP, yP, xC, yC, r float32) bool {
	return SquareEuclideanDistance(xP, yP, xC, yC) <= r*r
}

// ClosestPointOnSegment returns the point of segment AB closest to P.
// A zero-length segment returns A.
func ClosestPointOnSegment(xP, yP, xA, yA, xB, yB float32) (x, y float32) {
	xU, yU := xB-xA, yB-yA
	l2 := SquareMagnitude(xU, yU)
	if l2 == 0 {
		return xA, yA
	}

	t := DotProduct(xP-xA, yP-yA, xU, yU) / l2
	switch {
	case t <= 0:
		return xA, yA
	case t >= 1:
		return xB, yB
	default:
		return xA + xU*t, yA + yU*t
	}
}

// SegmentDistance returns the distance from P to the closest point of
// segment AB.
func SegmentDistance(xP, yP, xA, yA, xB, yB float32) float32 {
	x, y := ClosestPointOnSegment(xP, yP, xA, yA, xB, yB)
	return EuclideanDistance(x, y, xP, yP)
}

// Intersection is the meeting point of the lines through AB and CD.
// OnAB and OnCD report whether the point lies strictly inside each segment.
type Intersection struct {
	X, Y float32
	OnAB bool
	OnCD bool
}

// LineIntersection returns the intersection point of the infinite lines
// through AB and CD. ok is false when the lines are parallel or either
// segment has zero length.
func LineIntersection(xA, yA, xB, yB, xC, yC, xD, yD float32) (in Intersection, ok bool) {
	xAB, yAB := xB-xA, yB-yA
	xCD, yCD := xD-xC, yD-yC
	d := VectorProduct(xAB, yAB, xCD, yCD)
	if d == 0 {
		return Intersection{}, false
	}

	xCA, yCA := xA-xC, yA-yC
	t := VectorProduct(xCD, yCD, xCA, yCA) / d
	u := VectorProduct(xAB, yAB, xCA, yCA) / d

	return Intersection{
		X:    xA + xAB*t,
		Y:    yA + yAB*t,
		OnAB: t > 0 && t < 1,
		OnCD: u > 0 && u < 1,
	}, true
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
