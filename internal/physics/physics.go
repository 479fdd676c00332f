// Package physics provides collision detection and distance utilities on top
// of the geometry2d predicates.
package physics

import "github.com/tomz197/geometry2d/pkg/geometry2d"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float32) float32 {
	return geometry2d.EuclideanDistance(x1, y1, x2, y2)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float32) float32 {
	return geometry2d.SquareEuclideanDistance(x1, y1, x2, y2)
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float32) bool {
	return geometry2d.PointInCircle(px, py, cx, cy, radius)
}

// CirclesOverlap checks if two circles share any area, including when one
// lies entirely inside the other. Use geometry2d.CirclesIntersect when only
// boundary crossings count.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float32) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
