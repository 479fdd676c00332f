package physics

import (
	"slices"
)

// Pair is two colliding entries of a Detector, by index, with A < B.
type Pair struct {
	A, B int
}

// Detector runs broad-phase culling through a SpatialGrid and confirms
// candidates with Collide.
//
// A Detector is not safe for concurrent use; each scene owns its own.
type Detector struct {
	grid      *SpatialGrid
	colliders []Collider
}

// NewDetector creates a detector for a world of the given size.
func NewDetector(worldW, worldH, cellSize float32) *Detector {
	return &Detector{
		grid: NewSpatialGrid(worldW, worldH, cellSize),
	}
}

// Reset removes all colliders, keeping allocated memory.
func (d *Detector) Reset() {
	d.grid.Clear()
	d.colliders = d.colliders[:0]
}

// Add registers a collider and returns its index.
func (d *Detector) Add(c Collider) int {
	idx := len(d.colliders)
	d.colliders = append(d.colliders, c)
	d.grid.Insert(c.Bounds(), idx)
	return idx
}

// Len returns the number of registered colliders.
func (d *Detector) Len() int {
	return len(d.colliders)
}

// Collider returns the collider registered at index i.
func (d *Detector) Collider(i int) Collider {
	return d.colliders[i]
}

// Hits returns the indices of all registered colliders that collide with
// probe, in ascending order. The probe itself does not need to be registered.
func (d *Detector) Hits(probe Collider) []int {
	var hits []int
	bounds := probe.Bounds()
	d.grid.QueryRect(bounds, func(i int) bool {
		c := d.colliders[i]
		if c.Bounds().Overlaps(bounds) && Collide(probe, c) {
			hits = append(hits, i)
		}
		return false
	})
	slices.Sort(hits)
	return hits
}

// Pairs returns every colliding pair of registered colliders, sorted by A
// then B.
func (d *Detector) Pairs() []Pair {
	var pairs []Pair
	for i, a := range d.colliders {
		bounds := a.Bounds()
		d.grid.QueryRect(bounds, func(j int) bool {
			if j <= i {
				return false // Skip self and already-checked pairs
			}
			b := d.colliders[j]
			if b.Bounds().Overlaps(bounds) && Collide(a, b) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
			return false
		})
	}
	slices.SortFunc(pairs, func(x, y Pair) int {
		if x.A != y.A {
			return x.A - y.A
		}
		return x.B - y.B
	})
	return pairs
}
