package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

func circle(id int, x, y, r float32) Collider {
	return NewCircleCollider(id, geometry2d.Circle{Center: geometry2d.V(x, y), Radius: r})
}

func segment(id int, ax, ay, bx, by float32) Collider {
	return NewSegmentCollider(id, geometry2d.Segment{A: geometry2d.V(ax, ay), B: geometry2d.V(bx, by)})
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(5), Distance(0, 0, 3, 4))
	assert.Equal(t, float32(25), DistanceSquared(0, 0, 3, 4))
	assert.True(t, PointInCircle(3, 4, 0, 0, 5))
	assert.False(t, PointInCircle(3, 4.1, 0, 0, 5))

	assert.True(t, CirclesOverlap(0, 0, 5, 8, 0, 4))
	assert.False(t, CirclesOverlap(0, 0, 1, 2, 0, 1))
	// containment overlaps even though the boundaries never cross
	assert.True(t, CirclesOverlap(0, 0, 5, 1, 0, 1))
	assert.False(t, geometry2d.CirclesIntersect(0, 0, 5, 1, 0, 1))
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name string
		a, b Collider
		want bool
	}{
		{"circle circle", circle(1, 0, 0, 5), circle(2, 8, 0, 4), true},
		{"circle circle apart", circle(1, 0, 0, 1), circle(2, 10, 0, 1), false},
		{"circle segment", circle(1, 0, 0, 1), segment(2, -2, 0, 2, 0), true},
		{"segment circle", segment(1, -2, 0, 2, 0), circle(2, 0, 0, 1), true},
		{"circle segment miss", circle(1, 0, 0, 1), segment(2, 2, 2, 5, 5), false},
		{"segment segment", segment(1, 0, 0, 4, 4), segment(2, 0, 4, 4, 0), true},
		{"segment segment collinear", segment(1, 0, 0, 1, 1), segment(2, 5, 5, 6, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collide(tt.a, tt.b))
			assert.Equal(t, tt.want, Collide(tt.b, tt.a))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "circle", KindCircle.String())
	assert.Equal(t, "segment", KindSegment.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestSpatialGridQueryVisitsOnce(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	require.Equal(t, 10, g.Cols())
	require.Equal(t, 10, g.Rows())

	// spans many cells
	g.Insert(geometry2d.Rect{Min: geometry2d.V(5, 5), Max: geometry2d.V(95, 95)}, 0)
	g.Insert(geometry2d.Rect{Min: geometry2d.V(50, 50), Max: geometry2d.V(52, 52)}, 1)

	var seen []int
	g.QueryRect(geometry2d.Rect{Min: geometry2d.V(0, 0), Max: geometry2d.V(100, 100)}, func(i int) bool {
		seen = append(seen, i)
		return false
	})
	assert.ElementsMatch(t, []int{0, 1}, seen)

	// a second query sees everything again
	seen = seen[:0]
	g.QueryRect(geometry2d.Rect{Min: geometry2d.V(51, 51), Max: geometry2d.V(51, 51)}, func(i int) bool {
		seen = append(seen, i)
		return false
	})
	assert.ElementsMatch(t, []int{0, 1}, seen)
}

func TestSpatialGridEarlyStopAndClamp(t *testing.T) {
	g := NewSpatialGrid(50, 50, 10)
	g.Insert(geometry2d.Rect{Min: geometry2d.V(-30, -30), Max: geometry2d.V(-20, -20)}, 0)
	g.Insert(geometry2d.Rect{Min: geometry2d.V(1, 1), Max: geometry2d.V(2, 2)}, 1)

	calls := 0
	g.QueryRect(geometry2d.Rect{Min: geometry2d.V(0, 0), Max: geometry2d.V(3, 3)}, func(int) bool {
		calls++
		return true
	})
	assert.Equal(t, 1, calls)

	g.Clear()
	calls = 0
	g.QueryRect(geometry2d.Rect{Min: geometry2d.V(0, 0), Max: geometry2d.V(50, 50)}, func(int) bool {
		calls++
		return false
	})
	assert.Zero(t, calls)
}

func TestSpatialGridCellCap(t *testing.T) {
	g := NewSpatialGrid(1e12, 1e12, 16)
	assert.LessOrEqual(t, g.Cols()*g.Rows(), maxGridCells)
	assert.GreaterOrEqual(t, g.Cols(), 1)

	g.Insert(geometry2d.Rect{Min: geometry2d.V(5e11, 5e11), Max: geometry2d.V(5e11+1, 5e11+1)}, 0)
	var got []int
	g.QueryRect(geometry2d.Rect{Min: geometry2d.V(5e11, 5e11), Max: geometry2d.V(5e11, 5e11)}, func(i int) bool {
		got = append(got, i)
		return false
	})
	assert.Equal(t, []int{0}, got)

	g = NewSpatialGrid(10000, 10000, 16)
	assert.LessOrEqual(t, g.Cols()*g.Rows(), maxGridCells)

	// Small worlds keep the requested cell size.
	g = NewSpatialGrid(160, 96, 16)
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, 6, g.Rows())
}

func TestDetectorHits(t *testing.T) {
	d := NewDetector(100, 100, 10)
	d.Add(circle(10, 20, 20, 5))
	d.Add(segment(11, 0, 50, 100, 50))
	d.Add(circle(12, 80, 80, 5))
	require.Equal(t, 3, d.Len())
	assert.Equal(t, 11, d.Collider(1).ID)

	assert.Equal(t, []int{0, 1}, d.Hits(segment(0, 20, 10, 20, 60)))
	assert.Empty(t, d.Hits(circle(0, 50, 20, 3)))

	d.Reset()
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Hits(segment(0, 20, 10, 20, 60)))
}

func randomCollider(rng *rand.Rand, id int) Collider {
	x, y := rng.Float32()*200, rng.Float32()*200
	if rng.Intn(2) == 0 {
		return circle(id, x, y, 1+rng.Float32()*15)
	}
	return segment(id, x, y, x+rng.Float32()*60-30, y+rng.Float32()*60-30)
}

func TestDetectorMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewDetector(200, 200, 16)

	colliders := make([]Collider, 150)
	for i := range colliders {
		colliders[i] = randomCollider(rng, i)
		d.Add(colliders[i])
	}

	var want []Pair
	for i := range colliders {
		for j := i + 1; j < len(colliders); j++ {
			if Collide(colliders[i], colliders[j]) {
				want = append(want, Pair{A: i, B: j})
			}
		}
	}
	assert.Equal(t, want, d.Pairs())

	for n := 0; n < 50; n++ {
		probe := randomCollider(rng, -1)
		var wantHits []int
		for i, c := range colliders {
			if Collide(probe, c) {
				wantHits = append(wantHits, i)
			}
		}
		require.Equal(t, wantHits, d.Hits(probe))
	}
}
