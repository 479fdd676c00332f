package scene

import (
	"github.com/tomz197/geometry2d/internal/input"
	"github.com/tomz197/geometry2d/internal/physics"
	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

// CircleReport describes the scene circle whose center is nearest to the probe.
type CircleReport struct {
	Index     int // into Scene.Circles, -1 when the scene has none
	Euclidean float32
	Manhattan float32
	Diagonal  float32
}

// SegmentReport describes the scene segment nearest to the probe center.
type SegmentReport struct {
	Index    int // into Scene.Segments, -1 when the scene has none
	Distance float32
	CCW      bool // probe center lies on the counter-clockwise side of A→B
}

// State is the per-session simulation state. It is owned by one frame loop.
type State struct {
	Scene *Scene
	Probe Probe

	Hits      []int             // collider indices hit by the probe, ascending
	Pairs     []physics.Pair    // colliding pairs among scene shapes
	Crossings []geometry2d.Vec2 // where segments properly cross each other
	Circle    CircleReport
	Segment   SegmentReport

	detector  *physics.Detector
	colliders []physics.Collider
}

// NewState creates the state for sc and evaluates the initial probe.
func NewState(sc *Scene) *State {
	s := &State{
		Scene:     sc,
		Probe:     NewProbe(sc.Probe),
		detector:  physics.NewDetector(sc.Width, sc.Height, gridCellSize),
		colliders: sc.Colliders(),
	}
	s.rebuild()
	s.Pairs = s.detector.Pairs()
	s.evaluate()
	return s
}

// Step applies one frame of input and recomputes everything the probe touches.
func (s *State) Step(in input.Input, dt float32) {
	s.Probe.Update(in, dt, s.Scene.Bounds())
	s.rebuild()
	s.evaluate()
}

// Collider returns the scene collider at index i.
func (s *State) Collider(i int) physics.Collider {
	return s.colliders[i]
}

// IsHit reports whether collider i is currently hit by the probe.
func (s *State) IsHit(i int) bool {
	for _, h := range s.Hits {
		if h == i {
			return true
		}
		if h > i {
			return false
		}
	}
	return false
}

func (s *State) rebuild() {
	s.detector.Reset()
	for _, c := range s.colliders {
		s.detector.Add(c)
	}
}

func (s *State) evaluate() {
	probe := s.Probe.Collider()
	s.Hits = s.detector.Hits(probe)

	s.Crossings = s.Crossings[:0]
	for _, p := range s.Pairs {
		s.addCrossing(s.colliders[p.A], s.colliders[p.B])
	}
	for _, i := range s.Hits {
		s.addCrossing(probe, s.colliders[i])
	}

	s.Circle = nearestCircle(s.Scene.Circles, s.Probe.Pos)
	s.Segment = nearestSegment(s.Scene.Segments, s.Probe.Pos)
}

func (s *State) addCrossing(a, b physics.Collider) {
	if a.Kind != physics.KindSegment || b.Kind != physics.KindSegment {
		return
	}
	if in, ok := a.Segment.Intersection(b.Segment); ok && in.OnAB && in.OnCD {
		s.Crossings = append(s.Crossings, geometry2d.V(in.X, in.Y))
	}
}

func nearestCircle(circles []CircleSpec, p geometry2d.Vec2) CircleReport {
	r := CircleReport{Index: -1}
	var best float32
	for i, c := range circles {
		center := geometry2d.V(c.X, c.Y)
		d := p.SquareDistanceTo(center)
		if r.Index >= 0 && d >= best {
			continue
		}
		best = d
		r = CircleReport{
			Index:     i,
			Euclidean: p.DistanceTo(center),
			Manhattan: p.ManhattanTo(center),
			Diagonal:  p.DiagonalTo(center),
		}
	}
	return r
}

func nearestSegment(segments []SegmentSpec, p geometry2d.Vec2) SegmentReport {
	r := SegmentReport{Index: -1}
	for i, spec := range segments {
		seg := spec.Segment()
		d := seg.Distance(p)
		if r.Index >= 0 && d >= r.Distance {
			continue
		}
		r = SegmentReport{
			Index:    i,
			Distance: d,
			CCW:      geometry2d.IsCCW(seg.A, seg.B, p),
		}
	}
	return r
}
