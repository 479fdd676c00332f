// Package scene holds the viewer's scene model, the interactive probe and
// the frame loop that draws both to a terminal.
package scene

import (
	"bytes"
	_ "embed"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tomz197/geometry2d/internal/physics"
	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

//go:embed default.yaml
var defaultYAML []byte

// CircleSpec is a circle as written in a scene file.
type CircleSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	R float32 `yaml:"r"`
}

// Circle converts the file entry to a geometry2d.Circle.
func (c CircleSpec) Circle() geometry2d.Circle {
	return geometry2d.Circle{Center: geometry2d.V(c.X, c.Y), Radius: c.R}
}

// SegmentSpec is a segment as written in a scene file.
type SegmentSpec struct {
	AX float32 `yaml:"ax"`
	AY float32 `yaml:"ay"`
	BX float32 `yaml:"bx"`
	BY float32 `yaml:"by"`
}

// Segment converts the file entry to a geometry2d.Segment.
func (s SegmentSpec) Segment() geometry2d.Segment {
	return geometry2d.Segment{A: geometry2d.V(s.AX, s.AY), B: geometry2d.V(s.BX, s.BY)}
}

// ProbeSpec is the initial probe as written in a scene file.
type ProbeSpec struct {
	Mode   string  `yaml:"mode"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Radius float32 `yaml:"radius"`
	Length float32 `yaml:"length"`
}

// Scene is a static set of shapes plus the initial probe.
type Scene struct {
	Width    float32       `yaml:"width"`
	Height   float32       `yaml:"height"` // in half-block sub-pixels
	Circles  []CircleSpec  `yaml:"circles"`
	Segments []SegmentSpec `yaml:"segments"`
	Probe    ProbeSpec     `yaml:"probe"`
}

// Load decodes and validates a scene. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode scene: empty document")
		}
		return nil, errors.Wrap(err, "decode scene")
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads a scene from a YAML file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// LoadOrDefault loads the scene at path, or the embedded scene when path is empty.
func LoadOrDefault(path string) (*Scene, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Default returns a fresh copy of the embedded scene.
func Default() (*Scene, error) {
	return Load(bytes.NewReader(defaultYAML))
}

func (s *Scene) applyDefaults() {
	if s.Probe.Mode == "" {
		s.Probe.Mode = ModeCircle.String()
	}
	if s.Probe.Radius == 0 {
		s.Probe.Radius = defaultProbeRadius
	}
	if s.Probe.Length == 0 {
		s.Probe.Length = defaultProbeLength
	}
}

// Validate checks the scene dimensions, every coordinate and radius, and
// the probe. Every number must be finite.
func (s *Scene) Validate() error {
	if !finite(s.Width, s.Height) || !(s.Width > 0) || !(s.Height > 0) {
		return errors.Errorf("scene size must be positive, got %gx%g", s.Width, s.Height)
	}
	if s.Width > maxSceneSize || s.Height > maxSceneSize {
		return errors.Errorf("scene size %gx%g exceeds %d", s.Width, s.Height, maxSceneSize)
	}
	for i, c := range s.Circles {
		if !finite(c.X, c.Y, c.R) {
			return errors.Errorf("circle %d: non-finite value in (%g, %g, r=%g)", i, c.X, c.Y, c.R)
		}
		if !(c.R > 0) {
			return errors.Errorf("circle %d: radius must be positive, got %g", i, c.R)
		}
	}
	for i, seg := range s.Segments {
		if !finite(seg.AX, seg.AY, seg.BX, seg.BY) {
			return errors.Errorf("segment %d: non-finite endpoint in (%g, %g)-(%g, %g)",
				i, seg.AX, seg.AY, seg.BX, seg.BY)
		}
	}
	if _, err := ParseMode(s.Probe.Mode); err != nil {
		return errors.Wrap(err, "probe")
	}
	if !finite(s.Probe.X, s.Probe.Y, s.Probe.Radius, s.Probe.Length) {
		return errors.Errorf("probe: non-finite value")
	}
	if !(s.Probe.Radius > 0) {
		return errors.Errorf("probe: radius must be positive, got %g", s.Probe.Radius)
	}
	if !(s.Probe.Length > 0) {
		return errors.Errorf("probe: length must be positive, got %g", s.Probe.Length)
	}
	return nil
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Bounds returns the scene area.
func (s *Scene) Bounds() geometry2d.Rect {
	return geometry2d.Rect{Max: geometry2d.V(s.Width, s.Height)}
}

// Colliders returns circles first, then segments. Each collider's ID is its
// index in that order.
func (s *Scene) Colliders() []physics.Collider {
	out := make([]physics.Collider, 0, len(s.Circles)+len(s.Segments))
	for _, c := range s.Circles {
		out = append(out, physics.NewCircleCollider(len(out), c.Circle()))
	}
	for _, seg := range s.Segments {
		out = append(out, physics.NewSegmentCollider(len(out), seg.Segment()))
	}
	return out
}
