package scene

import (
	"github.com/pkg/errors"

	"github.com/tomz197/geometry2d/internal/input"
	"github.com/tomz197/geometry2d/internal/physics"
	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

// Mode is the probe's shape.
type Mode uint8

const (
	ModeCircle Mode = iota
	ModeSegment
)

func (m Mode) String() string {
	switch m {
	case ModeCircle:
		return "circle"
	case ModeSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// ParseMode parses "circle" or "segment".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "circle":
		return ModeCircle, nil
	case "segment":
		return ModeSegment, nil
	}
	return 0, errors.Errorf("unknown probe mode %q", s)
}

// probeID marks the probe's collider; scene colliders use their index.
const probeID = -1

// Probe is the user-controlled shape tested against the scene.
// As a circle it uses Radius; as a segment it is centered on Pos,
// Length long, pointing along Angle.
type Probe struct {
	Mode   Mode
	Pos    geometry2d.Vec2
	Angle  float32
	Radius float32
	Length float32
}

// NewProbe creates a probe from its scene description, which is
// expected to have passed Scene.Validate.
func NewProbe(spec ProbeSpec) Probe {
	mode, _ := ParseMode(spec.Mode)
	return Probe{
		Mode:   mode,
		Pos:    geometry2d.V(spec.X, spec.Y),
		Radius: spec.Radius,
		Length: spec.Length,
	}
}

// Update applies one frame of input. The center stays inside bounds and the
// size stays between minProbeSize and half the smaller side of bounds.
func (p *Probe) Update(in input.Input, dt float32, bounds geometry2d.Rect) {
	if in.Switch {
		if p.Mode == ModeCircle {
			p.Mode = ModeSegment
		} else {
			p.Mode = ModeCircle
		}
	}

	var dir geometry2d.Vec2
	if in.Left {
		dir.X--
	}
	if in.Right {
		dir.X++
	}
	if in.Up {
		dir.Y--
	}
	if in.Down {
		dir.Y++
	}
	p.Pos = p.Pos.Add(dir.Unit().Scale(probeSpeed * dt))
	p.Pos.X = clamp(p.Pos.X, bounds.Min.X, bounds.Max.X)
	p.Pos.Y = clamp(p.Pos.Y, bounds.Min.Y, bounds.Max.Y)

	if in.RotateLeft {
		p.Angle -= probeRotateSpeed * dt
	}
	if in.RotateRight {
		p.Angle += probeRotateSpeed * dt
	}

	var grow float32
	if in.Grow {
		grow += probeGrowSpeed * dt
	}
	if in.Shrink {
		grow -= probeGrowSpeed * dt
	}
	maxSize := min(bounds.Max.X-bounds.Min.X, bounds.Max.Y-bounds.Min.Y) / 2
	p.Radius = clamp(p.Radius+grow, minProbeSize, maxSize)
	p.Length = clamp(p.Length+2*grow, minProbeSize, 2*maxSize)
}

// Circle returns the probe as a circle.
func (p Probe) Circle() geometry2d.Circle {
	return geometry2d.Circle{Center: p.Pos, Radius: p.Radius}
}

// Segment returns the probe as a segment.
func (p Probe) Segment() geometry2d.Segment {
	half := geometry2d.FromAngle(p.Angle, p.Length/2)
	return geometry2d.Segment{A: p.Pos.Sub(half), B: p.Pos.Add(half)}
}

// Collider returns the probe's shape for the current mode.
func (p Probe) Collider() physics.Collider {
	if p.Mode == ModeSegment {
		return physics.NewSegmentCollider(probeID, p.Segment())
	}
	return physics.NewCircleCollider(probeID, p.Circle())
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
