package scene

import "time"

// Probe defaults and motion, in logical units per second.
const (
	defaultProbeRadius = 6
	defaultProbeLength = 24
	probeSpeed         = 40.0
	probeRotateSpeed   = 2.5 // radians per second
	probeGrowSpeed     = 12.0
	minProbeSize       = 1.0
)

// Broad-phase grid cell size.
const gridCellSize = 16

// maxSceneSize bounds scene width and height, which bounds per-session memory.
const maxSceneSize = 10000

// Max render resolution; larger terminals get a centered, bordered canvas.
const (
	maxTermWidth  = 200
	maxTermHeight = 60
)

// Frame loop.
const (
	defaultFPS      = 30
	maxFrameDelta   = 250 * time.Millisecond
	idleWarnPercent = 75 // warn once this share of the idle timeout has passed
)
