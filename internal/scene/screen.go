package scene

import (
	"fmt"
	"time"

	"github.com/tomz197/geometry2d/internal/physics"
)

const (
	crossSize = 2
	helpText  = "arrows/wasd move  q/e rotate  +/- size  tab shape  x quit"
)

// drawFrame draws the current frame in one flush. The terminal is cleared
// only after a resize or an idle switch; otherwise the canvas sends the
// cells that changed.
func (v *Viewer) drawFrame() error {
	cw := v.chunkWriter
	if v.redraw {
		cw.WriteString("\033[H\033[2J")
		v.canvas.Invalidate()
		v.canvas.RenderBorder(cw)
		v.redraw = false
	}

	v.canvas.Clear()
	v.drawScene()
	v.canvas.Render(cw)

	if v.idle {
		v.drawIdleScreen()
	} else {
		v.drawHitLabels()
		v.drawHUD()
	}

	return cw.Flush()
}

// writeText writes s at a 1-based canvas position. The covered cells are
// repainted next frame, which erases text that is not written again.
func (v *Viewer) writeText(col, row int, s string) {
	v.chunkWriter.WriteAt(col, row, s)
	v.canvas.MarkTextDirty(col, row, len(s))
}

// drawScene draws scene shapes, filling or marking the ones the probe hits.
func (v *Viewer) drawScene() {
	s := v.state
	for i := 0; i < len(s.colliders); i++ {
		c := s.Collider(i)
		switch c.Kind {
		case physics.KindCircle:
			v.canvas.DrawCircle(c.Circle, s.IsHit(i))
		case physics.KindSegment:
			v.canvas.DrawSegment(c.Segment)
			if s.IsHit(i) {
				v.canvas.DrawCross(c.Segment.A, crossSize)
				v.canvas.DrawCross(c.Segment.B, crossSize)
			}
		}
	}

	for _, p := range s.Crossings {
		v.canvas.DrawCross(p, crossSize)
	}

	switch s.Probe.Mode {
	case ModeCircle:
		v.canvas.DrawCircle(s.Probe.Circle(), false)
		v.canvas.Set(s.Probe.Pos)
	case ModeSegment:
		v.canvas.DrawSegment(s.Probe.Segment())
	}
}

// drawHitLabels tags every hit shape with its index, at a circle's center
// or a segment's midpoint.
func (v *Viewer) drawHitLabels() {
	s := v.state
	for _, i := range s.Hits {
		c := s.Collider(i)
		at := c.Circle.Center
		if c.Kind == physics.KindSegment {
			at = c.Segment.A.Add(c.Segment.B).Scale(0.5)
		}
		col, row := v.canvas.LogicalToTerminal(at)
		if col < 1 || row < 1 || col > v.canvas.TerminalWidth() || row > v.canvas.TerminalHeight() {
			continue
		}
		v.writeText(col, row, fmt.Sprintf("#%d", i))
	}
}

// drawHUD draws the text overlay.
// Fields use fixed-width formatting so values line up between frames.
func (v *Viewer) drawHUD() {
	s := v.state
	termWidth := v.canvas.TerminalWidth()
	termHeight := v.canvas.TerminalHeight()

	probeText := fmt.Sprintf("%-7s X:%-6.1f Y:%-6.1f", s.Probe.Mode, s.Probe.Pos.X, s.Probe.Pos.Y)
	v.writeText(2, 1, probeText)

	hitsText := fmt.Sprintf("Hits: %-3d", len(s.Hits))
	v.writeText(termWidth-len(hitsText)-1, 1, hitsText)

	if termHeight < 4 {
		return
	}

	if s.Circle.Index >= 0 {
		circleText := fmt.Sprintf("circle #%-2d euclidean %-6.1f manhattan %-6.1f diagonal %-6.1f",
			s.Circle.Index, s.Circle.Euclidean, s.Circle.Manhattan, s.Circle.Diagonal)
		v.writeText(2, termHeight-1, circleText)
	}

	if s.Segment.Index >= 0 {
		side := "cw"
		if s.Segment.CCW {
			side = "ccw"
		}
		segmentText := fmt.Sprintf("segment #%-2d distance %-6.1f side %-3s",
			s.Segment.Index, s.Segment.Distance, side)
		v.writeText(2, termHeight, segmentText)
	}

	if len(helpText)+2 < termWidth {
		v.writeText(2, 2, helpText)
	}
}

// drawIdleScreen draws the inactivity warning.
func (v *Viewer) drawIdleScreen() {
	centerX := v.canvas.TerminalWidth() / 2
	centerY := v.canvas.TerminalHeight() / 2

	title := "INACTIVITY WARNING"
	v.writeText(centerX-len(title)/2, centerY-2, title)

	left := max(0, int((v.idleTimeout - time.Since(v.lastInput)).Seconds()))
	msg := fmt.Sprintf("You will be disconnected in %d seconds.", left)
	v.writeText(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	v.writeText(centerX-len(hint)/2, centerY+2, hint)
}
