// Package draw renders geometry to a terminal using half-block characters.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

// Point is a logical canvas coordinate.
type Point = geometry2d.Vec2

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// maxCircleSegments caps the polygon used to approximate a circle.
const maxCircleSegments = 64

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set
	shown          []rune // Last rune written per terminal cell; 0 forces a rewrite

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // in sub-pixels
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets used to center the render area.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas for the given terminal dimensions.
// The canvas has 2x vertical resolution (height*2 sub-pixels).
// No scaling is applied (1:1 mapping).
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the scene.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]bool, subPixelHeight*termWidth),
		shown:          blankCells(termWidth * termHeight),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.shown = blankCells(termWidth * termHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Invalidate forgets what Render last wrote, assuming the terminal area
// has just been cleared to blanks.
func (c *Canvas) Invalidate() {
	for i := range c.shown {
		c.shown[i] = ' '
	}
}

// MarkTextDirty records that text of the given width was written over the
// canvas at a 1-based canvas position, so the next Render rewrites those cells.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	if row < 1 || row > c.termHeight {
		return
	}
	start := max(col-1, 0)
	end := min(col-1+width, c.termWidth)
	base := (row - 1) * c.termWidth
	for x := start; x < end; x++ {
		c.shown[base+x] = 0
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// isSet reports whether the pixel at actual terminal coordinates is set.
func (c *Canvas) isSet(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// toPixel converts a logical point to pixel coordinates.
func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(float64(p.X) * c.scaleX)), int(math.Round(float64(p.Y) * c.scaleY))
}

// Set sets a pixel at logical coordinates (applies scaling).
func (c *Canvas) Set(p Point) {
	c.setPixel(c.toPixel(p))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawSegment draws a segment.
func (c *Canvas) DrawSegment(s geometry2d.Segment) {
	c.DrawLine(s.A, s.B)
}

// DrawCross draws a small "x" marker centered on p.
func (c *Canvas) DrawCross(p Point, size float32) {
	c.DrawLine(p.Add(geometry2d.V(-size, -size)), p.Add(geometry2d.V(size, size)))
	c.DrawLine(p.Add(geometry2d.V(-size, size)), p.Add(geometry2d.V(size, -size)))
}

// DrawCircle draws a circle approximated by a regular polygon.
// If filled is true, the interior is filled as well.
func (c *Canvas) DrawCircle(circle geometry2d.Circle, filled bool) {
	n := 8 + int(circle.Radius*float32(c.scaleX))
	if n > maxCircleSegments {
		n = maxCircleSegments
	}

	points := c.BorrowPoints(n)
	step := 2 * math.Pi / float32(n)
	for i := range points {
		points[i] = circle.Center.Add(geometry2d.FromAngle(step*float32(i), circle.Radius))
	}
	c.DrawPolygon(points, filled)
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: float32(float64(p.X) * c.scaleX),
			Y: float32(float64(p.Y) * c.scaleY),
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(float64(minY)))
	yEnd := int(math.Ceil(float64(maxY)))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			y1, y2 := float64(scaled[i].Y), float64(scaled[(i+1)%n].Y)
			if (y1 <= scanY && y2 > scanY) || (y2 <= scanY && y1 > scanY) {
				x1, x2 := float64(scaled[i].X), float64(scaled[(i+1)%n].X)
				t := (scanY - y1) / (y2 - y1)
				intersections = append(intersections, x1+t*(x2-x1))
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
const maxChunkSize = 1400

// Render writes the cells that changed since the previous Render, using
// half-block characters and blanking cells that are no longer set.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			ch := ' '
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			}

			cell := row*c.termWidth + col
			if c.shown[cell] == ch {
				continue
			}
			c.shown[cell] = ch
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// is larger than the render area.
func (c *Canvas) RenderBorder(w io.Writer) {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, bar)
	fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, bar)
	for row := top + 1; row < bottom; row++ {
		fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts a logical point to a 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(p Point) (col, row int) {
	px, py := c.toPixel(p)
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func blankCells(n int) []rune {
	cells := make([]rune, n)
	for i := range cells {
		cells[i] = ' '
	}
	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
