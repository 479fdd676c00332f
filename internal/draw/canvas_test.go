package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

func countSet(c *Canvas) int {
	n := 0
	for _, p := range c.pixels {
		if p {
			n++
		}
	}
	return n
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(geometry2d.V(0, 0), geometry2d.V(9, 0))

	for x := 0; x < 10; x++ {
		assert.True(t, c.isSet(x, 0), "x=%d", x)
	}
	assert.Equal(t, 10, countSet(c))

	c.Clear()
	assert.Zero(t, countSet(c))
}

func TestScaledCanvas(t *testing.T) {
	// logical 20x20 onto 10 columns x 5 rows (10 sub-pixel rows)
	c := NewScaledCanvas(10, 5, 20, 20)
	c.Set(geometry2d.V(10, 10))
	assert.True(t, c.isSet(5, 5))

	col, row := c.LogicalToTerminal(geometry2d.V(10, 10))
	assert.Equal(t, 6, col)
	assert.Equal(t, 3, row)

	c.Resize(20, 10)
	assert.Equal(t, 20, c.TerminalWidth())
	assert.Equal(t, 10, c.TerminalHeight())
	c.Set(geometry2d.V(10, 10))
	assert.True(t, c.isSet(10, 10))
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(40, 20)
	circle := geometry2d.Circle{Center: geometry2d.V(20, 20), Radius: 8}

	c.DrawCircle(circle, false)
	outline := countSet(c)
	require.NotZero(t, outline)
	assert.False(t, c.isSet(20, 20), "outline only")

	c.Clear()
	c.DrawCircle(circle, true)
	assert.True(t, c.isSet(20, 20), "filled center")
	assert.Greater(t, countSet(c), outline)
}

func TestDrawSegmentAndCross(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawSegment(geometry2d.Segment{A: geometry2d.V(0, 9), B: geometry2d.V(9, 0)})
	assert.True(t, c.isSet(0, 9))
	assert.True(t, c.isSet(9, 0))

	c.Clear()
	c.DrawCross(geometry2d.V(5, 5), 1)
	assert.True(t, c.isSet(4, 4))
	assert.True(t, c.isSet(6, 4))
	assert.True(t, c.isSet(5, 5))
}

func TestRender(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(geometry2d.V(0, 0)) // top half of row 1
	c.Set(geometry2d.V(1, 0))
	c.Set(geometry2d.V(1, 1)) // full cell
	c.Set(geometry2d.V(2, 3)) // bottom half of row 2

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "\033[1;1H▀")
	assert.Contains(t, out, "\033[1;2H█")
	assert.Contains(t, out, "\033[2;3H▄")
	assert.Equal(t, 3, strings.Count(out, "\033["))
}

func TestRenderOnlyChanges(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(geometry2d.V(0, 0))
	c.Set(geometry2d.V(2, 2))

	var buf bytes.Buffer
	c.Render(&buf)
	assert.Equal(t, 2, strings.Count(buf.String(), "\033["))

	buf.Reset()
	c.Render(&buf)
	assert.Empty(t, buf.String(), "unchanged frame")

	// The cell at (1, 1) empties, so it is blanked rather than left stale.
	c.Clear()
	c.Set(geometry2d.V(2, 2))
	buf.Reset()
	c.Render(&buf)
	assert.Equal(t, "\033[1;1H ", buf.String())

	c.SetOffset(4, 1)
	c.Invalidate()
	buf.Reset()
	c.Render(&buf)
	assert.Equal(t, "\033[3;7H▀", buf.String())
}

func TestMarkTextDirty(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(geometry2d.V(1, 2))

	var buf bytes.Buffer
	c.Render(&buf)

	// Text covered (1..3, 2); its cells are rewritten next frame.
	c.MarkTextDirty(1, 2, 3)
	c.MarkTextDirty(0, 9, 3) // off canvas
	buf.Reset()
	c.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "\033[2;1H ")
	assert.Contains(t, out, "\033[2;2H▀")
	assert.Contains(t, out, "\033[2;3H ")
	assert.Equal(t, 3, strings.Count(out, "\033["))

	c.Resize(6, 3)
	buf.Reset()
	c.Render(&buf)
	assert.Empty(t, buf.String(), "resized canvas starts blank")
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(3, 1)

	var buf bytes.Buffer
	c.RenderBorder(&buf)
	assert.Empty(t, buf.String())

	c.SetOffset(2, 2)
	c.RenderBorder(&buf)
	assert.Contains(t, buf.String(), "┌───┐")
	assert.Contains(t, buf.String(), "└───┘")
}

func TestChunkWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)
	cw.WriteAt(1, 1, "hi")
	assert.Empty(t, buf.String(), "nothing written before Flush")

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;3Hhi", buf.String())

	buf.Reset()
	cw.WriteString(strings.Repeat("x", 3*maxChunkSize))
	require.NoError(t, cw.Flush())
	assert.Equal(t, 3*maxChunkSize, buf.Len())
}
