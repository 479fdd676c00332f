package physics

import (
	"math"

	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

// SpatialGrid is a uniform grid for broad-phase collision detection in a
// bounded world. Items are inserted by their bounding box into every cell the
// box covers, then queried by box.
//
// Coordinates outside the world clamp to the border cells, so nothing is ever
// lost; far-away items just end up sharing the edge cells.
type SpatialGrid struct {
	cellSize    float32
	invCellSize float32 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell

	// marks[index] == epoch when index was already visited by the current query
	marks []uint32
	epoch uint32
}

// gridCell stores the indices of objects that overlap a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// maxGridCells caps the cell count; larger worlds get coarser cells.
const maxGridCells = 1 << 16

// NewSpatialGrid creates a spatial grid covering the given world dimensions.
// cellSize should be close to the typical object size. It is doubled until
// the grid fits in maxGridCells cells.
func NewSpatialGrid(worldW, worldH, cellSize float32) *SpatialGrid {
	cols, rows := cellCount(worldW, cellSize), cellCount(worldH, cellSize)
	for cols*rows > maxGridCells {
		cellSize *= 2
		cols, rows = cellCount(worldW, cellSize), cellCount(worldH, cellSize)
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// cellCount returns how many cells of size cell span length, at least one.
// Non-finite or non-positive inputs collapse to a single cell.
func cellCount(length, cell float32) int {
	n := math.Ceil(float64(length) / float64(cell))
	if !(n >= 1) || math.IsInf(n, 0) {
		return 1
	}
	if n > maxGridCells {
		return maxGridCells + 1
	}
	return int(n)
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by a non-negative index) to every cell
// covered by bounds.
func (g *SpatialGrid) Insert(bounds geometry2d.Rect, index int) {
	if index >= len(g.marks) {
		g.marks = append(g.marks, make([]uint32, index+1-len(g.marks))...)
	}

	minCol, minRow := g.posToCell(bounds.Min.X, bounds.Min.Y)
	maxCol, maxRow := g.posToCell(bounds.Max.X, bounds.Max.Y)
	for r := minRow; r <= maxRow; r++ {
		rowOffset := r * g.cols
		for c := minCol; c <= maxCol; c++ {
			g.cells[rowOffset+c].items = append(g.cells[rowOffset+c].items, index)
		}
	}
}

// QueryRect calls fn once for each item index sharing a cell with bounds.
// If fn returns true, iteration stops early (useful for "find first" queries).
func (g *SpatialGrid) QueryRect(bounds geometry2d.Rect, fn func(index int) bool) {
	g.epoch++
	if g.epoch == 0 {
		// wrapped around: stale marks could match again
		clear(g.marks)
		g.epoch = 1
	}

	minCol, minRow := g.posToCell(bounds.Min.X, bounds.Min.Y)
	maxCol, maxRow := g.posToCell(bounds.Max.X, bounds.Max.Y)
	for r := minRow; r <= maxRow; r++ {
		rowOffset := r * g.cols
		for c := minCol; c <= maxCol; c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if g.marks[itemIdx] == g.epoch {
					continue
				}
				g.marks[itemIdx] = g.epoch
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// Cols returns the number of grid columns.
func (g *SpatialGrid) Cols() int {
	return g.cols
}

// Rows returns the number of grid rows.
func (g *SpatialGrid) Rows() int {
	return g.rows
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *SpatialGrid) posToCell(x, y float32) (col, row int) {
	col = int(math.Floor(float64(x * g.invCellSize)))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(float64(y * g.invCellSize)))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
