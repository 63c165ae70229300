package raycast

import "math"

// Grid is an immutable tile map. A cell value of 0 is walkable floor, any
// positive value is a solid wall. The value itself only matters to renderers.
type Grid struct {
	cells    [][]int
	rows     int
	cols     int
	tileSize float64
}

// NewGrid validates and copies cells (row-major) into a new Grid.
func NewGrid(cells [][]int, tileSize float64) (*Grid, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, configErr("tile size", "must be a positive finite number, got %v", tileSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, configErr("grid", "must have at least one row and one column")
	}

	cols := len(cells[0])
	copied := make([][]int, len(cells))
	for row, line := range cells {
		if len(line) != cols {
			return nil, configErr("grid", "row %d has %d cells, expected %d", row, len(line), cols)
		}
		copied[row] = make([]int, cols)
		for col, v := range line {
			if v < 0 {
				return nil, configErr("grid", "cell (%d,%d) is negative: %d", col, row, v)
			}
			copied[row][col] = v
		}
	}

	return &Grid{
		cells:    copied,
		rows:     len(cells),
		cols:     cols,
		tileSize: tileSize,
	}, nil
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the world size of one cell edge.
func (g *Grid) TileSize() float64 { return g.tileSize }

// Width returns the world width (cols * tileSize).
func (g *Grid) Width() float64 { return float64(g.cols) * g.tileSize }

// Height returns the world height (rows * tileSize).
func (g *Grid) Height() float64 { return float64(g.rows) * g.tileSize }

// Center returns the world-space center of the grid.
func (g *Grid) Center() (float64, float64) {
	return g.Width() / 2, g.Height() / 2
}

// Cell returns the value at (col, row). ok is false outside the grid.
func (g *Grid) Cell(col, row int) (value int, ok bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0, false
	}
	return g.cells[row][col], true
}

// CellAt returns the value of the cell containing world point (x, y).
func (g *Grid) CellAt(x, y float64) (value int, ok bool) {
	if !g.IsInBounds(x, y) {
		return 0, false
	}
	return g.Cell(int(math.Floor(x/g.tileSize)), int(math.Floor(y/g.tileSize)))
}

// IsInBounds reports whether (x, y) lies strictly inside the grid.
// Points on the outer boundary are out of bounds.
func (g *Grid) IsInBounds(x, y float64) bool {
	return x > 0 && x < g.Width() && y > 0 && y < g.Height()
}

// CanWalk reports whether (x, y) is in bounds and inside a floor cell.
func (g *Grid) CanWalk(x, y float64) bool {
	v, ok := g.CellAt(x, y)
	return ok && v == 0
}

// StepCap bounds the number of grid-line crossings a single search may make.
func (g *Grid) StepCap() int {
	return max(g.cols, g.rows) + 1
}
