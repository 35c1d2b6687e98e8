package gridgraph

import (
	"github.com/katalvlaran/crossgrid/grid"
)

// NewGridGraph builds a GridGraph from rows[y][x]. Any byte other than Blank
// counts as filled. Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func NewGridGraph(rows [][]byte, conn Connectivity) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	filled := make([]bool, w*h)
	for y, row := range rows {
		for x, b := range row {
			filled[y*w+x] = b != Blank
		}
	}
	return newGridGraph(w, h, filled, conn), nil
}

// FromGrid views a crossword grid. A grid is never empty, so no error.
func FromGrid(g *grid.Grid, conn Connectivity) *GridGraph {
	n := g.Size()
	filled := make([]bool, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			filled[y*n+x] = !g.IsEmpty(x, y)
		}
	}
	return newGridGraph(n, n, filled, conn)
}

func newGridGraph(w, h int, filled []bool, conn Connectivity) *GridGraph {
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            conn,
		filled:          filled,
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Filled reports whether (x,y) holds a letter. Outside cells are unfilled.
func (gg *GridGraph) Filled(x, y int) bool {
	return gg.InBounds(x, y) && gg.filled[gg.index(x, y)]
}

// NeighborOffsets returns the precomputed neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
