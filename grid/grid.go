package grid

import (
	"bytes"
	"fmt"
)

// Grid is a fixed-size square letter buffer plus its letter index.
// Cells are stored row-major; (x,y) lives at y*size + x.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	size    int
	cells   []byte
	index   *LetterIndex
	anchors []Anchor
}

// Anchor is a synthetic letter occurrence used only to bootstrap the
// intersection search. It never occupies a cell.
type Anchor struct {
	Letter byte
	At     Coord
}

// New allocates a size×size grid with every cell Empty.
// Returns ErrBadSize if size < 1.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrBadSize)
	}
	cells := make([]byte, size*size)
	for i := range cells {
		cells[i] = Empty
	}
	return &Grid{size: size, cells: cells, index: NewLetterIndex()}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) offset(x, y int) int {
	return y*g.size + x
}

// At returns the cell at (x,y). Coordinates outside the grid read as Empty,
// which lets neighbour checks at the border skip their own bounds tests.
func (g *Grid) At(x, y int) byte {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.offset(x, y)]
}

// IsEmpty reports whether (x,y) holds no letter (outside counts as empty).
func (g *Grid) IsEmpty(x, y int) bool {
	return g.At(x, y) == Empty
}

// Put writes letter at c and records it in the letter index.
// This is the only way cells change. Rewriting a cell with the letter it
// already holds is allowed (that is an intersection); any other letter is
// rejected with ErrConflict and the grid is left untouched.
func (g *Grid) Put(c Coord, letter byte) error {
	if !g.InBounds(c.X, c.Y) {
		return fmt.Errorf("Put%v: %w", c, ErrOutOfBounds)
	}
	if !IsLetter(letter) {
		return fmt.Errorf("Put%v %q: %w", c, letter, ErrBadLetter)
	}
	if cur := g.cells[g.offset(c.X, c.Y)]; cur != Empty && cur != letter {
		return fmt.Errorf("Put%v %q over %q: %w", c, letter, cur, ErrConflict)
	}
	g.cells[g.offset(c.X, c.Y)] = letter
	g.index.Add(letter, c)
	return nil
}

// Anchor registers a synthetic occurrence of letter at c. The cell itself is
// left untouched.
func (g *Grid) Anchor(letter byte, c Coord) error {
	if !g.InBounds(c.X, c.Y) {
		return fmt.Errorf("Anchor%v: %w", c, ErrOutOfBounds)
	}
	if !IsLetter(letter) {
		return fmt.Errorf("Anchor%v %q: %w", c, letter, ErrBadLetter)
	}
	g.anchors = append(g.anchors, Anchor{Letter: letter, At: c})
	return nil
}

// Anchors returns a copy of the registered anchors.
func (g *Grid) Anchors() []Anchor {
	return append([]Anchor(nil), g.anchors...)
}

// Index exposes the letter index for reading.
func (g *Grid) Index() *LetterIndex { return g.index }

// Candidates lists every coordinate where letter may serve as an
// intersection: indexed cells first (row-major), then anchors for letter
// that are not already covered by an indexed cell.
func (g *Grid) Candidates(letter byte) []Coord {
	out := g.index.Coords(letter)
	for _, a := range g.anchors {
		if a.Letter == letter && !g.index.Has(letter, a.At) {
			out = append(out, a.At)
		}
	}
	return out
}

// ReadWord reads n letters starting at start along o. Empty cells are
// returned as Empty bytes. Returns ErrOutOfBounds if the run leaves the grid.
func (g *Grid) ReadWord(start Coord, o Orientation, n int) (string, error) {
	dx, dy := o.Step()
	end := start.Add(dx*(n-1), dy*(n-1))
	if n < 1 || !g.InBounds(start.X, start.Y) || !g.InBounds(end.X, end.Y) {
		return "", fmt.Errorf("ReadWord%v %s len %d: %w", start, o, n, ErrOutOfBounds)
	}
	buf := make([]byte, n)
	for i, c := 0, start; i < n; i, c = i+1, c.Add(dx, dy) {
		buf[i] = g.cells[g.offset(c.X, c.Y)]
	}
	return string(buf), nil
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, b := range g.cells {
		if b != Empty {
			n++
		}
	}
	return n
}

// Rows returns a deep copy of the buffer as rows[y][x].
func (g *Grid) Rows() [][]byte {
	rows := make([][]byte, g.size)
	for y := range rows {
		rows[y] = bytes.Clone(g.cells[y*g.size : (y+1)*g.size])
	}
	return rows
}

// Clone returns an independent copy of g, index and anchors included.
func (g *Grid) Clone() *Grid {
	return &Grid{
		size:    g.size,
		cells:   bytes.Clone(g.cells),
		index:   g.index.clone(),
		anchors: append([]Anchor(nil), g.anchors...),
	}
}

// Equal reports whether g and other hold identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.size == other.size && bytes.Equal(g.cells, other.cells)
}

// CheckConsistency verifies that every indexed coordinate holds its letter
// and that every non-empty cell is indexed. Returns ErrInconsistent wrapped
// with the first offending cell.
func (g *Grid) CheckConsistency() error {
	for _, l := range g.index.Letters() {
		for _, c := range g.index.Coords(l) {
			if got := g.At(c.X, c.Y); got != l {
				return fmt.Errorf("index says %q at %v, cell holds %q: %w", l, c, got, ErrInconsistent)
			}
		}
	}
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			b := g.cells[g.offset(x, y)]
			if b == Empty {
				continue
			}
			if !g.index.Has(b, Coord{X: x, Y: y}) {
				return fmt.Errorf("cell (%d,%d) holds %q but is not indexed: %w", x, y, b, ErrInconsistent)
			}
		}
	}
	return nil
}
