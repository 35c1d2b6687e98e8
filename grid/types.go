package grid

import "fmt"

// Empty is the value of a cell that holds no letter.
const Empty byte = ' '

// Coord addresses a single cell: X is the column, Y the row.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Orientation is the axis a word is written along.
type Orientation int

const (
	// Down writes top to bottom; Y increases.
	Down Orientation = iota
	// Across writes left to right; X increases.
	Across
)

// Step returns the per-letter offset for o.
func (o Orientation) Step() (dx, dy int) {
	if o == Across {
		return 1, 0
	}
	return 0, 1
}

// Cross returns the offset of the cross axis (the neighbours that must stay
// clear beside a freshly written letter).
func (o Orientation) Cross() (dx, dy int) {
	if o == Across {
		return 0, 1
	}
	return 1, 0
}

// String returns "down" or "across".
func (o Orientation) String() string {
	switch o {
	case Down:
		return "down"
	case Across:
		return "across"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// IsLetter reports whether b is an uppercase ASCII letter.
func IsLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
