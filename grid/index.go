package grid

import (
	"slices"
)

// LetterIndex maps a letter to the set of coordinates where it is written.
// The zero value is not usable; build one with NewLetterIndex.
type LetterIndex struct {
	sets map[byte]map[Coord]struct{}
}

// NewLetterIndex returns an empty index.
func NewLetterIndex() *LetterIndex {
	return &LetterIndex{sets: make(map[byte]map[Coord]struct{})}
}

// Add records that letter occupies c. Adding an existing pair is a no-op.
func (li *LetterIndex) Add(letter byte, c Coord) {
	set, ok := li.sets[letter]
	if !ok {
		set = make(map[Coord]struct{})
		li.sets[letter] = set
	}
	set[c] = struct{}{}
}

// Has reports whether letter is recorded at c.
func (li *LetterIndex) Has(letter byte, c Coord) bool {
	_, ok := li.sets[letter][c]
	return ok
}

// Len returns how many cells hold letter.
func (li *LetterIndex) Len(letter byte) int {
	return len(li.sets[letter])
}

// Coords returns the coordinates of letter ordered by row, then column.
// The slice is freshly allocated; callers may keep it across writes.
func (li *LetterIndex) Coords(letter byte) []Coord {
	set := li.sets[letter]
	if len(set) == 0 {
		return nil
	}
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoords)
	return out
}

// Letters returns every letter with at least one entry, in ascending order.
func (li *LetterIndex) Letters() []byte {
	out := make([]byte, 0, len(li.sets))
	for l, set := range li.sets {
		if len(set) > 0 {
			out = append(out, l)
		}
	}
	slices.Sort(out)
	return out
}

// Total returns the number of (letter, coord) pairs in the index.
func (li *LetterIndex) Total() int {
	n := 0
	for _, set := range li.sets {
		n += len(set)
	}
	return n
}

func (li *LetterIndex) clone() *LetterIndex {
	out := &LetterIndex{sets: make(map[byte]map[Coord]struct{}, len(li.sets))}
	for l, set := range li.sets {
		cp := make(map[Coord]struct{}, len(set))
		for c := range set {
			cp[c] = struct{}{}
		}
		out.sets[l] = cp
	}
	return out
}

// compareCoords orders row-major: Y first, then X.
func compareCoords(a, b Coord) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
