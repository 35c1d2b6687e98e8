package crossword_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
)

// fixture returns a 10×10 builder holding
//
//	CAT across from (2,2)
//	DOG down   from (6,5)
//
// with the seed anchored far away at (8,0).
func fixture(t *testing.T) *crossword.Builder {
	t.Helper()
	b, err := crossword.New([]string{"cat", "dog"},
		crossword.WithSize(10),
		crossword.WithSeedCoord(grid.Coord{X: 8, Y: 0}),
	)
	require.NoError(t, err)
	_, err = b.WriteWord("CAT", 2, 2, grid.Across)
	require.NoError(t, err)
	_, err = b.WriteWord("DOG", 6, 5, grid.Down)
	require.NoError(t, err)
	return b
}

//----------------------------------------------------------------------------//
// TryWordDown / TryWordAcross
//----------------------------------------------------------------------------//

// TestTryWordDown covers every rejection rule of the vertical check.
func TestTryWordDown(t *testing.T) {
	b := fixture(t)
	cases := []struct {
		name string
		word string
		x, y int
		want bool
	}{
		{"CrossesA", "ART", 3, 2, true},
		{"EndsOnA", "BA", 3, 1, true},
		{"ThroughA", "BAT", 3, 1, true},
		{"Collision", "DOG", 3, 1, false},
		{"LetterAbove", "RE", 3, 3, false},
		{"LetterBelow", "HI", 3, 0, false},
		{"SideNeighbour", "SO", 5, 1, false},
		{"LeavesGrid", "LONG", 0, 8, false},
		{"NegativeY", "A", 0, -1, false},
		{"NegativeX", "A", -1, 0, false},
		{"XTooLarge", "A", 10, 0, false},
		{"FreeSpace", "ZIP", 0, 5, true},
		{"TouchesBottomEdge", "ZIP", 0, 7, true},
		{"ExtendsDOGDown", "DOGS", 6, 5, true},
		{"ExtendsDOGUp", "ADOG", 6, 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.TryWordDown(tc.word, tc.x, tc.y),
				"TryWordDown(%q,%d,%d)", tc.word, tc.x, tc.y)
		})
	}
}

// TestTryWordAcross mirrors TestTryWordDown along the other axis.
func TestTryWordAcross(t *testing.T) {
	b := fixture(t)
	cases := []struct {
		name string
		word string
		x, y int
		want bool
	}{
		{"CrossesG", "GO", 6, 7, true},
		{"ThroughG", "EGO", 5, 7, true},
		{"Collision", "AX", 6, 6, false},
		{"LetterBefore", "OX", 7, 6, false},
		{"LetterAfter", "AT", 4, 6, false},
		{"NeighbourBelow", "IT", 5, 4, false},
		{"LeavesGrid", "LONG", 8, 0, false},
		{"NegativeX", "A", -1, 3, false},
		{"YTooLarge", "A", 0, 10, false},
		{"ExtendsCAT", "CATS", 2, 2, true},
		{"PrefixedCAT", "SCAT", 1, 2, true},
		{"StartsInsideCAT", "AT", 3, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.TryWordAcross(tc.word, tc.x, tc.y),
				"TryWordAcross(%q,%d,%d)", tc.word, tc.x, tc.y)
		})
	}
}

// TestTryWord_Pure snapshots the grid around every feasibility probe.
func TestTryWord_Pure(t *testing.T) {
	b := fixture(t)
	before := b.Grid().Rows()
	beforeIdx := b.Grid().Index().Total()

	for y := -2; y < 12; y++ {
		for x := -2; x < 12; x++ {
			for _, w := range []string{"CAT", "DOG", "GOAT", "TAG", "A"} {
				b.TryWordDown(w, x, y)
				b.TryWordAcross(w, x, y)
			}
		}
	}
	if diff := cmp.Diff(before, b.Grid().Rows()); diff != "" {
		t.Fatalf("feasibility checks mutated the grid (-before +after):\n%s", diff)
	}
	assert.Equal(t, beforeIdx, b.Grid().Index().Total())
}

//----------------------------------------------------------------------------//
// WriteWord
//----------------------------------------------------------------------------//

// TestWriteWord_RoundTrip writes along both axes and reads the words back.
func TestWriteWord_RoundTrip(t *testing.T) {
	b := fixture(t)
	g := b.Grid()

	got, err := g.ReadWord(grid.Coord{X: 2, Y: 2}, grid.Across, 3)
	require.NoError(t, err)
	assert.Equal(t, "CAT", got)
	got, err = g.ReadWord(grid.Coord{X: 6, Y: 5}, grid.Down, 3)
	require.NoError(t, err)
	assert.Equal(t, "DOG", got)

	for _, l := range []byte("CATDOG") {
		for _, c := range g.Index().Coords(l) {
			assert.Equal(t, l, g.At(c.X, c.Y))
		}
	}
	require.NoError(t, g.CheckConsistency())
	assert.Equal(t, crossword.StatePlaced, b.State("cat"))
}

// TestWriteWord_Errors verifies that rejected writes leave the grid unchanged.
func TestWriteWord_Errors(t *testing.T) {
	b := fixture(t)
	before := b.Grid().Clone()

	cases := []struct {
		name string
		word string
		x, y int
		o    grid.Orientation
		err  error
	}{
		{"OffRightEdge", "CAT", 8, 0, grid.Across, grid.ErrOutOfBounds},
		{"OffBottomEdge", "CAT", 0, 8, grid.Down, grid.ErrOutOfBounds},
		{"NegativeStart", "CAT", 0, -1, grid.Down, grid.ErrOutOfBounds},
		{"Conflict", "DOG", 2, 2, grid.Across, grid.ErrConflict},
		{"Lowercase", "dog", 0, 0, grid.Across, crossword.ErrInvalidWord},
		{"Empty", "", 0, 0, grid.Across, crossword.ErrInvalidWord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.WriteWord(tc.word, tc.x, tc.y, tc.o)
			require.ErrorIs(t, err, tc.err)
			assert.True(t, before.Equal(b.Grid()), "grid changed after failed write")
		})
	}
	require.NoError(t, b.Grid().CheckConsistency())
}

//----------------------------------------------------------------------------//
// TryWord
//----------------------------------------------------------------------------//

// TestTryWord_PrefersDown checks the search order: first candidate, DOWN first.
func TestTryWord_PrefersDown(t *testing.T) {
	b, err := crossword.New([]string{"hello"}, crossword.WithSeedCoord(grid.Coord{X: 5, Y: 5}))
	require.NoError(t, err)

	p, ok := b.TryWord("HELLO")
	require.True(t, ok)
	assert.Equal(t, crossword.Placement{Word: "HELLO", Start: grid.Coord{X: 5, Y: 4}, Orientation: grid.Down}, p)
	assert.Equal(t, grid.Coord{X: 5, Y: 8}, p.End())
}

// TestTryWord_FallsBackToAcross blocks the vertical option near the top edge.
func TestTryWord_FallsBackToAcross(t *testing.T) {
	// E is the third letter, so going down would have to start on row -1.
	b, err := crossword.New([]string{"thEn"}, crossword.WithSeedCoord(grid.Coord{X: 4, Y: 1}))
	require.NoError(t, err)

	p, ok := b.TryWord("THEN")
	require.True(t, ok)
	assert.Equal(t, grid.Across, p.Orientation)
	assert.Equal(t, grid.Coord{X: 2, Y: 1}, p.Start)
}

// TestTryWord_NoIntersection leaves the grid alone when nothing matches.
func TestTryWord_NoIntersection(t *testing.T) {
	b, err := crossword.New([]string{"cat"}, crossword.WithSeedCoord(grid.Coord{X: 5, Y: 5}))
	require.NoError(t, err)

	_, ok := b.TryWord("CAT")
	assert.False(t, ok)
	_, ok = b.TryWord("not normalized")
	assert.False(t, ok)
	assert.Equal(t, 0, b.Grid().FilledCount())
}
