package crossword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
)

type write struct {
	word string
	x, y int
	o    grid.Orientation
}

// written builds a result from raw WriteWord calls, which skip every
// adjacency rule, so broken layouts can be produced on purpose.
func written(t *testing.T, writes ...write) *crossword.Result {
	t.Helper()
	b, err := crossword.New([]string{"cat"},
		crossword.WithSize(10),
		crossword.WithSeedCoord(grid.Coord{X: 8, Y: 8}),
	)
	require.NoError(t, err)
	for _, w := range writes {
		_, err := b.WriteWord(w.word, w.x, w.y, w.o)
		require.NoError(t, err)
	}
	return b.Result()
}

//----------------------------------------------------------------------------//
// Verify
//----------------------------------------------------------------------------//

// TestVerify_Accepts covers legal layouts, including a word written over a
// shorter collinear one.
func TestVerify_Accepts(t *testing.T) {
	cases := []struct {
		name   string
		writes []write
	}{
		{"Empty", nil},
		{"Crossing", []write{{"CAT", 2, 2, grid.Across}, {"ART", 3, 2, grid.Down}}},
		{"Apart", []write{{"CAT", 2, 2, grid.Across}, {"DOG", 6, 5, grid.Down}}},
		{"Extended", []write{{"CAT", 2, 2, grid.Across}, {"CATS", 2, 2, grid.Across}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, written(t, tc.writes...).Verify())
		})
	}
}

// TestVerify_Rejects builds layouts the placement rules forbid and expects
// each to be reported.
func TestVerify_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		writes []write
		edit   func(*crossword.Result)
		msg    string
	}{
		{
			name:   "SideBySide",
			writes: []write{{"CAT", 2, 2, grid.Across}, {"DOG", 2, 3, grid.Across}},
			msg:    "side neighbour",
		},
		{
			name:   "EndOn",
			writes: []write{{"CAT", 2, 2, grid.Across}, {"DOG", 5, 2, grid.Across}},
			msg:    "end-on",
		},
		{
			name:   "EndOnDown",
			writes: []write{{"CAT", 4, 1, grid.Down}, {"OX", 4, 4, grid.Down}},
			msg:    "end-on",
		},
		{
			name:   "ReadsBackWrong",
			writes: []write{{"CAT", 2, 2, grid.Across}},
			edit:   func(r *crossword.Result) { r.Placements[0].Word = "COT" },
			msg:    `reads "CAT"`,
		},
		{
			name:   "UncoveredLetter",
			writes: []write{{"CAT", 2, 2, grid.Across}, {"DOG", 6, 5, grid.Down}},
			edit:   func(r *crossword.Result) { r.Placements = r.Placements[:1] },
			msg:    "covered by placements",
		},
		{
			name:   "LeavesGrid",
			writes: []write{{"CAT", 2, 2, grid.Across}},
			edit:   func(r *crossword.Result) { r.Placements[0].Start = grid.Coord{X: 8, Y: 2} },
			msg:    `"CAT"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := written(t, tc.writes...)
			if tc.edit != nil {
				tc.edit(res)
			}
			err := res.Verify()
			require.ErrorIs(t, err, crossword.ErrVerify)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
