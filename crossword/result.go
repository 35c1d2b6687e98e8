package crossword

import (
	"slices"

	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/gridgraph"
)

// Result is a snapshot of a Builder: the finished grid, what went where and
// which words never fitted. Grid is a private copy.
type Result struct {
	Grid       *grid.Grid
	Placements []Placement // commit order
	Unused     []string    // sorted; empty when every word was placed
	Passes     int
	Seed       grid.Coord
	SeedLetter byte
}

// Placed returns the placed words in commit order.
func (r *Result) Placed() []string {
	out := make([]string, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = p.Word
	}
	return out
}

// Complete reports whether every word was placed.
func (r *Result) Complete() bool { return len(r.Unused) == 0 }

// Islands returns the number of 4-connected groups of filled cells.
// A healthy crossword has 1 (or 0 when nothing was placed).
func (r *Result) Islands() int {
	gg := gridgraph.FromGrid(r.Grid, gridgraph.Conn4)
	return len(gg.ConnectedComponents())
}

// Verify re-checks the grid invariants on the snapshot:
//   - buffer and letter index agree;
//   - every placement reads back as its word;
//   - every filled cell belongs to some placement;
//   - the cells before and after each word are empty, unless a longer
//     collinear word was written over it;
//   - a letter that is not an intersection has empty cross-axis neighbours.
//
// Failures wrap ErrVerify.
func (r *Result) Verify() error {
	g := r.Grid
	if err := g.CheckConsistency(); err != nil {
		return crosswordErrorf(methodVerify, "%w: %w", ErrVerify, err)
	}

	cover := make(map[grid.Coord]uint8, g.FilledCount())
	for _, p := range r.Placements {
		got, err := g.ReadWord(p.Start, p.Orientation, len(p.Word))
		if err != nil {
			return crosswordErrorf(methodVerify, "%q: %w: %w", p.Word, ErrVerify, err)
		}
		if got != p.Word {
			return crosswordErrorf(methodVerify, "%q at %v %s reads %q: %w", p.Word, p.Start, p.Orientation, got, ErrVerify)
		}
		for _, c := range p.Cells() {
			cover[c] |= 1 << p.Orientation
		}
	}
	if n := g.FilledCount(); n != len(cover) {
		return crosswordErrorf(methodVerify, "%d filled cells, %d covered by placements: %w", n, len(cover), ErrVerify)
	}

	both := uint8(1<<grid.Down | 1<<grid.Across)
	for _, p := range r.Placements {
		dx, dy := p.Orientation.Step()
		cx, cy := p.Orientation.Cross()
		before := p.Start.Add(-dx, -dy)
		after := p.End().Add(dx, dy)
		if (!g.IsEmpty(before.X, before.Y) || !g.IsEmpty(after.X, after.Y)) && !r.extended(p) {
			return crosswordErrorf(methodVerify, "%q at %v %s touches another word end-on: %w", p.Word, p.Start, p.Orientation, ErrVerify)
		}
		for _, c := range p.Cells() {
			if cover[c] == both {
				continue
			}
			if !g.IsEmpty(c.X-cx, c.Y-cy) || !g.IsEmpty(c.X+cx, c.Y+cy) {
				return crosswordErrorf(methodVerify, "%q has a side neighbour at %v: %w", p.Word, c, ErrVerify)
			}
		}
	}
	return nil
}

// extended reports whether a longer collinear placement covers all of p,
// as when CATS is later written over CAT.
func (r *Result) extended(p Placement) bool {
	first, last := p.Start, p.End()
	for _, q := range r.Placements {
		if q == p || q.Orientation != p.Orientation || len(q.Word) <= len(p.Word) {
			continue
		}
		qs, qe := q.Start, q.End()
		if p.Orientation == grid.Down {
			if qs.X == first.X && qs.Y <= first.Y && qe.Y >= last.Y {
				return true
			}
		} else if qs.Y == first.Y && qs.X <= first.X && qe.X >= last.X {
			return true
		}
	}
	return false
}

// Placement returns the placement of word (normalized lookup) if present.
func (r *Result) Placement(word string) (Placement, bool) {
	w, err := normalizeWord(word)
	if err != nil {
		return Placement{}, false
	}
	i := slices.IndexFunc(r.Placements, func(p Placement) bool { return p.Word == w })
	if i < 0 {
		return Placement{}, false
	}
	return r.Placements[i], true
}
