// SPDX-License-Identifier: MIT
// Package: crossgrid/crossword
//
// placement.go - intersection search, feasibility checks and the commit.
//
// Feasibility rules for a run of letters starting at (x,y) along an axis:
//   1. The start cell is inside the grid.
//   2. The cell just before the start is empty (no gluing onto a word's end).
//   3. Every cell is inside the grid and is either empty or already holds the
//      required letter (an intersection).
//   4. Every EMPTY cell has empty neighbours on both sides of the cross axis;
//      otherwise the new letter would form an unintended fragment with a
//      parallel word. Intersection cells are exempt.
//   5. The cell just after the last letter is empty.
//
// TryWordDown and TryWordAcross only read the grid. WriteWord only writes.
// TryWord combines them: first feasible candidate wins, DOWN before ACROSS.

package crossword

import (
	"log/slog"

	"github.com/katalvlaran/crossgrid/grid"
)

// Placement records one committed word.
type Placement struct {
	Word        string
	Start       grid.Coord
	Orientation grid.Orientation
}

// End returns the coordinate of the last letter.
func (p Placement) End() grid.Coord {
	dx, dy := p.Orientation.Step()
	n := len(p.Word) - 1
	return p.Start.Add(dx*n, dy*n)
}

// Cells returns every coordinate the word occupies, in writing order.
func (p Placement) Cells() []grid.Coord {
	dx, dy := p.Orientation.Step()
	out := make([]grid.Coord, len(p.Word))
	for i := range out {
		out[i] = p.Start.Add(dx*i, dy*i)
	}
	return out
}

// TryWord looks for the first legal placement of word that crosses an
// existing letter (or the seed anchor) and commits it. For every letter
// position i and every candidate cell (x,y) holding that letter it tries
// DOWN from (x, y-i), then ACROSS from (x-i, y).
//
// word must be normalized (A-Z only); anything else is never placed.
// A word that is already placed is not placed again: its existing
// placement is returned with false.
func (b *Builder) TryWord(word string) (Placement, bool) {
	if !validWord(word) {
		return Placement{}, false
	}
	if p, ok := b.placed[word]; ok {
		return p, false
	}
	for i := 0; i < len(word); i++ {
		for _, c := range b.grid.Candidates(word[i]) {
			if b.TryWordDown(word, c.X, c.Y-i) {
				return b.commit(word, grid.Coord{X: c.X, Y: c.Y - i}, grid.Down)
			}
			if b.TryWordAcross(word, c.X-i, c.Y) {
				return b.commit(word, grid.Coord{X: c.X - i, Y: c.Y}, grid.Across)
			}
		}
	}
	return Placement{}, false
}

func (b *Builder) commit(word string, at grid.Coord, o grid.Orientation) (Placement, bool) {
	p, err := b.WriteWord(word, at.X, at.Y, o)
	if err != nil {
		// A feasible run cannot fail to write; treat it as not placed.
		b.log.Error("write after feasibility check failed", slog.String("word", word), slog.Any("err", err))
		return Placement{}, false
	}
	b.log.Debug("word placed",
		slog.String("word", word),
		slog.String("at", at.String()),
		slog.String("orientation", o.String()))
	return p, true
}

// TryWordDown reports whether word fits vertically starting at (x,y).
// It never mutates the grid.
func (b *Builder) TryWordDown(word string, x, y int) bool {
	return b.fits(word, x, y, grid.Down)
}

// TryWordAcross reports whether word fits horizontally starting at (x,y).
// It never mutates the grid.
func (b *Builder) TryWordAcross(word string, x, y int) bool {
	return b.fits(word, x, y, grid.Across)
}

func (b *Builder) fits(word string, x, y int, o grid.Orientation) bool {
	g := b.grid
	if !g.InBounds(x, y) {
		return false
	}
	dx, dy := o.Step()
	cx, cy := o.Cross()

	if !g.IsEmpty(x-dx, y-dy) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !g.InBounds(x, y) {
			return false
		}
		switch cur := g.At(x, y); {
		case cur == grid.Empty:
			if !g.IsEmpty(x-cx, y-cy) || !g.IsEmpty(x+cx, y+cy) {
				return false
			}
		case cur != word[i]:
			return false
		}
		x, y = x+dx, y+dy
	}
	return g.IsEmpty(x, y)
}

// WriteWord commits word starting at (x,y) along o without any adjacency
// checks; call it only after TryWordDown/TryWordAcross said yes. The whole
// run is validated for bounds and letter conflicts before the first cell is
// touched, so a failed call leaves the grid unchanged.
//
// Errors wrap grid.ErrOutOfBounds, grid.ErrConflict or ErrInvalidWord.
func (b *Builder) WriteWord(word string, x, y int, o grid.Orientation) (Placement, error) {
	if !validWord(word) {
		return Placement{}, crosswordErrorf(methodWriteWord, "%w", &InvalidWordError{Word: word, Pos: firstInvalid(word)})
	}
	p := Placement{Word: word, Start: grid.Coord{X: x, Y: y}, Orientation: o}
	cells := p.Cells()
	for i, c := range cells {
		if !b.grid.InBounds(c.X, c.Y) {
			return Placement{}, crosswordErrorf(methodWriteWord, "%q at %v %s: %w", word, p.Start, o, grid.ErrOutOfBounds)
		}
		if cur := b.grid.At(c.X, c.Y); cur != grid.Empty && cur != word[i] {
			return Placement{}, crosswordErrorf(methodWriteWord, "%q at %v %s: %w", word, p.Start, o, grid.ErrConflict)
		}
	}
	for i, c := range cells {
		if err := b.grid.Put(c, word[i]); err != nil {
			return Placement{}, crosswordErrorf(methodWriteWord, "%w", err)
		}
	}

	b.placements = append(b.placements, p)
	if _, ok := b.member[word]; ok {
		b.placed[word] = p
	}
	return p, nil
}

// firstInvalid returns the offset of the first non A-Z byte, or -1 for "".
func firstInvalid(w string) int {
	for i := 0; i < len(w); i++ {
		if !grid.IsLetter(w[i]) {
			return i
		}
	}
	return -1
}
