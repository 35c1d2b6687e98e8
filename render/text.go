package render

import (
	"strings"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
)

// Text renders one row per line with cells separated by a single space.
// Empty cells stay blank.
func Text(g *grid.Grid) string {
	var b strings.Builder
	n := g.Size()
	b.Grow(n * n * 2)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(g.At(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Boxed renders the grid inside an ASCII frame with '.' for empty cells,
// which survives copy/paste and trailing-space trimming.
func Boxed(g *grid.Grid) string {
	var b strings.Builder
	n := g.Size()
	border := "+" + strings.Repeat("-", 2*n+1) + "+\n"
	b.WriteString(border)
	for y := 0; y < n; y++ {
		b.WriteString("| ")
		for x := 0; x < n; x++ {
			c := g.At(x, y)
			if c == grid.Empty {
				c = '.'
			}
			b.WriteByte(c)
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// Report lists placed words with their position and the words left over.
// The last line reads "Unused words: A, B" when something did not fit.
func Report(res *crossword.Result) string {
	var b strings.Builder
	for _, p := range res.Placements {
		b.WriteString(p.Word)
		b.WriteByte(' ')
		b.WriteString(p.Orientation.String())
		b.WriteByte(' ')
		b.WriteString(p.Start.String())
		b.WriteByte('\n')
	}
	if len(res.Unused) > 0 {
		b.WriteString("Unused words: ")
		b.WriteString(strings.Join(res.Unused, ", "))
		b.WriteByte('\n')
	}
	return b.String()
}
