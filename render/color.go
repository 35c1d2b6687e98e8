package render

import (
	"strings"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
)

var palette = [...]string{"red", "green", "yellow", "cyan", "orange", "pink", "purple", "chartreuse", "light gray"}

// Color renders the grid like Text, painting each placed word in its own
// foreground color. A word list in matching colors is printed first.
// Intersections take the color of the word written first.
func Color(res *crossword.Result) string {
	cellToColor := make(map[grid.Coord]string)
	var b strings.Builder

	for i, p := range res.Placements {
		color := palette[i%len(palette)]
		b.WriteString(ansi.FGColorName(color))
		b.WriteString(p.Word)
		b.WriteByte(' ')
		for _, c := range p.Cells() {
			if _, ok := cellToColor[c]; !ok {
				cellToColor[c] = color
			}
		}
	}
	b.WriteString(ansi.Clear)
	b.WriteByte('\n')

	g := res.Grid
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if color, ok := cellToColor[grid.Coord{X: x, Y: y}]; ok {
				b.WriteString(ansi.FGColorName(color))
			} else {
				b.WriteString(ansi.Clear)
			}
			b.WriteByte(g.At(x, y))
		}
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Clear)

	return b.String()
}
