package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/render"
)

// helloWorld is the fixed HELLO/WORLD layout on a 10×10 grid.
func helloWorld(t *testing.T, words ...string) *crossword.Result {
	t.Helper()
	if len(words) == 0 {
		words = []string{"hello", "world"}
	}
	res, err := crossword.Generate(words, crossword.WithSeedCoord(grid.Coord{X: 5, Y: 5}))
	require.NoError(t, err)
	return res
}

func TestText(t *testing.T) {
	res := helloWorld(t)
	lines := strings.Split(strings.TrimSuffix(render.Text(res.Grid), "\n"), "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Len(t, l, 19, "10 cells and 9 separators")
	}
	assert.Equal(t, strings.Repeat(" ", 10)+"H"+strings.Repeat(" ", 8), lines[4])
	assert.Equal(t, strings.Repeat(" ", 8)+"W O R L D"+strings.Repeat(" ", 2), lines[8])
}

func TestBoxed(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	require.NoError(t, g.Put(grid.Coord{X: 1, Y: 1}, 'X'))

	want := "" +
		"+-------+\n" +
		"| . . . |\n" +
		"| . X . |\n" +
		"| . . . |\n" +
		"+-------+\n"
	assert.Equal(t, want, render.Boxed(g))
}

func TestReport(t *testing.T) {
	res := helloWorld(t, "hello", "world", "xyz", "qq")
	assert.Equal(t, ""+
		"HELLO down (5,4)\n"+
		"WORLD across (4,8)\n"+
		"Unused words: QQ, XYZ\n", render.Report(res))

	assert.NotContains(t, render.Report(helloWorld(t)), "Unused")
}

func TestColor(t *testing.T) {
	res := helloWorld(t)
	out := render.Color(res)
	assert.Contains(t, out, "HELLO")
	assert.Contains(t, out, "WORLD")
	// Every letter of the grid is still present in order once escapes are ignored.
	for _, l := range []string{"H", "E", "O", "R", "D"} {
		assert.Contains(t, out, l)
	}
	assert.Greater(t, len(out), len(render.Text(res.Grid)))
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	err := render.HTML(&buf, []*crossword.Result{
		helloWorld(t),
		helloWorld(t, "hello", "zzz"),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Crossword #1")
	assert.Contains(t, out, "Crossword #2")
	assert.Equal(t, 2, strings.Count(out, `<div class="page">`))
	assert.Equal(t, 20, strings.Count(out, "<tr>"))
	assert.Contains(t, out, "<td>W</td><td>O</td><td>R</td><td>L</td><td>D</td>")
	assert.Contains(t, out, "Words: HELLO, WORLD")
	assert.Contains(t, out, "Unused words: ZZZ")
}
