package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
)

type htmlCell struct {
	Letter string
	Empty  bool
}

type htmlPuzzle struct {
	Number int
	Rows   [][]htmlCell
	Words  []string
	Unused []string
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Crosswords</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
        .page { page-break-after: always; background-color: white; padding: 40px; margin-bottom: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .page:last-child { page-break-after: auto; }
        h1 { color: #333; text-align: center; }
        table.grid { border-collapse: collapse; margin: 20px auto; font-family: 'Courier New', monospace; font-size: 22px; }
        table.grid td { width: 34px; height: 34px; text-align: center; vertical-align: middle; border: 1px solid #333; padding: 0; }
        table.grid td.empty { background-color: #222; border-color: #222; }
        .unused { color: #a33; }
        @media print { body { background-color: white; } .page { margin-bottom: 0; box-shadow: none; } }
    </style>
</head>
<body>
{{- range . }}
    <div class="page">
        <h1>Crossword #{{ .Number }}</h1>
        <table class="grid">
        {{- range .Rows }}
            <tr>{{ range . }}{{ if .Empty }}<td class="empty"></td>{{ else }}<td>{{ .Letter }}</td>{{ end }}{{ end }}</tr>
        {{- end }}
        </table>
        <p>Words: {{ range $i, $w := .Words }}{{ if $i }}, {{ end }}{{ $w }}{{ end }}</p>
        {{- if .Unused }}
        <p class="unused">Unused words: {{ range $i, $w := .Unused }}{{ if $i }}, {{ end }}{{ $w }}{{ end }}</p>
        {{- end }}
    </div>
{{- end }}
</body>
</html>
`))

// HTML writes a printable page with one crossword per page.
func HTML(w io.Writer, results []*crossword.Result) error {
	puzzles := make([]htmlPuzzle, len(results))
	for i, res := range results {
		g := res.Grid
		n := g.Size()
		rows := make([][]htmlCell, n)
		for y := 0; y < n; y++ {
			rows[y] = make([]htmlCell, n)
			for x := 0; x < n; x++ {
				c := g.At(x, y)
				rows[y][x] = htmlCell{Letter: string(c), Empty: c == grid.Empty}
			}
		}
		puzzles[i] = htmlPuzzle{Number: i + 1, Rows: rows, Words: res.Placed(), Unused: res.Unused}
	}
	if err := pageTmpl.Execute(w, puzzles); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	return nil
}
