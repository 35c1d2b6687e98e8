// Package render turns a finished crossword into text for people: plain
// rows, a boxed view, ANSI-colored output and a printable HTML page.
// Rendering only reads the grid.
package render
