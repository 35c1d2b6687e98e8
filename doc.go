// Package crossgrid builds crossword-style letter grids: square boards where
// every word crosses a letter that is already on the board.
//
// 🚀 What is crossgrid?
//
//	A small, deterministic grid builder plus the plumbing around it:
//		• Grid primitives: letter cells, a letter→coordinates index, anchors
//		• Builder: intersection search, DOWN/ACROSS feasibility, bounded passes
//		• Analysis: island count and invariant re-checks on the finished grid
//		• Input: plain word lists and HCL puzzle files
//		• Output: plain text, boxed, ANSI color and printable HTML
//
// ✨ How it works
//
//   - One seed letter ('E' unless told otherwise) is anchored on an interior
//     cell. The first word must cross it.
//   - Each pass walks the unplaced words and places the first feasible one
//     crossing an existing letter, DOWN before ACROSS.
//   - Words that still do not fit after the pass budget are reported, not
//     treated as errors.
//
// Packages:
//
//	grid/       - cells, letter index, anchors, consistency checks
//	crossword/  - Builder, options, placement rules, Result
//	gridgraph/  - connectivity of filled cells (islands)
//	render/     - Text, Boxed, Color, HTML, Report
//	wordlist/   - word files and HCL puzzle files
//	cmd/crossgrid - the command line
//
// Quick example (HELLO crossing the seed E, WORLD crossing HELLO's O):
//
//	. . . . . . . . . .
//	. . . . . . . . . .
//	. . . . . . . . . .
//	. . . . . . . . . .
//	. . . . . H . . . .
//	. . . . . E . . . .
//	. . . . . L . . . .
//	. . . . . L . . . .
//	. . . . W O R L D .
//	. . . . . . . . . .
//
//	go install github.com/katalvlaran/crossgrid/cmd/crossgrid@latest
package crossgrid
