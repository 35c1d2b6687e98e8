// Package crossword builds a square crossword-style letter grid from a set
// of words.
//
// 🚀 What it does
//
//	Words are written DOWN or ACROSS so that every word after the first
//	crosses an existing letter. A word never touches another word end-on or
//	side-by-side except at a shared intersection cell, so no accidental
//	letter fragments appear on the grid.
//
// How
//
//  1. New normalizes the words (uppercase, deduplicated, A-Z only) and
//     anchors a synthetic seed letter ('E' by default) on a random interior
//     cell. The anchor is only searchable; it never occupies a cell.
//  2. Fill sweeps the unplaced words up to DefaultMaxPasses times
//     (WithMaxPasses changes the budget). For each word,
//     TryWord walks its letters, looks every letter up in the grid's letter
//     index and tries DOWN, then ACROSS, through each matching cell. The
//     first feasible placement is committed with WriteWord.
//  3. Words that never fit are returned in Result.Unused. That is a report,
//     not an error: placement is best effort.
//
// Determinism
//
//	WithSeed / WithRand fix the seed cell (and the shuffle for
//	OrderShuffled). WithSeedCoord pins the seed cell directly. The default
//	OrderSorted makes each pass walk words alphabetically.
//
// Complexity
//
//	One TryWord costs O(L · K · L) where L is the word length and K the
//	number of grid cells holding a given letter; a Fill is bounded by
//	maxPasses · |words| TryWord calls (see WithMaxPasses).
//
// Quick example:
//
//	res, err := crossword.Generate([]string{"crossword", "generator"},
//		crossword.WithSize(12), crossword.WithSeed(42))
//	if err != nil { ... }           // only invalid input words fail
//	fmt.Println(res.Unused)         // words that did not fit
package crossword
