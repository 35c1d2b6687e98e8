// Package gridgraph treats a finished letter grid as a graph of filled cells,
// so a crossword can be checked for connectivity.
//
// What:
//
//   - GridGraph wraps a square or rectangular letter buffer; a cell is "filled"
//     when it holds anything other than the blank byte.
//   - ConnectedComponents groups filled cells into islands under Conn4
//     (N/E/S/W) or Conn8 (diagonals too).
//   - IsConnected and LargestComponent summarise the result.
//
// Why:
//
//   - Every word placed after the first must cross an existing letter, so a
//     well-formed crossword is a single Conn4 island. More than one island
//     means something wrote letters outside the intersection rules.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
