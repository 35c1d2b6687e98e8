// Package grid holds the square letter buffer a crossword is written into,
// together with the letter index that answers "where does letter L appear?".
//
// What:
//
//   - Grid is an N×N buffer of cells; a cell is either Empty or one uppercase
//     ASCII letter. The size is fixed at construction and never changes.
//   - LetterIndex maps each letter to the set of coordinates holding it.
//     Grid.Put is the only mutator and updates buffer and index together, so
//     the two never disagree.
//   - Anchors are synthetic letter occurrences that exist only for lookup
//     (the bootstrap seed). They are kept apart from the index and surface
//     through Grid.Candidates.
//
// Coordinates:
//
//   - Coord{X, Y}: X is the column, Y the row, both in [0, N).
//   - Down advances Y, Across advances X.
//
// Errors:
//
//   - ErrBadSize:      grid size below 1.
//   - ErrOutOfBounds:  coordinate or word run outside the grid.
//   - ErrBadLetter:    Put called with something other than 'A'..'Z'.
//   - ErrConflict:     Put over a cell holding a different letter.
//   - ErrInconsistent: CheckConsistency found buffer and index out of sync.
package grid
