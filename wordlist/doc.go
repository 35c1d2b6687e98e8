// Package wordlist loads crossword input from files.
//
// Two formats are understood:
//
//   - Plain word lists, one word per line. Surrounding whitespace is trimmed,
//     blank lines and lines starting with '#' are skipped, and anything after
//     the first comma is ignored so "word, clue" lists load as-is.
//   - HCL puzzle files:
//
//	puzzle {
//	  size        = 12
//	  passes      = 8
//	  seed        = 42
//	  seed_letter = "E"
//	  order       = "sorted"
//	  words       = ["crossword", "generator"]
//	  word_file   = "words.txt" # relative to the puzzle file
//	}
//
// Words are returned as written; validation and case folding belong to the
// crossword package.
package wordlist
