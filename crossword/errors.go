// SPDX-License-Identifier: MIT
// Package: crossgrid/crossword
//
// errors.go - sentinel errors and the typed ingestion error.
//
// Error policy:
//   • Validation classes are package-level sentinels; callers branch with
//     errors.Is, never on message text.
//   • Context is attached with %w wrapping and a method prefix (crosswordErrorf).
//   • A word that cannot be fitted is NOT an error: it is reported in
//     Result.Unused. Only ingestion and programming errors surface here.

package crossword

import (
	"errors"
	"fmt"
)

// ErrInvalidWord indicates an input word that is empty or contains anything
// other than letters. Returned (wrapped in *InvalidWordError) by New,
// Generate and NormalizeWords; no partial ingestion happens.
var ErrInvalidWord = errors.New("crossword: invalid word")

// ErrBadSize indicates a grid size below MinSize.
var ErrBadSize = errors.New("crossword: grid size too small")

// ErrOptionViolation indicates an option value that only becomes invalid
// once combined with the rest of the configuration (e.g. a fixed seed
// coordinate outside the requested grid).
var ErrOptionViolation = errors.New("crossword: invalid option value")

// ErrVerify indicates that Result.Verify found a broken grid invariant.
var ErrVerify = errors.New("crossword: verification failed")

// InvalidWordError names the offending input word.
type InvalidWordError struct {
	Word string // as supplied by the caller
	Pos  int    // byte offset of the first offending character; -1 for an empty word
}

// Error implements error.
func (e *InvalidWordError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: empty word", ErrInvalidWord)
	}
	return fmt.Sprintf("%s %q: words should use only alphabetic characters (offending character at %d)",
		ErrInvalidWord, e.Word, e.Pos)
}

// Is lets errors.Is(err, ErrInvalidWord) match.
func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}

// Method names used as error prefixes.
const (
	methodNew       = "New"
	methodWriteWord = "WriteWord"
	methodVerify    = "Verify"
)

// crosswordErrorf prefixes a wrapped error with the method that produced it:
// "<method>: <formatted message>".
func crosswordErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
