package wordlist

import "errors"

var (
	// ErrNoPuzzle indicates an HCL file without a puzzle block.
	ErrNoPuzzle = errors.New("wordlist: missing puzzle block")
	// ErrBadConfig indicates a puzzle attribute with an unusable value.
	ErrBadConfig = errors.New("wordlist: invalid puzzle setting")
)
