package crossword

import (
	"strings"

	"github.com/katalvlaran/crossgrid/grid"
)

// DefaultWords is used when New receives no words at all.
var DefaultWords = []string{"hello", "world"}

// NormalizeWords uppercases and deduplicates words, keeping first-seen order.
// Every word must be non-empty and made of ASCII letters only; the first
// violation is returned as *InvalidWordError and nothing is ingested.
// An empty input yields the normalized DefaultWords.
func NormalizeWords(words []string) ([]string, error) {
	if len(words) == 0 {
		words = DefaultWords
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		up, err := normalizeWord(w)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[up]; dup {
			continue
		}
		seen[up] = struct{}{}
		out = append(out, up)
	}
	return out, nil
}

func normalizeWord(w string) (string, error) {
	if w == "" {
		return "", &InvalidWordError{Word: w, Pos: -1}
	}
	up := strings.ToUpper(w)
	if len(up) != len(w) {
		// ToUpper changed the byte length: a multi-byte letter. Locate it in w.
		for i := 0; i < len(w); i++ {
			if w[i] >= 0x80 {
				return "", &InvalidWordError{Word: w, Pos: i}
			}
		}
	}
	for i := 0; i < len(up); i++ {
		if !grid.IsLetter(up[i]) {
			return "", &InvalidWordError{Word: w, Pos: i}
		}
	}
	return up, nil
}

// validWord reports whether w is already in normalized form.
func validWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !grid.IsLetter(w[i]) {
			return false
		}
	}
	return true
}
