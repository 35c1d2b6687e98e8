// SPDX-License-Identifier: MIT
// Package: crossgrid/crossword
//
// options.go - functional options for New and Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless input
//     (WithSize(0), WithRand(nil), ...). New itself never panics.
//   • Determinism is explicit: WithSeed or WithRand, plus WithSeedCoord to
//     pin the bootstrap cell.

package crossword

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/crossgrid/grid"
)

// Option customizes a Builder before the grid is allocated.
type Option func(*config)

// WithSize sets the side length of the square grid.
// Panics if n < MinSize.
func WithSize(n int) Option {
	if n < MinSize {
		panic(fmt.Sprintf("crossword: WithSize(%d): size must be >= %d", n, MinSize))
	}
	return func(c *config) { c.size = n }
}

// WithMaxPasses sets the pass budget of Fill.
// Panics if n < 1.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("crossword: WithMaxPasses(%d): need at least one pass", n))
	}
	return func(c *config) { c.maxPasses = n }
}

// WithSeed makes the builder reproducible. Zero means "seed from the clock".
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("crossword: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeedLetter replaces the bootstrap letter. Lowercase input is folded.
// Panics if l is not an ASCII letter.
func WithSeedLetter(l byte) Option {
	if l >= 'a' && l <= 'z' {
		l -= 'a' - 'A'
	}
	if !grid.IsLetter(l) {
		panic(fmt.Sprintf("crossword: WithSeedLetter(%q): not a letter", l))
	}
	return func(c *config) { c.seedLetter = l }
}

// WithSeedCoord pins the bootstrap letter to c instead of a random interior
// cell. Bounds are checked by New against the final size (ErrOptionViolation).
func WithSeedCoord(at grid.Coord) Option {
	return func(c *config) {
		cp := at
		c.seedAt = &cp
	}
}

// WithOrder selects the per-pass word order.
func WithOrder(o Order) Option {
	if o < OrderSorted || o > OrderShuffled {
		panic(fmt.Sprintf("crossword: WithOrder(%d): unknown order", int(o)))
	}
	return func(c *config) { c.order = o }
}

// WithLogger routes placement diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("crossword: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
