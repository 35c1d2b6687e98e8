// SPDX-License-Identifier: MIT
// Package: crossgrid/crossword
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for every builder knob.
//   • Defaults are named constants; no globals are consulted at build time.
//   • newConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • size       = DefaultSize (10)
//   • maxPasses  = DefaultMaxPasses (8)
//   • seedLetter = DefaultSeedLetter ('E')
//   • seedAt     = nil (random interior cell)
//   • rng        = nil (derived from seed; seed 0 means clock-seeded)
//   • order      = OrderSorted
//   • logger     = discard

package crossword

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/crossgrid/grid"
)

const (
	// DefaultSize is the side length used when WithSize is not given.
	DefaultSize = 10
	// MinSize is the smallest grid that still has an interior cell to seed.
	MinSize = 3
	// DefaultMaxPasses bounds how many times Fill sweeps the unplaced words.
	DefaultMaxPasses = 8
	// DefaultSeedLetter bootstraps the first intersection. E is the most
	// common letter in English words.
	DefaultSeedLetter byte = 'E'
)

// Order selects how each pass walks the unplaced words.
type Order int

const (
	// OrderSorted walks words alphabetically; fully reproducible.
	OrderSorted Order = iota
	// OrderInput walks words in first-seen input order.
	OrderInput
	// OrderShuffled reshuffles the words on every pass using the builder RNG.
	OrderShuffled
)

// String returns the flag spelling of o.
func (o Order) String() string {
	switch o {
	case OrderSorted:
		return "sorted"
	case OrderInput:
		return "input"
	case OrderShuffled:
		return "shuffled"
	default:
		return "unknown"
	}
}

// ParseOrder maps "sorted", "input" or "shuffled" to an Order.
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "sorted", "":
		return OrderSorted, true
	case "input":
		return OrderInput, true
	case "shuffled", "random":
		return OrderShuffled, true
	}
	return OrderSorted, false
}

type config struct {
	size       int
	maxPasses  int
	seedLetter byte
	seedAt     *grid.Coord
	seed       int64
	rng        *rand.Rand
	order      Order
	logger     *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		size:       DefaultSize,
		maxPasses:  DefaultMaxPasses,
		seedLetter: DefaultSeedLetter,
		order:      OrderSorted,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}
	return cfg
}
