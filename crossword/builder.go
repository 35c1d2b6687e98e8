// SPDX-License-Identifier: MIT
// Package: crossgrid/crossword
//
// builder.go - Builder lifecycle: ingestion, seeding and the pass loop.
//
// Lifecycle:
//   New        normalize words → allocate grid → anchor the seed letter.
//   Fill       up to maxPasses sweeps over the unplaced words; stops early
//              once everything is placed or a sweep places nothing.
//   Result     snapshot of grid, placements and the unused report.
//
// Word states: Unplaced → Placed (terminal). Words still unplaced when a
// Fill returns are Unplaceable until the next Fill call.

package crossword

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/crossgrid/grid"
)

// WordState is the per-word placement state.
type WordState int

const (
	// StateUnknown: the word is not part of this builder's word set.
	StateUnknown WordState = iota
	// StateUnplaced: not placed yet; later passes may still place it.
	StateUnplaced
	// StatePlaced: committed to the grid. Terminal.
	StatePlaced
	// StateUnplaceable: the last Fill exhausted its budget without placing it.
	StateUnplaceable
)

// String returns a lowercase state name.
func (s WordState) String() string {
	switch s {
	case StateUnplaced:
		return "unplaced"
	case StatePlaced:
		return "placed"
	case StateUnplaceable:
		return "unplaceable"
	default:
		return "unknown"
	}
}

// Builder places a word set onto a square grid, crossword style.
// A Builder is not safe for concurrent use.
type Builder struct {
	cfg    config
	grid   *grid.Grid
	words  []string            // normalized, first-seen order
	member map[string]struct{} // set view of words
	placed map[string]Placement

	placements []Placement // commit order
	seedAt     grid.Coord
	passes     int
	exhausted  bool
	log        *slog.Logger
}

// New normalizes words, allocates the grid and anchors the seed letter.
// It does not place anything; call Fill (or use Generate).
//
// Errors: *InvalidWordError (errors.Is ErrInvalidWord) for bad input words,
// ErrBadSize for a size below MinSize, ErrOptionViolation for a seed
// coordinate outside the grid.
func New(words []string, opts ...Option) (*Builder, error) {
	cfg := newConfig(opts...)

	norm, err := NormalizeWords(words)
	if err != nil {
		return nil, crosswordErrorf(methodNew, "%w", err)
	}
	if cfg.size < MinSize {
		return nil, crosswordErrorf(methodNew, "size %d below %d: %w", cfg.size, MinSize, ErrBadSize)
	}
	g, err := grid.New(cfg.size)
	if err != nil {
		return nil, crosswordErrorf(methodNew, "%w", err)
	}

	seedAt := interiorCoord(cfg.rng, cfg.size)
	if cfg.seedAt != nil {
		seedAt = *cfg.seedAt
	}
	if err := g.Anchor(cfg.seedLetter, seedAt); err != nil {
		return nil, crosswordErrorf(methodNew, "seed %v: %w", seedAt, ErrOptionViolation)
	}

	member := make(map[string]struct{}, len(norm))
	for _, w := range norm {
		member[w] = struct{}{}
	}

	b := &Builder{
		cfg:    cfg,
		grid:   g,
		words:  norm,
		member: member,
		placed: make(map[string]Placement, len(norm)),
		seedAt: seedAt,
		log:    cfg.logger,
	}
	b.log.Debug("grid seeded",
		slog.Int("size", cfg.size),
		slog.String("seed_letter", string(cfg.seedLetter)),
		slog.String("seed_at", seedAt.String()),
		slog.Int("words", len(norm)))

	return b, nil
}

// Generate is New followed by Fill.
func Generate(words []string, opts ...Option) (*Result, error) {
	b, err := New(words, opts...)
	if err != nil {
		return nil, err
	}
	return b.Fill(), nil
}

// Fill sweeps the unplaced words up to the pass budget and returns a
// snapshot. Calling Fill again continues with a fresh budget.
func (b *Builder) Fill() *Result {
	b.exhausted = false
	for pass := 1; pass <= b.cfg.maxPasses; pass++ {
		pending := b.pending()
		if len(pending) == 0 {
			break
		}
		b.passes++

		placed := 0
		for _, w := range pending {
			if _, ok := b.TryWord(w); ok {
				placed++
			}
		}
		b.log.Debug("pass done",
			slog.Int("pass", pass),
			slog.Int("placed", placed),
			slog.Int("pending", len(pending)-placed))

		// The grid did not change, so another sweep would fail identically.
		if placed == 0 {
			break
		}
	}

	res := b.Result()
	if len(res.Unused) > 0 {
		b.exhausted = true
		b.log.Warn("unused words", slog.Any("words", res.Unused))
	}
	return res
}

// pending returns the unplaced words in the configured order.
func (b *Builder) pending() []string {
	out := make([]string, 0, len(b.words)-len(b.placed))
	for _, w := range b.words {
		if _, ok := b.placed[w]; !ok {
			out = append(out, w)
		}
	}
	switch b.cfg.order {
	case OrderSorted:
		slices.Sort(out)
	case OrderShuffled:
		b.cfg.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// State reports where word stands. The lookup is case-insensitive.
func (b *Builder) State(word string) WordState {
	w, err := normalizeWord(word)
	if err != nil {
		return StateUnknown
	}
	if _, ok := b.member[w]; !ok {
		return StateUnknown
	}
	if _, ok := b.placed[w]; ok {
		return StatePlaced
	}
	if b.exhausted {
		return StateUnplaceable
	}
	return StateUnplaced
}

// Words returns the normalized word set in first-seen order.
func (b *Builder) Words() []string { return slices.Clone(b.words) }

// Grid exposes the live grid for reading. Mutate only through WriteWord.
func (b *Builder) Grid() *grid.Grid { return b.grid }

// SeedAt returns the coordinate of the bootstrap letter.
func (b *Builder) SeedAt() grid.Coord { return b.seedAt }

// Passes returns how many sweeps have run across all Fill calls.
func (b *Builder) Passes() int { return b.passes }

// Result snapshots the current state. The grid in the result is a copy.
func (b *Builder) Result() *Result {
	unused := make([]string, 0)
	for _, w := range b.words {
		if _, ok := b.placed[w]; !ok {
			unused = append(unused, w)
		}
	}
	slices.Sort(unused)
	return &Result{
		Grid:       b.grid.Clone(),
		Placements: slices.Clone(b.placements),
		Unused:     unused,
		Passes:     b.passes,
		Seed:       b.seedAt,
		SeedLetter: b.cfg.seedLetter,
	}
}
