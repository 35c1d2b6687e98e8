package crossword

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/crossgrid/grid"
)

// rngFromSeed returns a *rand.Rand. seed==0 means "not reproducible": the
// source is seeded from the clock.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// interiorCoord draws a cell uniformly from [1,size-2]×[1,size-2].
// size must be >= MinSize.
func interiorCoord(r *rand.Rand, size int) grid.Coord {
	span := size - 2
	return grid.Coord{X: 1 + r.Intn(span), Y: 1 + r.Intn(span)}
}
