package solver

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/link"
)

// Shuffle reassigns the tile types of b among its occupied cells using a
// Fisher–Yates permutation drawn from rng (nil: time-seeded).
// Occupied positions and the multiset of types are preserved.
func Shuffle(b *board.Board, rng *rand.Rand) {
	if b == nil {
		return
	}
	shuffle(b, rngOrDefault(rng))
}

func shuffle(b *board.Board, r *rand.Rand) {
	occupied := b.Occupied()
	types := lo.Map(occupied, func(p board.Pos, _ int) board.Cell {
		return b.At(p)
	})
	shuffleCells(types, r)
	for i, p := range occupied {
		// p comes from Occupied and types[i] from the board, so Set cannot fail.
		_ = b.Set(p, types[i])
	}
}

// EnsureHasMove makes sure b has at least one connectable pair.
// It probes with FindAnyPair and, on failure, shuffles and retries up to
// MaxAttempts times; a final probe decides the result. A false result means
// "possibly unsolvable" and is not an error.
func EnsureHasMove(b *board.Board, rng *rand.Rand, opts ...Option) bool {
	if b == nil {
		return false
	}
	cfg := newConfig(opts...)
	return ensureHasMove(b, rngOrDefault(rng), cfg.finder(), cfg.maxAttempts)
}

func ensureHasMove(b *board.Board, r *rand.Rand, f *link.Finder, attempts int) bool {
	for i := 0; i < attempts; i++ {
		if findAnyPair(b, f) != nil {
			return true
		}
		shuffle(b, r)
	}
	return findAnyPair(b, f) != nil
}
