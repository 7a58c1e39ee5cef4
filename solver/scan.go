package solver

import (
	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/link"
)

// FindAnyPair returns the first connectable pair in row-major enumeration
// order, or nil when the board has no move. The board is not modified.
func FindAnyPair(b *board.Board, opts ...Option) *board.Pair {
	if b == nil {
		return nil
	}
	return findAnyPair(b, newConfig(opts...).finder())
}

// HasMove reports whether at least one pair can be connected.
func HasMove(b *board.Board, opts ...Option) bool {
	return FindAnyPair(b, opts...) != nil
}

// AllPairs returns every connectable pair, ordered as FindAnyPair visits them.
func AllPairs(b *board.Board, opts ...Option) []board.Pair {
	if b == nil {
		return nil
	}
	var out []board.Pair
	scan(b, newConfig(opts...).finder(), func(p board.Pair) bool {
		out = append(out, p)
		return true
	})
	return out
}

func findAnyPair(b *board.Board, f *link.Finder) *board.Pair {
	var found *board.Pair
	scan(b, f, func(p board.Pair) bool {
		found = &p
		return false
	})
	return found
}

// scan calls yield for each connectable pair (i<j over row-major tiles)
// until yield returns false.
func scan(b *board.Board, f *link.Finder, yield func(board.Pair) bool) {
	tiles := b.Occupied()
	for i := 0; i < len(tiles); i++ {
		t := b.At(tiles[i])
		for j := i + 1; j < len(tiles); j++ {
			if b.At(tiles[j]) != t {
				continue
			}
			path := f.Connect(b, tiles[i], tiles[j])
			if path == nil {
				continue
			}
			if !yield(board.Pair{A: tiles[i], B: tiles[j], Path: path}) {
				return
			}
		}
	}
}
