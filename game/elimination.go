package game

import (
	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/link"
)

// AttemptRemove removes the pair at a and c when the path finder connects
// them with at most link.DefaultMaxTurns bends, returning the path.
// Otherwise it returns nil and leaves b unchanged, so repeating the call on
// an already-cleared pair is harmless.
func AttemptRemove(b *board.Board, a, c board.Pos) board.Path {
	return attemptRemove(b, a, c, nil)
}

// AttemptRemoveCopy is AttemptRemove on a private copy of b.
// It always returns a fresh copy: with the pair removed and its path on
// success, unchanged with a nil path on failure. b is never modified.
func AttemptRemoveCopy(b *board.Board, a, c board.Pos) (*board.Board, board.Path) {
	next := b.Clone()
	path := link.Connect(b, a, c)
	if path != nil {
		clearPair(next, a, c)
	}
	return next, path
}

func attemptRemove(b *board.Board, a, c board.Pos, f *link.Finder) board.Path {
	var path board.Path
	if f != nil {
		path = f.Connect(b, a, c)
	} else {
		path = link.Connect(b, a, c)
	}
	if path == nil {
		return nil
	}
	clearPair(b, a, c)
	return path
}

// clearPair empties two cells already validated by the path finder.
func clearPair(b *board.Board, a, c board.Pos) {
	_ = b.Set(a, board.Empty)
	_ = b.Set(c, board.Empty)
}
