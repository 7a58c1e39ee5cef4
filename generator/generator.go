package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/level"
	"github.com/katalvlaran/lianlian/solver"
)

// ErrOddCellCount indicates a playable area that cannot be tiled with pairs.
var ErrOddCellCount = errors.New("generator: odd cell count")

// Generate builds a bordered board for cfg. Only the grid size and tile-type
// count are consulted; goal and timing belong to the session.
//
// The board's guarantor run may still report no move on pathological inputs
// (for instance many types on a tiny grid); callers probe solver.HasMove.
func Generate(cfg level.Config, opts ...Option) (*board.Board, error) {
	if cfg.InnerRows < 1 || cfg.InnerCols < 1 || cfg.InnerRows > level.MaxInnerSide || cfg.InnerCols > level.MaxInnerSide {
		return nil, fmt.Errorf("%w: grid %d×%d", level.ErrInvalidLevel, cfg.InnerRows, cfg.InnerCols)
	}
	if cfg.Cells()%2 != 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrOddCellCount, cfg.InnerRows, cfg.InnerCols)
	}
	if cfg.TileTypes < 1 {
		return nil, fmt.Errorf("%w: tileTypes %d", level.ErrInvalidLevel, cfg.TileTypes)
	}
	c := newConfig(opts...)

	b, err := board.NewWithBorder(cfg.InnerRows, cfg.InnerCols)
	if err != nil {
		return nil, err
	}

	positions := b.InnerPositions()
	c.rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	labels := pairLabels(len(positions)/2, cfg.TileTypes)
	c.rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	for i, t := range labels {
		if err := b.Set(positions[2*i], t); err != nil {
			return nil, err
		}
		if err := b.Set(positions[2*i+1], t); err != nil {
			return nil, err
		}
	}

	solver.EnsureHasMove(b, c.rng, solver.WithMaxAttempts(c.maxAttempts))
	return b, nil
}

// pairLabels cycles through 1..types so every type appears ⌊n/types⌋ or
// ⌈n/types⌉ times.
func pairLabels(n, types int) []board.Cell {
	out := make([]board.Cell, n)
	for i := range out {
		out[i] = board.Cell(i%types + 1)
	}
	return out
}
