package solver_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/solver"
)

// GuaranteeSuite exercises Shuffle and EnsureHasMove with a seeded source.
type GuaranteeSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *GuaranteeSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(2024))
}

// types returns the sorted multiset of tile types on b.
func types(b *board.Board) []board.Cell {
	var out []board.Cell
	for _, p := range b.Occupied() {
		out = append(out, b.At(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TestShuffle_PreservesOccupancyAndMultiset repeats shuffles on a mixed board.
func (s *GuaranteeSuite) TestShuffle_PreservesOccupancyAndMultiset() {
	b, err := board.NewWithBorder(4, 6)
	s.Require().NoError(err)
	for i, p := range b.InnerPositions() {
		if i%5 == 3 {
			continue
		}
		s.Require().NoError(b.Set(p, board.Cell(1+i%4)))
	}
	wantOcc, wantTypes := b.Occupied(), types(b)

	changed := false
	before := b.Snapshot()
	for i := 0; i < 25; i++ {
		solver.Shuffle(b, s.rng)
		s.Require().Equal(wantOcc, b.Occupied())
		s.Require().Equal(wantTypes, types(b))
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				if p := (board.Pos{Row: r, Col: c}); b.IsBorder(p) {
					s.Require().True(b.IsEmpty(p), "border %v", p)
				}
			}
		}
	}
	after := b.Snapshot()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				changed = true
			}
		}
	}
	s.True(changed, "25 shuffles should move at least one tile")
}

// TestShuffle_NilSafe: nil board and nil source are tolerated.
func (s *GuaranteeSuite) TestShuffle_NilSafe() {
	s.NotPanics(func() { solver.Shuffle(nil, s.rng) })
	b, err := board.FromRows([][]board.Cell{{1, 2, 1, 2}})
	s.Require().NoError(err)
	s.NotPanics(func() { solver.Shuffle(b, nil) })
	s.Equal([]board.Cell{1, 1, 2, 2}, types(b))
}

// TestEnsureHasMove_AlreadyPlayable returns true without touching the board.
func (s *GuaranteeSuite) TestEnsureHasMove_AlreadyPlayable() {
	b, err := board.FromRows([][]board.Cell{
		{1, 1},
		{2, 2},
	})
	s.Require().NoError(err)
	before := b.Snapshot()
	s.True(solver.EnsureHasMove(b, s.rng))
	s.Equal(before, b.Snapshot())
}

// TestEnsureHasMove_RecoversDeadlock: crossed diagonals become playable after shuffling.
func (s *GuaranteeSuite) TestEnsureHasMove_RecoversDeadlock() {
	b, err := board.FromRows([][]board.Cell{
		{1, 2},
		{2, 1},
	})
	s.Require().NoError(err)
	s.Require().False(solver.HasMove(b))

	s.True(solver.EnsureHasMove(b, s.rng))
	s.True(solver.HasMove(b))
	s.Equal([]board.Cell{1, 1, 2, 2}, types(b))
}

// TestEnsureHasMove_ProbeOnly: zero attempts never shuffles.
func (s *GuaranteeSuite) TestEnsureHasMove_ProbeOnly() {
	b, err := board.FromRows([][]board.Cell{
		{1, 2},
		{2, 1},
	})
	s.Require().NoError(err)
	before := b.Snapshot()
	s.False(solver.EnsureHasMove(b, s.rng, solver.WithMaxAttempts(0)))
	s.Equal(before, b.Snapshot())
}

// TestEnsureHasMove_Exhausted: no permutation of unmatched tiles helps, so the
// guarantor reports false after its retries instead of failing.
func (s *GuaranteeSuite) TestEnsureHasMove_Exhausted() {
	b, err := board.FromRows([][]board.Cell{{1, 0, 2}})
	s.Require().NoError(err)
	s.False(solver.EnsureHasMove(b, s.rng, solver.WithMaxAttempts(3)))
	s.Equal(2, b.TileCount())
}

// TestEnsureHasMove_Cleared: an empty board has no move.
func (s *GuaranteeSuite) TestEnsureHasMove_Cleared() {
	b, err := board.NewWithBorder(2, 2)
	s.Require().NoError(err)
	s.False(solver.EnsureHasMove(b, s.rng))
	s.False(solver.EnsureHasMove(nil, s.rng))
}

func TestGuaranteeSuite(t *testing.T) {
	suite.Run(t, new(GuaranteeSuite))
}
