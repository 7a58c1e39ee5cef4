package link_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/link"
)

// BenchmarkFinder_Connect measures a reused Finder on a 12×18 playable board
// where roughly a third of the cells are empty.
// Complexity: O(N×4×(k+1)×(rows+cols)) per call.
func BenchmarkFinder_Connect(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	bd, err := board.NewWithBorder(12, 18)
	if err != nil {
		b.Fatalf("setup NewWithBorder failed: %v", err)
	}
	for _, p := range bd.InnerPositions() {
		if rng.Intn(3) > 0 {
			_ = bd.Set(p, board.Cell(1+rng.Intn(8)))
		}
	}
	a, c := board.Pos{Row: 1, Col: 1}, board.Pos{Row: 12, Col: 18}
	_ = bd.Set(a, 9)
	_ = bd.Set(c, 9)
	f, err := link.NewFinder()
	if err != nil {
		b.Fatalf("setup NewFinder failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Connect(bd, a, c)
	}
}
