package solver

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lianlian/board"
)

// rngOrDefault returns r, or a time-seeded source when r is nil.
// math/rand.Rand is not goroutine-safe; callers must not share one across goroutines.
func rngOrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleCells performs an in-place Fisher–Yates shuffle of a using r.
// Complexity: O(n) time, O(1) extra space.
func shuffleCells(a []board.Cell, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
