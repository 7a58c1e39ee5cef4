// File: generator/example_test.go
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/lianlian/generator"
	"github.com/katalvlaran/lianlian/level"
	"github.com/katalvlaran/lianlian/solver"
)

// ExampleGenerate builds a seeded 4×6 board and probes it for a move.
func ExampleGenerate() {
	cfg := level.Config{ID: 1, InnerRows: 4, InnerCols: 6, TileTypes: 4, Goal: level.Goal{Kind: level.GoalClearAll}}
	b, err := generator.Generate(cfg, generator.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("board %d×%d, %d tiles, playable: %v\n", b.Rows(), b.Cols(), b.TileCount(), solver.HasMove(b))

	_, err = generator.Generate(level.Config{InnerRows: 3, InnerCols: 3, TileTypes: 8})
	fmt.Println(err)

	// Output:
	// board 6×8, 24 tiles, playable: true
	// generator: odd cell count: 3×3
}
