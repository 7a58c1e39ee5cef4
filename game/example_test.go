// File: game/example_test.go
package game_test

import (
	"fmt"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/game"
	"github.com/katalvlaran/lianlian/level"
)

// ExampleAttemptRemove removes a pair around a blocking tile.
func ExampleAttemptRemove() {
	b, _ := board.FromRows([][]board.Cell{
		{0, 0, 0},
		{4, 9, 4},
	})
	path := game.AttemptRemove(b, board.Pos{Row: 1, Col: 0}, board.Pos{Row: 1, Col: 2})
	fmt.Println(path)
	fmt.Print(b)
	fmt.Println(game.AttemptRemove(b, board.Pos{Row: 1, Col: 0}, board.Pos{Row: 1, Col: 2}) == nil)

	// Output:
	// [(1,0) (0,0) (0,2) (1,2)]
	// . . .
	// . 9 .
	// true
}

// ExampleSession plays a two-pair board to the end.
func ExampleSession() {
	b, _ := board.FromRows([][]board.Cell{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 2, 2, 0},
		{0, 0, 0, 0},
	})
	cfg := level.Config{ID: 1, InnerRows: 2, InnerCols: 2, TileTypes: 2, Goal: level.Goal{Kind: level.GoalClearAll}}
	s, err := game.NewSession(cfg, game.WithBoard(b), game.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st, _ := s.Start()
	fmt.Println("start:", st)

	for _, p := range []board.Pos{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}} {
		out, _ := s.Click(p)
		fmt.Println(p, out.Kind, out.State)
	}
	sum := s.Finish()
	fmt.Println(sum.Result, sum.PairsRemoved)

	// Output:
	// start: playable
	// (1,1) selected selecting
	// (2,1) mismatch playable
	// (1,1) selected selecting
	// (1,2) removed playable
	// (2,1) selected selecting
	// (2,2) removed cleared
	// success 2
}
