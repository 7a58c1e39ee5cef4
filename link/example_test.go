// File: link/example_test.go
package link_test

import (
	"fmt"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/link"
)

// ExampleConnect joins two tiles around a wall through the padding ring.
//
//	. . . . .
//	. 1 9 1 .
//	. . . . .
func ExampleConnect() {
	b, _ := board.NewWithBorder(1, 3)
	_ = b.Set(board.Pos{Row: 1, Col: 1}, 1)
	_ = b.Set(board.Pos{Row: 1, Col: 2}, 9)
	_ = b.Set(board.Pos{Row: 1, Col: 3}, 1)

	path := link.Connect(b, board.Pos{Row: 1, Col: 1}, board.Pos{Row: 1, Col: 3})
	fmt.Println("path:", path)
	fmt.Println("turns:", link.Turns(path))

	// Output:
	// path: [(1,1) (0,1) (0,3) (1,3)]
	// turns: 2
}
