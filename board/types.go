package board

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Empty is the cell value of a square holding no tile.
const Empty Cell = 0

// Cell is a tile-type label. Empty (0) means no tile.
type Cell int

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions row-major.
func (p Pos) Less(q Pos) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Path is an ordered sequence of positions from source to target.
// No two consecutive entries are equal.
type Path []Pos

// Reversed returns a new path walking p backwards.
func (p Path) Reversed() Path {
	return lo.Reverse(slices.Clone(p))
}

// Pair is two same-typed tiles together with the path connecting them.
type Pair struct {
	A, B Pos
	Path Path
}

// Board is a rectangular grid of cells.
// When Bordered reports true, the outermost ring is kept empty and the
// playable area is (rows-2)×(cols-2).
type Board struct {
	rows, cols int
	bordered   bool
	cells      []Cell
}
