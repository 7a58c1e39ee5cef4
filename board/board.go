package board

import (
	"fmt"
	"strconv"
	"strings"
)

// New returns an all-empty rows×cols board without a border ring.
// Returns ErrEmptyBoard if rows or cols is below 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyBoard, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// NewWithBorder returns an all-empty board whose playable area is
// innerRows×innerCols, surrounded by a permanently empty ring.
// The resulting board is (innerRows+2)×(innerCols+2).
func NewWithBorder(innerRows, innerCols int) (*Board, error) {
	if innerRows < 1 || innerCols < 1 {
		return nil, fmt.Errorf("%w: inner %d×%d", ErrEmptyBoard, innerRows, innerCols)
	}
	b, err := New(innerRows+2, innerCols+2)
	if err != nil {
		return nil, err
	}
	b.bordered = true
	return b, nil
}

// FromRows builds a board from literal rows, copying the input.
// The board is not bordered; include the empty ring in rows if you want one.
// Returns ErrEmptyBoard, ErrNonRectangular or ErrInvalidCell on bad input.
func FromRows(rows [][]Cell) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	b, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, v := range row {
			if v < Empty {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, r, c)
			}
			b.cells[b.index(r, c)] = v
		}
	}
	return b, nil
}

// Rows returns the board height including any border ring.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width including any border ring.
func (b *Board) Cols() int { return b.cols }

// Bordered reports whether the outermost ring is reserved as empty padding.
func (b *Board) Bordered() bool { return b.bordered }

// InBounds reports whether p lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// IsBorder reports whether p lies on the padding ring of a bordered board.
func (b *Board) IsBorder(p Pos) bool {
	if !b.bordered || !b.InBounds(p) {
		return false
	}
	return p.Row == 0 || p.Col == 0 || p.Row == b.rows-1 || p.Col == b.cols-1
}

// Get returns the cell at p, or ErrOutOfBounds.
func (b *Board) Get(p Pos) (Cell, error) {
	if !b.InBounds(p) {
		return Empty, fmt.Errorf("%w: %v on %d×%d", ErrOutOfBounds, p, b.rows, b.cols)
	}
	return b.cells[b.index(p.Row, p.Col)], nil
}

// Set stores v at p. Returns ErrOutOfBounds for positions outside the board
// and ErrInvalidCell for negative labels.
func (b *Board) Set(p Pos, v Cell) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v on %d×%d", ErrOutOfBounds, p, b.rows, b.cols)
	}
	if v < Empty {
		return fmt.Errorf("%w: %d", ErrInvalidCell, v)
	}
	b.cells[b.index(p.Row, p.Col)] = v
	return nil
}

// At returns the cell at p, or Empty when p is outside the board.
// Callers that must tell the two apart use InBounds or Get.
func (b *Board) At(p Pos) Cell {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[b.index(p.Row, p.Col)]
}

// IsEmpty reports whether p is inside the board and holds no tile.
func (b *Board) IsEmpty(p Pos) bool {
	return b.InBounds(p) && b.cells[b.index(p.Row, p.Col)] == Empty
}

// Clone returns a deep copy sharing no mutable state with b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, bordered: b.bordered, cells: cells}
}

// Occupied returns the positions of all tiles in row-major order.
func (b *Board) Occupied() []Pos {
	out := make([]Pos, 0, len(b.cells))
	for i, v := range b.cells {
		if v != Empty {
			out = append(out, b.Coordinate(i))
		}
	}
	return out
}

// TileCount returns the number of non-empty cells.
func (b *Board) TileCount() int {
	n := 0
	for _, v := range b.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// Cleared reports whether no tile remains.
func (b *Board) Cleared() bool {
	for _, v := range b.cells {
		if v != Empty {
			return false
		}
	}
	return true
}

// InnerPositions returns the playable positions in row-major order.
// On a bordered board the padding ring is excluded.
func (b *Board) InnerPositions() []Pos {
	r0, c0, r1, c1 := 0, 0, b.rows, b.cols
	if b.bordered {
		r0, c0, r1, c1 = 1, 1, b.rows-1, b.cols-1
	}
	out := make([]Pos, 0, (r1-r0)*(c1-c0))
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			out = append(out, Pos{Row: r, Col: c})
		}
	}
	return out
}

// Snapshot returns a copy of the grid as rows of cells.
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]Cell, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// String renders the board one row per line, "." for empty cells.
func (b *Board) String() string {
	width := 1
	for _, v := range b.cells {
		if n := len(strconv.Itoa(int(v))); n > width {
			width = n
		}
	}
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[b.index(r, c)]
			s := "."
			if v != Empty {
				s = strconv.Itoa(int(v))
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Index maps p to its row-major offset: row*cols + col.
// p must be in bounds.
func (b *Board) Index(p Pos) int {
	return b.index(p.Row, p.Col)
}

// Coordinate converts a row-major offset back to a position.
// Complexity: O(1).
func (b *Board) Coordinate(idx int) Pos {
	return Pos{Row: idx / b.cols, Col: idx % b.cols}
}

func (b *Board) index(r, c int) int {
	return r*b.cols + c
}
