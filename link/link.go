package link

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/lianlian/board"
)

// Finder runs bounded-turn searches and keeps its state arena between calls.
type Finder struct {
	maxTurns int
	arena    []state
	seen     []bool
}

// NewFinder builds a Finder from functional Options.
// Returns ErrOptionViolation for an invalid option.
func NewFinder(opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Finder{maxTurns: o.MaxTurns}, nil
}

// MaxTurns returns the bend budget of f.
func (f *Finder) MaxTurns() int { return f.maxTurns }

// Connect returns a path from a to c with at most DefaultMaxTurns bends, or nil.
// See (*Finder).Connect for the exact contract.
func Connect(b *board.Board, a, c board.Pos) board.Path {
	f := &Finder{maxTurns: DefaultMaxTurns}
	return f.Connect(b, a, c)
}

// Connect returns a path from a to c using at most f.MaxTurns() bends,
// or nil when none exists. It never fails: nil is also returned when
// a == c, either position is out of bounds or empty, or the two tiles differ.
// The board is not modified.
func (f *Finder) Connect(b *board.Board, a, c board.Pos) board.Path {
	if b == nil || a == c || !b.InBounds(a) || !b.InBounds(c) {
		return nil
	}
	t := b.At(a)
	if t == board.Empty || t != b.At(c) {
		return nil
	}
	// Search from the row-major-earlier endpoint so both argument orders
	// yield the same corridor.
	if c.Less(a) {
		return f.search(b, c, a).Reversed()
	}
	return f.search(b, a, c)
}

// search runs the BFS from src; src and dst are known to be valid and distinct.
func (f *Finder) search(b *board.Board, src, dst board.Pos) board.Path {
	f.reset(b)
	target := b.Index(dst)
	f.arena = append(f.arena, state{pos: int32(b.Index(src)), prev: -1, dir: NoDirection})

	for head := 0; head < len(f.arena); head++ {
		cur := f.arena[head]
		from := b.Coordinate(int(cur.pos))
		for d := Up; d <= Left; d++ {
			turns := cur.turns
			if cur.dir != NoDirection && cur.dir != d {
				turns++
			}
			if int(turns) > f.maxTurns {
				continue
			}
			step := offsets[d]
			p := board.Pos{Row: from.Row + step.Row, Col: from.Col + step.Col}
			for ; b.InBounds(p); p.Row, p.Col = p.Row+step.Row, p.Col+step.Col {
				idx := b.Index(p)
				if idx == target {
					return f.reconstruct(b, head, dst)
				}
				if b.At(p) != board.Empty {
					break
				}
				f.push(idx, d, turns, int32(head))
			}
		}
	}
	return nil
}

// reset sizes the arena and the dedup table for b and clears them.
func (f *Finder) reset(b *board.Board) {
	n := b.Rows() * b.Cols() * 4 * (f.maxTurns + 1)
	if cap(f.seen) < n {
		f.seen = make([]bool, n)
	} else {
		f.seen = f.seen[:n]
		clear(f.seen)
	}
	if cap(f.arena) < n+1 {
		f.arena = make([]state, 0, n+1)
	} else {
		f.arena = f.arena[:0]
	}
}

// push appends a state unless (pos, dir, turns) was already reached.
func (f *Finder) push(pos int, dir Direction, turns int8, prev int32) {
	k := (pos*4+int(dir))*(f.maxTurns+1) + int(turns)
	if f.seen[k] {
		return
	}
	f.seen[k] = true
	f.arena = append(f.arena, state{pos: int32(pos), prev: prev, dir: dir, turns: turns})
}

// reconstruct follows back-pointers from handle last to the root, then
// appends dst, and drops consecutive duplicates.
func (f *Finder) reconstruct(b *board.Board, last int, dst board.Pos) board.Path {
	raw := board.Path{dst}
	for h := int32(last); h >= 0; h = f.arena[h].prev {
		raw = append(raw, b.Coordinate(int(f.arena[h].pos)))
	}
	raw = lo.Reverse(raw)

	path := make(board.Path, 0, len(raw))
	for _, p := range raw {
		if n := len(path); n > 0 && path[n-1] == p {
			continue
		}
		path = append(path, p)
	}
	return path
}

// Turns counts the direction changes along path.
// Paths with fewer than three points have no turns.
func Turns(path board.Path) int {
	turns := 0
	var last board.Pos
	for i := 1; i < len(path); i++ {
		d := board.Pos{Row: sign(path[i].Row - path[i-1].Row), Col: sign(path[i].Col - path[i-1].Col)}
		if i > 1 && d != last {
			turns++
		}
		last = d
	}
	return turns
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
