package link

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lianlian/board"
)

// DefaultMaxTurns is the bend budget of the classic game.
const DefaultMaxTurns = 2

// MaxTurnsLimit bounds WithMaxTurns so state keys stay small.
const MaxTurnsLimit = 64

// ErrOptionViolation is returned by NewFinder when an invalid Option is supplied.
var ErrOptionViolation = errors.New("link: invalid option supplied")

// Direction of travel along a corridor.
type Direction int8

// Directions in enumeration (tie-break) order.
const (
	NoDirection Direction = iota - 1
	Up
	Right
	Down
	Left
)

// offsets are indexed by Direction.
var offsets = [4]board.Pos{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Option configures a Finder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewFinder.
type Option func(*Options)

// Options holds the search parameters of a Finder.
type Options struct {
	// MaxTurns is the largest number of direction changes allowed on a path.
	MaxTurns int

	err error
}

// DefaultOptions returns Options with MaxTurns = DefaultMaxTurns.
func DefaultOptions() Options {
	return Options{MaxTurns: DefaultMaxTurns}
}

// WithMaxTurns sets the bend budget.
//
//	0 ≤ n ≤ MaxTurnsLimit: accepted (0 means straight lines only)
//	otherwise:            ErrOptionViolation
func WithMaxTurns(n int) Option {
	return func(o *Options) {
		if n < 0 || n > MaxTurnsLimit {
			o.err = fmt.Errorf("%w: MaxTurns must be in [0,%d] (got %d)", ErrOptionViolation, MaxTurnsLimit, n)
			return
		}
		o.MaxTurns = n
	}
}

// state is one arena entry: a cell reached while travelling in dir after turns bends.
type state struct {
	pos   int32 // row-major cell index
	prev  int32 // arena handle of the parent, -1 for the root
	dir   Direction
	turns int8
}
