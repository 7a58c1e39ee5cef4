package game

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lianlian/board"
)

var (
	// ErrNotStarted is returned by moves on a session that has not been started.
	ErrNotStarted = errors.New("game: session not started")
	// ErrSessionOver is returned by moves on a cleared or finished session.
	ErrSessionOver = errors.New("game: session is over")
	// ErrStuck is returned by Click while the board has no move; use Shuffle.
	ErrStuck = errors.New("game: board has no move")
	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = errors.New("game: session already started")
)

// State is the lifecycle position of a session.
type State int

const (
	StateGenerated State = iota
	StatePlayable
	StateSelecting
	StateCleared
	StateStuck
)

func (s State) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	case StatePlayable:
		return "playable"
	case StateSelecting:
		return "selecting"
	case StateCleared:
		return "cleared"
	case StateStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Prop is a player power-up.
type Prop string

const (
	PropHint    Prop = "hint"
	PropShuffle Prop = "shuffle"
	// PropFreeze stops the level timer; the timer lives in the controller,
	// the session only counts its use.
	PropFreeze Prop = "freeze"
)

// OutcomeKind classifies the effect of a click.
type OutcomeKind int

const (
	// OutcomeIgnored: an empty cell was clicked with nothing selected.
	OutcomeIgnored OutcomeKind = iota
	// OutcomeSelected: the first tile of a pair was picked.
	OutcomeSelected
	// OutcomeDeselected: the selected tile was clicked again.
	OutcomeDeselected
	// OutcomeMismatch: the second tile does not pair with the first.
	OutcomeMismatch
	// OutcomeRemoved: the pair was connected and removed.
	OutcomeRemoved
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Outcome reports what a click did and where the session ended up.
type Outcome struct {
	Kind OutcomeKind
	// Pair is set for OutcomeRemoved; its Path is what the renderer animates.
	Pair  *board.Pair
	State State
}

// Result is the final verdict of a session.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFail    Result = "fail"
)

// Summary is the set of session-finish facts handed to the persistence layer.
// Scores and stars are computed outside the engine.
type Summary struct {
	SessionID    uuid.UUID     `json:"sessionId"`
	LevelID      int           `json:"levelId"`
	Result       Result        `json:"result"`
	Duration     time.Duration `json:"durationNs"`
	PairsRemoved int           `json:"pairsRemoved"`
	TilesLeft    int           `json:"tilesLeft"`
	PropsUsed    map[Prop]int  `json:"propsUsed"`
}
