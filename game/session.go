package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/generator"
	"github.com/katalvlaran/lianlian/level"
	"github.com/katalvlaran/lianlian/link"
	"github.com/katalvlaran/lianlian/logging"
	"github.com/katalvlaran/lianlian/solver"
)

// Session owns one board for the lifetime of a level attempt.
// It is not safe for concurrent use.
type Session struct {
	id          uuid.UUID
	level       level.Config
	board       *board.Board
	state       State
	selected    *board.Pos
	finished    bool
	pairs       int
	props       map[Prop]int
	rng         *rand.Rand
	finder      *link.Finder
	maxAttempts int
	log         zerolog.Logger
	now         func() time.Time
	started     time.Time
	ended       time.Time
}

// NewSession validates cfg and builds its board. The session starts in
// StateGenerated; call Start to begin play.
func NewSession(cfg level.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc := newSessionConfig(opts...)

	b := sc.board
	if b == nil {
		var err error
		b, err = generator.Generate(cfg,
			generator.WithRand(sc.rng),
			generator.WithMaxAttempts(sc.maxAttempts),
		)
		if err != nil {
			return nil, fmt.Errorf("game: level %d: %w", cfg.ID, err)
		}
	}
	f, err := link.NewFinder()
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:          sc.id,
		level:       cfg,
		board:       b,
		state:       StateGenerated,
		props:       make(map[Prop]int),
		rng:         sc.rng,
		finder:      f,
		maxAttempts: sc.maxAttempts,
		log:         logging.WithSession(sc.log, sc.id.String(), cfg.ID),
		now:         sc.now,
	}
	s.log.Debug().
		Int("rows", cfg.InnerRows).
		Int("cols", cfg.InnerCols).
		Int("tiles", b.TileCount()).
		Msg("session created")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Level returns the level the session plays.
func (s *Session) Level() level.Config { return s.level }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Board returns a copy of the current board.
func (s *Session) Board() *board.Board { return s.board.Clone() }

// Selected returns the selected tile, if any.
func (s *Session) Selected() (board.Pos, bool) {
	if s.selected == nil {
		return board.Pos{}, false
	}
	return *s.selected, true
}

// PairsRemoved returns how many pairs the player has removed.
func (s *Session) PairsRemoved() int { return s.pairs }

// Over reports whether no further moves are accepted.
func (s *Session) Over() bool { return s.finished || s.state == StateCleared }

// Elapsed returns the play time so far, or the final duration once finished.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case s.finished:
		return s.ended.Sub(s.started)
	}
	return s.now().Sub(s.started)
}

// Start stamps the start time and runs the guarantor on the fresh board,
// moving to StatePlayable or StateStuck.
func (s *Session) Start() (State, error) {
	if s.state != StateGenerated {
		return s.state, ErrAlreadyStarted
	}
	s.started = s.now()
	s.settle()
	s.log.Info().Stringer("state", s.state).Msg("session started")
	return s.state, nil
}

// Click applies one player click at p.
//
// In StatePlayable an occupied cell becomes the selection and an empty cell
// is ignored. In StateSelecting, clicking the selection again deselects it;
// any other cell is treated as the partner and either removes the pair or
// drops the selection without touching the board.
func (s *Session) Click(p board.Pos) (Outcome, error) {
	if err := s.playable(); err != nil {
		return Outcome{State: s.state}, err
	}
	if s.state == StateStuck {
		return Outcome{State: s.state}, ErrStuck
	}
	if !s.board.InBounds(p) {
		return Outcome{State: s.state}, fmt.Errorf("%w: %v", board.ErrOutOfBounds, p)
	}

	if s.selected == nil {
		if s.board.IsEmpty(p) {
			return s.outcome(OutcomeIgnored, nil), nil
		}
		sel := p
		s.selected = &sel
		s.state = StateSelecting
		return s.outcome(OutcomeSelected, nil), nil
	}

	first := *s.selected
	s.selected = nil
	s.state = StatePlayable
	if p == first {
		return s.outcome(OutcomeDeselected, nil), nil
	}

	path := attemptRemove(s.board, first, p, s.finder)
	if path == nil {
		s.log.Debug().Stringer("a", first).Stringer("b", p).Msg("mismatch")
		return s.outcome(OutcomeMismatch, nil), nil
	}
	s.pairs++
	s.log.Debug().
		Stringer("a", first).
		Stringer("b", p).
		Int("turns", link.Turns(path)).
		Msg("pair removed")

	s.settle()
	return s.outcome(OutcomeRemoved, &board.Pair{A: first, B: p, Path: path}), nil
}

// Hint returns a connectable pair without changing the board or the state.
// A nil pair means the board has no move.
func (s *Session) Hint() (*board.Pair, error) {
	if err := s.playable(); err != nil {
		return nil, err
	}
	s.props[PropHint]++
	return solver.FindAnyPair(s.board), nil
}

// Shuffle forces a reshuffle followed by the guarantor, dropping any
// selection. It reports whether the board has a move afterwards; a stuck
// session becomes playable again when it does.
func (s *Session) Shuffle() (bool, error) {
	if err := s.playable(); err != nil {
		return false, err
	}
	s.props[PropShuffle]++
	s.selected = nil
	solver.Shuffle(s.board, s.rng)
	s.settle()
	s.log.Debug().Stringer("state", s.state).Msg("board shuffled")
	return s.state == StatePlayable, nil
}

// Freeze records a use of the freeze prop. The timer itself is run by the
// controller.
func (s *Session) Freeze() error {
	if err := s.playable(); err != nil {
		return err
	}
	s.props[PropFreeze]++
	return nil
}

// Finish ends the session and returns its summary. Later calls return the
// same summary.
func (s *Session) Finish() Summary {
	if !s.finished {
		s.finished = true
		s.ended = s.now()
		if s.started.IsZero() {
			s.started = s.ended
		}
		s.selected = nil
	}
	sum := Summary{
		SessionID:    s.id,
		LevelID:      s.level.ID,
		Result:       ResultFail,
		Duration:     s.ended.Sub(s.started),
		PairsRemoved: s.pairs,
		TilesLeft:    s.board.TileCount(),
		PropsUsed:    lo.Assign(s.props),
	}
	if s.state == StateCleared {
		sum.Result = ResultSuccess
	}
	s.log.Info().
		Str("result", string(sum.Result)).
		Dur("duration", sum.Duration).
		Int("pairs", sum.PairsRemoved).
		Msg("session finished")
	return sum
}

// playable rejects moves before Start and after the session is over.
func (s *Session) playable() error {
	switch {
	case s.finished, s.state == StateCleared:
		return ErrSessionOver
	case s.state == StateGenerated:
		return ErrNotStarted
	}
	return nil
}

// settle picks the state after the board changed: cleared when the goal is
// met, otherwise playable or stuck depending on the guarantor.
func (s *Session) settle() {
	if s.level.Goal.Reached(s.pairs, s.board.Cleared()) {
		s.state = StateCleared
		return
	}
	if solver.EnsureHasMove(s.board, s.rng, solver.WithMaxAttempts(s.maxAttempts)) {
		s.state = StatePlayable
		return
	}
	s.state = StateStuck
	s.log.Warn().Int("tiles", s.board.TileCount()).Msg("no move after shuffling")
}

func (s *Session) outcome(kind OutcomeKind, pair *board.Pair) Outcome {
	return Outcome{Kind: kind, Pair: pair, State: s.state}
}
