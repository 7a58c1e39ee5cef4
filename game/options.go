package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/solver"
)

// Option customizes NewSession.
type Option func(*sessionConfig)

type sessionConfig struct {
	id          uuid.UUID
	rng         *rand.Rand
	log         zerolog.Logger
	now         func() time.Time
	maxAttempts int
	board       *board.Board
}

func newSessionConfig(opts ...Option) sessionConfig {
	cfg := sessionConfig{
		log:         zerolog.Nop(),
		now:         time.Now,
		maxAttempts: solver.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.now().UnixNano()))
	}
	return cfg
}

// WithRand supplies the random source for generation and shuffles.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("game: WithRand(nil)")
	}
	return func(c *sessionConfig) { c.rng = r }
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed int64) Option {
	return func(c *sessionConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a logger; sessions log nothing by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *sessionConfig) { c.log = l }
}

// WithClock replaces time.Now, for tests and replays. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("game: WithClock(nil)")
	}
	return func(c *sessionConfig) { c.now = now }
}

// WithSessionID fixes the session identifier instead of a random UUID.
func WithSessionID(id uuid.UUID) Option {
	return func(c *sessionConfig) { c.id = id }
}

// WithMaxAttempts bounds the guarantor's shuffles. Panics on negative n.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic("game: WithMaxAttempts(negative)")
	}
	return func(c *sessionConfig) { c.maxAttempts = n }
}

// WithBoard plays on b instead of generating a board from the level.
// The session takes ownership of b. Panics on nil.
func WithBoard(b *board.Board) Option {
	if b == nil {
		panic("game: WithBoard(nil)")
	}
	return func(c *sessionConfig) { c.board = b }
}
