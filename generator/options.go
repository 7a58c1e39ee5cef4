package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lianlian/solver"
)

// Option customizes Generate. Option constructors panic on meaningless values.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxAttempts int
}

func newConfig(opts ...Option) config {
	cfg := config{maxAttempts: solver.DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithRand supplies the random source used for layout and shuffling.
// Panics on nil; prefer WithSeed for reproducible boards.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic source from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts bounds the guarantor's shuffles after layout.
// Panics on negative n.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic("generator: WithMaxAttempts(negative)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}
