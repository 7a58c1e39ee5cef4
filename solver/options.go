package solver

import (
	"fmt"

	"github.com/katalvlaran/lianlian/link"
)

// DefaultMaxAttempts is the number of shuffles EnsureHasMove tries before its final probe.
const DefaultMaxAttempts = 10

// Option customizes scanning and retry behavior.
// Option constructors panic on meaningless values.
type Option func(*config)

type config struct {
	maxAttempts int
	maxTurns    int
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxAttempts: DefaultMaxAttempts,
		maxTurns:    link.DefaultMaxTurns,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxAttempts sets how many shuffles EnsureHasMove may perform.
// Zero means "probe only". Panics on negative n.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("solver: WithMaxAttempts(%d)", n))
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithMaxTurns sets the bend budget used to connect pairs.
// Panics outside [0, link.MaxTurnsLimit].
func WithMaxTurns(n int) Option {
	if n < 0 || n > link.MaxTurnsLimit {
		panic(fmt.Sprintf("solver: WithMaxTurns(%d)", n))
	}
	return func(c *config) {
		c.maxTurns = n
	}
}

// finder builds a path finder for cfg. maxTurns was validated by WithMaxTurns.
func (c config) finder() *link.Finder {
	f, err := link.NewFinder(link.WithMaxTurns(c.maxTurns))
	if err != nil {
		panic(err)
	}
	return f
}
