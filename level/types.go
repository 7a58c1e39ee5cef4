package level

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrLevelNotFound indicates a level id absent from the pack.
	ErrLevelNotFound = errors.New("level: not found")
	// ErrInvalidLevel indicates a level configuration violating its constraints.
	ErrInvalidLevel = errors.New("level: invalid configuration")
	// ErrInvalidPack indicates an unreadable or inconsistent level pack.
	ErrInvalidPack = errors.New("level: invalid pack")
)

// MaxInnerSide bounds InnerRows and InnerCols. Path searches size their
// buffers by board area, and the pair scan is quadratic in the tile count.
const MaxInnerSide = 32

// GoalKind enumerates the win conditions.
type GoalKind string

const (
	// GoalClearAll is won when no tile remains.
	GoalClearAll GoalKind = "clear_all"
	// GoalClearTarget is won once Target pairs have been removed.
	GoalClearTarget GoalKind = "clear_target"
)

// Goal is the win condition of a level.
type Goal struct {
	Kind   GoalKind `mapstructure:"type" yaml:"type" json:"type"`
	Target int      `mapstructure:"target" yaml:"target,omitempty" json:"target,omitempty"`
}

// Validate reports ErrInvalidLevel for unknown kinds or a missing target.
func (g Goal) Validate() error {
	switch g.Kind {
	case GoalClearAll:
		return nil
	case GoalClearTarget:
		if g.Target < 1 {
			return fmt.Errorf("%w: clear_target needs target ≥ 1 (got %d)", ErrInvalidLevel, g.Target)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidLevel, g.Kind)
	}
}

// Reached reports whether the goal is met after pairsRemoved removals,
// given whether the board is now empty. An emptied board always wins.
func (g Goal) Reached(pairsRemoved int, cleared bool) bool {
	switch g.Kind {
	case GoalClearTarget:
		return cleared || pairsRemoved >= g.Target
	default:
		return cleared
	}
}

// Config describes one level.
type Config struct {
	ID        int  `mapstructure:"id" yaml:"id" json:"id"`
	InnerRows int  `mapstructure:"innerRows" yaml:"innerRows" json:"innerRows"`
	InnerCols int  `mapstructure:"innerCols" yaml:"innerCols" json:"innerCols"`
	TimeSec   int  `mapstructure:"time" yaml:"time" json:"time"`
	TileTypes int  `mapstructure:"tileTypes" yaml:"tileTypes" json:"tileTypes"`
	Goal      Goal `mapstructure:"goal" yaml:"goal" json:"goal"`
	// Obstacles are opaque descriptors for the presentation layer; the engine
	// does not place them on the board.
	Obstacles  []string `mapstructure:"obstacles" yaml:"obstacles,omitempty" json:"obstacles,omitempty"`
	RewardNode bool     `mapstructure:"rewardNode" yaml:"rewardNode,omitempty" json:"rewardNode,omitempty"`
}

// TimeLimit returns the time budget as a duration; zero means untimed.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeSec) * time.Second
}

// Cells returns the number of playable cells.
func (c Config) Cells() int {
	return c.InnerRows * c.InnerCols
}

// Validate checks sizes, tile types, time budget and goal.
// An odd cell count is left to the generator, which reports it distinctly.
func (c Config) Validate() error {
	switch {
	case c.InnerRows < 1 || c.InnerCols < 1 || c.InnerRows > MaxInnerSide || c.InnerCols > MaxInnerSide:
		return fmt.Errorf("%w: level %d grid %d×%d (sides 1..%d)", ErrInvalidLevel, c.ID, c.InnerRows, c.InnerCols, MaxInnerSide)
	case c.TileTypes < 1:
		return fmt.Errorf("%w: level %d tileTypes %d", ErrInvalidLevel, c.ID, c.TileTypes)
	case c.TimeSec < 0:
		return fmt.Errorf("%w: level %d time %d", ErrInvalidLevel, c.ID, c.TimeSec)
	}
	if err := c.Goal.Validate(); err != nil {
		return fmt.Errorf("level %d: %w", c.ID, err)
	}
	return nil
}

// Meta carries pack metadata.
type Meta struct {
	Version string `mapstructure:"version" yaml:"version" json:"version"`
}

// Pack is an ordered collection of levels.
type Pack struct {
	Meta   Meta     `mapstructure:"meta" yaml:"meta" json:"meta"`
	Levels []Config `mapstructure:"levels" yaml:"levels" json:"levels"`
}
