package level

import (
	"fmt"

	"github.com/samber/lo"
)

// Level returns the level with the given id, or ErrLevelNotFound.
func (p *Pack) Level(id int) (Config, error) {
	if p == nil {
		return Config{}, fmt.Errorf("%w: %d", ErrLevelNotFound, id)
	}
	l, ok := lo.Find(p.Levels, func(c Config) bool { return c.ID == id })
	if !ok {
		return Config{}, fmt.Errorf("%w: %d", ErrLevelNotFound, id)
	}
	return l, nil
}

// IDs returns the level ids in pack order.
func (p *Pack) IDs() []int {
	return lo.Map(p.Levels, func(c Config, _ int) int { return c.ID })
}

// Validate checks every level and rejects duplicate ids.
func (p *Pack) Validate() error {
	if len(p.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidPack)
	}
	if dups := lo.FindDuplicates(p.IDs()); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate level ids %v", ErrInvalidPack, dups)
	}
	for _, l := range p.Levels {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
