package mines

import (
	"fmt"
	"strings"
)

// MaxCells bounds Width*Height.
const MaxCells = 1 << 20

type GameParams struct {
	Width, Height, MineCount int
	// SafeStart defers mine placement to the first reveal so that the
	// first opened cell is never a mine.
	SafeStart bool
}

func (p GameParams) Unpack() (w int, h int, mc int, s bool) {
	return p.Width, p.Height, p.MineCount, p.SafeStart
}

// Validate requires at least one safe cell so a first move exists.
func (p GameParams) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, p.Width)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, p.Height)
	}
	// division keeps Width*Height below from overflowing
	if p.Width > MaxCells/p.Height {
		return fmt.Errorf(
			"%w: %dx%d board exceeds %d cells",
			ErrInvalidConfig, p.Width, p.Height, MaxCells,
		)
	}
	if p.MineCount < 0 || p.MineCount > p.Width*p.Height-1 {
		return fmt.Errorf(
			"%w: mine count must be in [0, %d], got %d",
			ErrInvalidConfig, p.Width*p.Height-1, p.MineCount,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	s := 0
	if p.SafeStart {
		s = 1
	}
	return fmt.Sprintf("%d:%d:%d:%d", p.Width, p.Height, p.MineCount, s)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	s := 0
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d", &p.Width, &p.Height, &p.MineCount, &s,
	)
	if n != 4 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %v)`,
			seed, n, err,
		)
	}
	p.SafeStart = s == 1
	return p, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return InBounds(x, y, p.Width, p.Height)
}
