package mines

import "fmt"

type Visibility int8

const (
	Closed Visibility = iota
	Opened
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Closed:
		return "closed"
	case Opened:
		return "opened"
	case Flagged:
		return "flagged"
	default:
		return fmt.Sprintf("Visibility(%d)", int8(v))
	}
}

// [Visibility] implements [encoding.TextMarshaler]
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Cell is one grid position. mine and adjacent are fixed once the board
// has placed its mines; only visibility changes during play.
type Cell struct {
	mine       bool
	visibility Visibility
	adjacent   int
}

func (c Cell) IsMine() bool {
	return c.mine
}

func (c Cell) Visibility() Visibility {
	return c.visibility
}

// AdjacentMines is meaningless for mine cells.
func (c Cell) AdjacentMines() int {
	return c.adjacent
}
