package mines

import "fmt"

type Outcome int8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

// [Outcome] implements [encoding.TextMarshaler]
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

/*
Outcome is derived from the cells on every call; the board keeps no
game-over flag that could drift from them. The game is lost as soon as
any mine is open and won once every safe cell is open.
*/
func (b *Board) Outcome() Outcome {
	openedSafe := 0
	for _, c := range b.cells {
		if c.visibility != Opened {
			continue
		}
		if c.mine {
			return Lost
		}
		openedSafe++
	}
	if openedSafe == len(b.cells)-b.params.MineCount {
		return Won
	}
	return InProgress
}
