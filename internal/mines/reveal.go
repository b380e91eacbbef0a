package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type RevealResult struct {
	Opened  []CellInfo `json:"opened"`
	Outcome Outcome    `json:"outcome"`
}

func (b *Board) outOfBounds(x, y int) error {
	return fmt.Errorf(
		"%w: (%d, %d) on %dx%d board",
		ErrOutOfBounds, x, y, b.params.Width, b.params.Height,
	)
}

/*
Reveal opens the cell at (x, y). Opening a zero cell floods outward
through closed neighbors: every reached cell is opened, and only zero
cells keep spreading. Flagged cells stop the flood.

Opened, flagged and finished games are left untouched and produce an
empty result.
*/
func (b *Board) Reveal(x, y int) (RevealResult, error) {
	if !b.InBounds(x, y) {
		return RevealResult{}, b.outOfBounds(x, y)
	}
	if outcome := b.Outcome(); outcome != InProgress {
		return RevealResult{Outcome: outcome}, nil
	}
	i := ToIndex(x, y, b.params.Width)
	if b.cells[i].visibility != Closed {
		return RevealResult{Outcome: InProgress}, nil
	}
	if !b.placed {
		b.placeMines(x, y)
	}

	opened := b.open(i)
	outcome := b.Outcome()

	Log.WithFields(logrus.Fields{
		"x": x, "y": y,
		"opened":  len(opened),
		"outcome": outcome,
	}).Debug("reveal")

	return RevealResult{Opened: opened, Outcome: outcome}, nil
}

// open expects cells[i] to be closed. A cell is marked opened when it
// is queued, so nothing is queued twice.
func (b *Board) open(i int) []CellInfo {
	width, height := b.params.Width, b.params.Height

	b.cells[i].visibility = Opened
	opened := []CellInfo{b.info(i)}
	if b.cells[i].mine || b.cells[i].adjacent > 0 {
		return opened
	}

	todo := newCellTodo(len(b.cells))
	todo.add(i)
	for j, ok := todo.pop(); ok; j, ok = todo.pop() {
		x, y := ToPos(j, width)
		for _, k := range Neighbors(x, y, width, height) {
			if b.cells[k].visibility != Closed {
				continue
			}
			/* neighbors of a zero cell are never mines */
			b.cells[k].visibility = Opened
			opened = append(opened, b.info(k))
			if b.cells[k].adjacent == 0 {
				todo.add(k)
			}
		}
	}
	return opened
}

// ToggleFlag switches a closed cell to flagged and back. Opened cells
// cannot be flagged. The returned value is the cell's new visibility.
func (b *Board) ToggleFlag(x, y int) (Visibility, error) {
	if !b.InBounds(x, y) {
		return Closed, b.outOfBounds(x, y)
	}
	c := &b.cells[ToIndex(x, y, b.params.Width)]
	switch c.visibility {
	case Closed:
		c.visibility = Flagged
	case Flagged:
		c.visibility = Closed
	}
	return c.visibility, nil
}

/*
Chord opens every closed neighbor of an opened numbered cell once the
player has flagged as many neighbors as the number says. A wrong flag
means a mine gets opened and the game is lost.
*/
func (b *Board) Chord(x, y int) (RevealResult, error) {
	if !b.InBounds(x, y) {
		return RevealResult{}, b.outOfBounds(x, y)
	}
	if outcome := b.Outcome(); outcome != InProgress {
		return RevealResult{Outcome: outcome}, nil
	}
	width, height := b.params.Width, b.params.Height
	c := b.cells[ToIndex(x, y, width)]
	if c.visibility != Opened || c.mine {
		return RevealResult{Outcome: InProgress}, nil
	}

	neighbors := Neighbors(x, y, width, height)
	flags := 0
	for _, j := range neighbors {
		if b.cells[j].visibility == Flagged {
			flags++
		}
	}
	if flags != c.adjacent {
		return RevealResult{Outcome: InProgress}, nil
	}

	var opened []CellInfo
	for _, j := range neighbors {
		if b.cells[j].visibility != Closed {
			continue
		}
		opened = append(opened, b.open(j)...)
		if b.cells[j].mine {
			break
		}
	}
	outcome := b.Outcome()

	Log.WithFields(logrus.Fields{
		"x": x, "y": y,
		"opened":  len(opened),
		"outcome": outcome,
	}).Debug("chord")

	return RevealResult{Opened: opened, Outcome: outcome}, nil
}
