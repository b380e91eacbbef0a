package mines

// CellInfo describes a cell opened by a reveal.
type CellInfo struct {
	X             int  `json:"x"`
	Y             int  `json:"y"`
	AdjacentMines int  `json:"adjacent_mines"`
	IsMine        bool `json:"is_mine"`
}

func (b *Board) info(i int) CellInfo {
	x, y := ToPos(i, b.params.Width)
	c := b.cells[i]
	return CellInfo{X: x, Y: y, AdjacentMines: c.adjacent, IsMine: c.mine}
}

/*
CellView is what a player may know about a cell. IsMine is only set for
opened cells and after a loss; AdjacentMines only for opened cells.
*/
type CellView struct {
	X             int        `json:"x"`
	Y             int        `json:"y"`
	Visibility    Visibility `json:"visibility"`
	IsMine        *bool      `json:"is_mine,omitempty"`
	AdjacentMines *int       `json:"adjacent_mines,omitempty"`
}

func (b *Board) Cell(x, y int) (CellView, error) {
	if !b.InBounds(x, y) {
		return CellView{}, b.outOfBounds(x, y)
	}
	return b.view(ToIndex(x, y, b.params.Width), b.Outcome()), nil
}

func (b *Board) view(i int, outcome Outcome) CellView {
	x, y := ToPos(i, b.params.Width)
	c := b.cells[i]
	v := CellView{X: x, Y: y, Visibility: c.visibility}
	if c.visibility == Opened || outcome == Lost {
		mine := c.mine
		v.IsMine = &mine
	}
	if c.visibility == Opened && !c.mine {
		n := c.adjacent
		v.AdjacentMines = &n
	}
	return v
}

// Mines lists the mine indices once the game is over and nil before.
func (b *Board) Mines() []int {
	if b.Outcome() == InProgress {
		return nil
	}
	var mines []int
	for i, c := range b.cells {
		if c.mine {
			mines = append(mines, i)
		}
	}
	return mines
}

type Snapshot struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	MineCount int        `json:"mine_count"`
	FlagCount int        `json:"flag_count"`
	Revealed  int        `json:"revealed"`
	Outcome   Outcome    `json:"outcome"`
	Cells     []CellView `json:"cells"`
}

func (b *Board) Snapshot() Snapshot {
	outcome := b.Outcome()
	cells := make([]CellView, len(b.cells))
	for i := range b.cells {
		cells[i] = b.view(i, outcome)
	}
	return Snapshot{
		Width:     b.params.Width,
		Height:    b.params.Height,
		MineCount: b.params.MineCount,
		FlagCount: b.FlagCount(),
		Revealed:  b.RevealedCount(),
		Outcome:   outcome,
		Cells:     cells,
	}
}
