package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board owns the grid. Cells are stored row-major and addressed with
// [ToIndex]; they never refer back to the board.
type Board struct {
	params GameParams
	cells  []Cell
	placed bool
	rnd    *rand.Rand
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRandomRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewBoard places the mines right away unless params.SafeStart is set,
// in which case placement waits for the first [Board.Reveal]. A nil r
// gets a randomly seeded source.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = newRandomRand()
	}
	b := &Board{
		params: params,
		cells:  make([]Cell, params.Width*params.Height),
		rnd:    r,
	}
	if !params.SafeStart {
		b.placeMines(-1, -1)
	}
	return b, nil
}

// NewBoardFromLayout builds a board whose mines sit at the given indices.
func NewBoardFromLayout(width, height int, mines []int) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		cells:  make([]Cell, width*height),
		placed: true,
	}
	for _, i := range mines {
		if i < 0 || i >= len(b.cells) {
			return nil, fmt.Errorf("%w: mine index %d outside %dx%d board", ErrInvalidConfig, i, width, height)
		}
		if b.cells[i].mine {
			return nil, fmt.Errorf("%w: duplicate mine index %d", ErrInvalidConfig, i)
		}
		b.cells[i].mine = true
	}
	b.countAdjacent()
	return b, nil
}

func (b *Board) Width() int {
	return b.params.Width
}

func (b *Board) Height() int {
	return b.params.Height
}

func (b *Board) MineCount() int {
	return b.params.MineCount
}

func (b *Board) Params() GameParams {
	return b.params
}

func (b *Board) InBounds(x, y int) bool {
	return InBounds(x, y, b.params.Width, b.params.Height)
}

func (b *Board) RevealedCount() (count int) {
	for _, c := range b.cells {
		if c.visibility == Opened {
			count++
		}
	}
	return
}

func (b *Board) FlagCount() (count int) {
	for _, c := range b.cells {
		if c.visibility == Flagged {
			count++
		}
	}
	return
}

/*
placeMines picks MineCount distinct cells. With a start position the
start cell and its neighbors are kept clear; when that leaves too few
candidates only the start cell itself is kept clear. A negative startX
means no exclusion.
*/
func (b *Board) placeMines(startX, startY int) {
	width, height, mineCount, _ := b.params.Unpack()

	candidates := make([]int, 0, width*height)
	if startX >= 0 {
		for y := range height {
			for x := range width {
				if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
					candidates = append(candidates, ToIndex(x, y, width))
				}
			}
		}
		if len(candidates) < mineCount {
			candidates = candidates[:0]
			start := ToIndex(startX, startY, width)
			for i := range width * height {
				if i != start {
					candidates = append(candidates, i)
				}
			}
		}
	} else {
		for i := range width * height {
			candidates = append(candidates, i)
		}
	}

	k := len(candidates)
	for range mineCount {
		i := b.rnd.IntN(k)
		b.cells[candidates[i]].mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countAdjacent()
	b.placed = true

	Log.WithFields(logrus.Fields{
		"params": b.params.Seed(),
		"startX": startX,
		"startY": startY,
	}).Debug("placed mines")
}

func (b *Board) countAdjacent() {
	width, height := b.params.Width, b.params.Height
	for i := range b.cells {
		if b.cells[i].mine {
			continue
		}
		x, y := ToPos(i, width)
		n := 0
		for _, j := range Neighbors(x, y, width, height) {
			if b.cells[j].mine {
				n++
			}
		}
		b.cells[i].adjacent = n
	}
}
