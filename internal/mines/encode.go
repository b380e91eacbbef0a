package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// boardState is the gob form of a Board. Adjacent counts are derived
// again on decode.
type boardState struct {
	Params     GameParams
	Placed     bool
	Mines      []bool
	Visibility []Visibility
}

// [Board] implements [encoding.BinaryMarshaler]
func (b *Board) MarshalBinary() ([]byte, error) {
	state := boardState{
		Params:     b.params,
		Placed:     b.placed,
		Mines:      make([]bool, len(b.cells)),
		Visibility: make([]Visibility, len(b.cells)),
	}
	for i, c := range b.cells {
		state.Mines[i] = c.mine
		state.Visibility[i] = c.visibility
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// [Board] implements [encoding.BinaryUnmarshaler]
func (b *Board) UnmarshalBinary(data []byte) error {
	var state boardState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}
	if err := state.Params.Validate(); err != nil {
		return err
	}
	n := state.Params.Width * state.Params.Height
	if len(state.Mines) != n || len(state.Visibility) != n {
		return fmt.Errorf("%w: encoded board has %d cells, want %d", ErrInvalidConfig, len(state.Mines), n)
	}

	cells := make([]Cell, n)
	mineCount := 0
	for i := range cells {
		cells[i].mine = state.Mines[i]
		cells[i].visibility = state.Visibility[i]
		if v := cells[i].visibility; v < Closed || v > Flagged {
			return fmt.Errorf("%w: cell %d has unknown visibility %v", ErrInvalidConfig, i, v)
		}
		if cells[i].mine {
			mineCount++
		}
		// mines are placed on the first reveal, so nothing is open before
		if !state.Placed && cells[i].visibility == Opened {
			return fmt.Errorf("%w: cell %d opened before mines were placed", ErrInvalidConfig, i)
		}
	}
	if !state.Placed && mineCount != 0 {
		return fmt.Errorf(
			"%w: encoded board has %d mines before placement",
			ErrInvalidConfig, mineCount,
		)
	}
	if state.Placed && mineCount != state.Params.MineCount {
		return fmt.Errorf(
			"%w: encoded board has %d mines, want %d",
			ErrInvalidConfig, mineCount, state.Params.MineCount,
		)
	}

	b.params = state.Params
	b.cells = cells
	b.placed = state.Placed
	if b.rnd == nil {
		b.rnd = newRandomRand()
	}
	b.countAdjacent()
	return nil
}

func DecodeBoard(buf []byte) (*Board, error) {
	b := &Board{}
	if err := b.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return b, nil
}
