package mines

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardBinaryRoundTrip(t *testing.T) {
	b, err := NewBoard(GameParams{Width: 8, Height: 6, MineCount: 9}, NewRand(11))
	require.NoError(t, err)
	for i, c := range b.cells {
		if !c.mine {
			x, y := ToPos(i, b.Width())
			_, err := b.Reveal(x, y)
			require.NoError(t, err)
			break
		}
	}
	_, err = b.ToggleFlag(7, 5)
	require.NoError(t, err)

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	decoded, err := DecodeBoard(data)
	require.NoError(t, err)

	assert.Equal(t, b.params, decoded.params)
	assert.Equal(t, b.cells, decoded.cells)
	assert.Equal(t, b.Outcome(), decoded.Outcome())
	assert.Equal(t, b.Snapshot(), decoded.Snapshot())
}

func TestDecodeSafeStartKeepsPlacementPending(t *testing.T) {
	b, err := NewBoard(GameParams{Width: 5, Height: 5, MineCount: 5, SafeStart: true}, NewRand(2))
	require.NoError(t, err)
	data, err := b.MarshalBinary()
	require.NoError(t, err)

	decoded, err := DecodeBoard(data)
	require.NoError(t, err)
	res, err := decoded.Reveal(2, 2)
	require.NoError(t, err)
	assert.False(t, res.Opened[0].IsMine)
	assert.Equal(t, 0, res.Opened[0].AdjacentMines)
}

func TestDecodeBoardGarbage(t *testing.T) {
	_, err := DecodeBoard([]byte("not a board"))
	assert.Error(t, err)
}

func encodeState(t *testing.T, state boardState) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(state))
	return buf.Bytes()
}

func TestDecodeBoardInconsistentState(t *testing.T) {
	pending := GameParams{Width: 2, Height: 2, MineCount: 1, SafeStart: true}
	placed := GameParams{Width: 2, Height: 2, MineCount: 1}
	closed := []Visibility{Closed, Closed, Closed, Closed}

	tests := []struct {
		name  string
		state boardState
	}{
		{"unknown visibility", boardState{
			Params:     placed,
			Placed:     true,
			Mines:      []bool{true, false, false, false},
			Visibility: []Visibility{Closed, Visibility(7), Closed, Closed},
		}},
		{"negative visibility", boardState{
			Params:     placed,
			Placed:     true,
			Mines:      []bool{true, false, false, false},
			Visibility: []Visibility{Closed, Closed, Visibility(-1), Closed},
		}},
		{"mines before placement", boardState{
			Params:     pending,
			Mines:      []bool{true, true, true, false},
			Visibility: closed,
		}},
		{"opened before placement", boardState{
			Params:     pending,
			Mines:      make([]bool, 4),
			Visibility: []Visibility{Opened, Closed, Closed, Closed},
		}},
		{"mine count mismatch", boardState{
			Params:     placed,
			Placed:     true,
			Mines:      []bool{true, true, false, false},
			Visibility: closed,
		}},
		{"cell count mismatch", boardState{
			Params:     placed,
			Placed:     true,
			Mines:      []bool{true, false, false},
			Visibility: closed,
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := DecodeBoard(encodeState(t, test.state))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, b)
		})
	}
}

func TestDecodePendingBoardWithFlags(t *testing.T) {
	data := encodeState(t, boardState{
		Params:     GameParams{Width: 2, Height: 2, MineCount: 1, SafeStart: true},
		Mines:      make([]bool, 4),
		Visibility: []Visibility{Flagged, Closed, Closed, Closed},
	})
	b, err := DecodeBoard(data)
	require.NoError(t, err)
	assert.Equal(t, 1, b.FlagCount())
	assert.Equal(t, InProgress, b.Outcome())
}
