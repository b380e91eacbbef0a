package mines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellHidesUnopenedState(t *testing.T) {
	b := mustLayout(t, 3, 3, 4)

	v, err := b.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Closed, v.Visibility)
	assert.Nil(t, v.IsMine)
	assert.Nil(t, v.AdjacentMines)

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)
	v, err = b.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Opened, v.Visibility)
	require.NotNil(t, v.IsMine)
	assert.False(t, *v.IsMine)
	require.NotNil(t, v.AdjacentMines)
	assert.Equal(t, 1, *v.AdjacentMines)

	v, err = b.Cell(2, 2)
	require.NoError(t, err)
	assert.Nil(t, v.IsMine)
	assert.Nil(t, v.AdjacentMines)
}

func TestCellShowsMinesAfterLoss(t *testing.T) {
	b := mustLayout(t, 3, 3, 4, 8)
	_, err := b.Reveal(1, 1)
	require.NoError(t, err)

	v, err := b.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Closed, v.Visibility)
	require.NotNil(t, v.IsMine)
	assert.True(t, *v.IsMine)
	assert.Nil(t, v.AdjacentMines)

	v, err = b.Cell(0, 0)
	require.NoError(t, err)
	require.NotNil(t, v.IsMine)
	assert.False(t, *v.IsMine)
	assert.Nil(t, v.AdjacentMines)

	assert.Equal(t, []int{4, 8}, b.Mines())
}

func TestSnapshotJSON(t *testing.T) {
	b := mustLayout(t, 2, 1, 1)
	_, err := b.Reveal(0, 0)
	require.NoError(t, err)

	data, err := json.Marshal(b.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"width": 2, "height": 1, "mine_count": 1,
		"flag_count": 0, "revealed": 1, "outcome": "won",
		"cells": [
			{"x": 0, "y": 0, "visibility": "opened", "is_mine": false, "adjacent_mines": 1},
			{"x": 1, "y": 0, "visibility": "closed"}
		]
	}`, string(data))
}
