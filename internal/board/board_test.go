/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/types"
)

func TestNewBoardStartsEmpty(t *testing.T) {
	b := New(types.Base)
	assert.Equal(t, types.NotStarted, b.BoardState())
	assert.Equal(t, 0, b.CurrentTurn())
	assert.Equal(t, types.White, b.CurrentColor())
	for pn := types.PieceName(0); pn < types.NumPieceNames; pn++ {
		assert.True(t, b.PieceInHand(pn))
	}
}

func TestSetPositionKeepsGridInSync(t *testing.T) {
	b := New(types.Base)
	b.SetPosition(types.WQ, hexgrid.Origin)

	assert.Equal(t, hexgrid.Origin, b.GetPosition(types.WQ))
	assert.Equal(t, types.WQ, b.GetPieceAt(hexgrid.Origin))
	assert.True(t, b.HasPieceAt(hexgrid.Origin))

	neighbor := hexgrid.Origin.NeighborAt(types.Up)
	b.SetPosition(types.WQ, neighbor)

	assert.False(t, b.HasPieceAt(hexgrid.Origin))
	assert.True(t, b.HasPieceAt(neighbor))
}

func TestGetPieceOnTopAtFollowsStack(t *testing.T) {
	b := New(types.Base)
	b.SetPosition(types.WQ, hexgrid.Origin)
	b.SetPosition(types.WB1, hexgrid.Origin.Above())

	assert.Equal(t, types.WB1, b.GetPieceOnTopAt(hexgrid.Origin))
	assert.Equal(t, types.WQ, b.GetPieceAt(hexgrid.Origin))
}

func TestGameStringFormat(t *testing.T) {
	b := New(types.Base)
	assert.Equal(t, "Base;NotStarted;White[1]", b.GetGameString())

	b.TrustedPlay(move.Move{PieceName: types.WS1, Source: hexgrid.InHand, Destination: hexgrid.Origin})
	b.AppendMoveHistoryString("wS1")
	assert.Equal(t, "Base;InProgress;Black[1];wS1", b.GetGameString())
}

func TestPlacingPieceInOrder(t *testing.T) {
	b := New(types.Base)
	assert.False(t, b.PlacingPieceInOrder(types.WS2))

	b.SetPosition(types.WS1, hexgrid.Origin)
	assert.True(t, b.PlacingPieceInOrder(types.WS2))
}

func TestIsOneHiveTrivialWhenAllInHand(t *testing.T) {
	b := New(types.Base)
	assert.True(t, b.IsOneHive())
}

func TestIsOneHiveDetectsDisconnectedPiece(t *testing.T) {
	b := New(types.Base)
	b.SetPosition(types.WQ, hexgrid.Origin)
	b.SetPosition(types.BQ, hexgrid.Position{Q: 10, R: 10, Stack: 0})

	assert.False(t, b.IsOneHive())
}

func TestCanMoveWithoutBreakingHive(t *testing.T) {
	b := New(types.Base)
	b.SetPosition(types.WQ, hexgrid.Origin)
	b.SetPosition(types.WS1, hexgrid.Origin.NeighborAt(types.Up))

	// two pieces touching: either one can move without disconnecting the other.
	assert.True(t, b.CanMoveWithoutBreakingHive(types.WQ))
	assert.True(t, b.CanMoveWithoutBreakingHive(types.WS1))

	b.SetPosition(types.WB1, hexgrid.Origin.Above())
	assert.True(t, b.CanMoveWithoutBreakingHive(types.WB1), "a stacked piece is never load-bearing")
}
