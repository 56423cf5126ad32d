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

package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiveengine/hivego/internal/types"
)

func TestInHandAndOnBoard(t *testing.T) {
	assert.True(t, InHand.IsInHand())
	assert.False(t, InHand.IsOnBoard())
	assert.True(t, Origin.IsOnBoard())
	assert.False(t, Origin.IsInHand())
}

func TestNeighborAtIsSymmetric(t *testing.T) {
	opposite := map[types.Direction]types.Direction{
		types.Up:        types.Down,
		types.UpRight:   types.DownLeft,
		types.DownRight: types.UpLeft,
		types.Down:      types.Up,
		types.DownLeft:  types.UpRight,
		types.UpLeft:    types.DownRight,
	}
	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		neighbor := Origin.NeighborAt(dir)
		back := neighbor.NeighborAt(opposite[dir])
		assert.Equal(t, Origin.Bottom(), back)
	}
}

func TestNeighborAtReturnsSixDistinctCells(t *testing.T) {
	seen := make(map[Position]bool)
	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		seen[Origin.NeighborAt(dir)] = true
	}
	assert.Len(t, seen, 6)
}

func TestAboveBelowBottom(t *testing.T) {
	p := Position{Q: 2, R: -3, Stack: 1}
	assert.Equal(t, Position{Q: 2, R: -3, Stack: 2}, p.Above())
	assert.Equal(t, Position{Q: 2, R: -3, Stack: 0}, p.Below())
	assert.Equal(t, Position{Q: 2, R: -3, Stack: 0}, p.Bottom())
}

func TestSamePlane(t *testing.T) {
	ground := Position{Q: 4, R: 1, Stack: 0}
	stacked := Position{Q: 4, R: 1, Stack: 2}
	other := Position{Q: 4, R: 2, Stack: 0}

	assert.True(t, ground.SamePlane(stacked))
	assert.False(t, ground.SamePlane(other))
}

func TestGridIndexCentersOnBoardSize(t *testing.T) {
	q, r, s := Origin.GridIndex()
	assert.Equal(t, BoardSize/2, q)
	assert.Equal(t, BoardSize/2, r)
	assert.Equal(t, 0, s)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(0,0,0)", Origin.String())
	assert.Equal(t, "(1,-2,3)", Position{Q: 1, R: -2, Stack: 3}.String())
}
