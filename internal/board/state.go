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
	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/types"
)

// CountNeighbors returns how many of pn's six ground neighbors are occupied.
// A piece in hand has no neighbors by definition.
func (b *Board) CountNeighbors(pn types.PieceName) int {
	if !b.PieceInPlay(pn) {
		return 0
	}
	count := 0
	pos := b.GetPosition(pn)
	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		if b.HasPieceAt(pos.NeighborAt(dir)) {
			count++
		}
	}
	return count
}

// ResetState recomputes currentColor (implicit in CurrentColor) and
// boardState from scratch: Draw if both queens are surrounded, a win for
// whichever color's queen is not surrounded if only one is, else
// NotStarted/InProgress depending on whether any ply has been played.
func (b *Board) ResetState() {
	whiteQueenSurrounded := b.CountNeighbors(types.WQ) == 6
	blackQueenSurrounded := b.CountNeighbors(types.BQ) == 6

	switch {
	case whiteQueenSurrounded && blackQueenSurrounded:
		b.boardState = types.Draw
	case whiteQueenSurrounded:
		b.boardState = types.BlackWins
	case blackQueenSurrounded:
		b.boardState = types.WhiteWins
	case b.currentTurn == 0:
		b.boardState = types.NotStarted
	default:
		b.boardState = types.InProgress
	}
}

// IsOneHive reports whether every placed identity is reachable from any
// other by a chain of ground-level adjacency or direct stacking — the
// one-hive connectivity invariant. Pieces still in hand count as trivially
// connected since they impose no constraint on the board.
func (b *Board) IsOneHive() bool {
	var partOfHive [types.NumPieceNames]bool
	piecesVisited := 0

	startingPiece := types.PieceNameInvalid
	for pn := types.PieceName(0); pn < types.NumPieceNames; pn++ {
		if b.PieceInHand(pn) {
			partOfHive[pn] = true
			piecesVisited++
			continue
		}
		if startingPiece == types.PieceNameInvalid && b.GetPosition(pn).Stack == 0 {
			startingPiece = pn
			partOfHive[pn] = true
			piecesVisited++
		}
	}

	if startingPiece != types.PieceNameInvalid && piecesVisited < int(types.NumPieceNames) {
		queue := []types.PieceName{startingPiece}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			pos := b.GetPosition(current)

			for dir := types.Direction(0); dir < types.NumDirections; dir++ {
				neighbor := b.GetPieceAt(pos.NeighborAt(dir))
				if neighbor != types.PieceNameInvalid && !partOfHive[neighbor] {
					queue = append(queue, neighbor)
					partOfHive[neighbor] = true
					piecesVisited++
				}
			}

			above := b.GetPieceAt(pos.Above())
			for above != types.PieceNameInvalid {
				partOfHive[above] = true
				piecesVisited++
				above = b.GetPieceAt(b.GetPosition(above).Above())
			}
		}
	}

	return piecesVisited == int(types.NumPieceNames)
}

// CanMoveWithoutBreakingHive reports whether pn can be removed from the
// board without disconnecting the hive. A stacked piece is never
// load-bearing, so it always reports true for one.
func (b *Board) CanMoveWithoutBreakingHive(pn types.PieceName) bool {
	pos := b.GetPosition(pn)
	if pos.Stack != 0 {
		return true
	}

	b.SetPosition(pn, hexgrid.InHand)
	ok := b.IsOneHive()
	b.SetPosition(pn, pos)
	return ok
}

// PlacingPieceInOrder reports whether pn may be placed yet: each color's
// second-and-later spider/beetle/grasshopper/soldier ant must enter in
// order (S2 only after S1, etc.); every other identity has no ordering
// constraint.
func (b *Board) PlacingPieceInOrder(pn types.PieceName) bool {
	if !b.PieceInHand(pn) {
		return true
	}
	switch pn {
	case types.WS2:
		return b.PieceInPlay(types.WS1)
	case types.WB2:
		return b.PieceInPlay(types.WB1)
	case types.WG2:
		return b.PieceInPlay(types.WG1)
	case types.WG3:
		return b.PieceInPlay(types.WG2)
	case types.WA2:
		return b.PieceInPlay(types.WA1)
	case types.WA3:
		return b.PieceInPlay(types.WA2)
	case types.BS2:
		return b.PieceInPlay(types.BS1)
	case types.BB2:
		return b.PieceInPlay(types.BB1)
	case types.BG2:
		return b.PieceInPlay(types.BG1)
	case types.BG3:
		return b.PieceInPlay(types.BG2)
	case types.BA2:
		return b.PieceInPlay(types.BA1)
	case types.BA3:
		return b.PieceInPlay(types.BA2)
	}
	return true
}
