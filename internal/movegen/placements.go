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

package movegen

import (
	"github.com/hiveengine/hivego/internal/board"
	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/types"
)

// calculateValidPlacements returns (and memoizes on b) the set of hexes
// where the side to move may place a new piece this turn: turn 0 is
// origin only, turn 1 is origin's six neighbors, and from turn 2 on it's
// every empty hex adjacent to the mover's own pieces and to no opponent
// piece.
func calculateValidPlacements(b *board.Board) []hexgrid.Position {
	if cached, ready := b.CachedValidPlacements(); ready {
		return cached
	}

	var result []hexgrid.Position

	switch b.CurrentTurn() {
	case 0:
		result = []hexgrid.Position{hexgrid.Origin}
	case 1:
		for dir := types.Direction(0); dir < types.NumDirections; dir++ {
			result = append(result, hexgrid.Origin.NeighborAt(dir))
		}
	default:
		visited := map[hexgrid.Position]struct{}{}
		color := b.CurrentColor()

		lo, hi := colorRange(color)
		for pn := lo; pn < hi; pn++ {
			if !b.PieceIsOnTop(pn) {
				continue
			}

			bottom := b.GetPosition(pn).Bottom()
			visited[bottom] = struct{}{}

			for dir := types.Direction(0); dir < types.NumDirections; dir++ {
				neighbor := bottom.NeighborAt(dir)
				if _, seen := visited[neighbor]; seen || b.HasPieceAt(neighbor) {
					continue
				}
				visited[neighbor] = struct{}{}

				validPlacement := true
				for dir2 := types.Direction(0); dir2 < types.NumDirections; dir2++ {
					surrounding := neighbor.NeighborAt(dir2)
					surroundingPiece := b.GetPieceOnTopAt(surrounding)
					if surroundingPiece != types.PieceNameInvalid && surroundingPiece.ColorOf() != color {
						validPlacement = false
						break
					}
				}

				if validPlacement {
					result = append(result, neighbor)
				}
			}
		}
	}

	b.SetCachedValidPlacements(result)
	return result
}

// colorRange returns the [lo, hi) identity range for a color: White is
// [wQ, bQ), Black is [bQ, NumPieceNames).
func colorRange(c types.Color) (types.PieceName, types.PieceName) {
	if c == types.White {
		return types.WQ, types.BQ
	}
	return types.BQ, types.NumPieceNames
}
