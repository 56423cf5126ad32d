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

// Package movegen implements Hive's move generation: placements, the eight
// bug-specific movement rules, the pass rule, and perft enumeration, all
// driven off a *board.Board.
package movegen

import (
	"github.com/hiveengine/hivego/internal/board"
	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/types"
)

// getValidSlides enumerates every hex pn can slide to without breaking
// contact with the hive or squeezing through a gap, up to maxRange steps
// away (maxRange < 0 means unbounded, used by the soldier ant). pn is
// temporarily pulled off the board so it doesn't block its own slide.
func getValidSlides(b *board.Board, pn types.PieceName, moveSet *move.Set, maxRange int) {
	startingPosition := b.GetPosition(pn)

	visited := map[hexgrid.Position]struct{}{startingPosition: {}}

	b.SetPosition(pn, hexgrid.InHand)
	slideRecursive(b, pn, moveSet, startingPosition, startingPosition, visited, 0, maxRange)
	b.SetPosition(pn, startingPosition)
}

func slideRecursive(b *board.Board, pn types.PieceName, moveSet *move.Set, startingPosition, currentPosition hexgrid.Position, visited map[hexgrid.Position]struct{}, currentRange, maxRange int) {
	if maxRange >= 0 && currentRange >= maxRange {
		return
	}

	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		slidePosition := currentPosition.NeighborAt(dir)

		if _, seen := visited[slidePosition]; seen || b.HasPieceAt(slidePosition) {
			continue
		}

		left := types.LeftOf(dir)
		right := types.RightOf(dir)

		hasRight := b.HasPieceAt(currentPosition.NeighborAt(right))
		hasLeft := b.HasPieceAt(currentPosition.NeighborAt(left))
		if hasRight == hasLeft {
			continue
		}

		candidate := move.Move{PieceName: pn, Source: startingPosition, Destination: slidePosition}
		if moveSet.Contains(candidate) {
			continue
		}

		moveSet.Add(candidate)
		visited[slidePosition] = struct{}{}
		slideRecursive(b, pn, moveSet, startingPosition, slidePosition, visited, currentRange+1, maxRange)
	}
}

// canSlideToPositionInExactRange reports whether pn can reach target by a
// slide chain of exactly targetRange steps — the spider's "exactly 3"
// requirement, which a simple maxRange slide can't express since it also
// accepts shorter paths.
func canSlideToPositionInExactRange(b *board.Board, pn types.PieceName, target hexgrid.Position, targetRange int) bool {
	startingPosition := b.GetPosition(pn)

	b.SetPosition(pn, hexgrid.InHand)
	result := exactRangeRecursive(b, pn, target, hexgrid.InHand, startingPosition, 0, targetRange)
	b.SetPosition(pn, startingPosition)

	return result
}

func exactRangeRecursive(b *board.Board, pn types.PieceName, target, lastPosition, currentPosition hexgrid.Position, currentRange, targetRange int) bool {
	if currentRange >= targetRange {
		return false
	}

	result := false
	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		slidePosition := currentPosition.NeighborAt(dir)

		if slidePosition == lastPosition || b.HasPieceAt(slidePosition) {
			continue
		}

		left := types.LeftOf(dir)
		right := types.RightOf(dir)

		hasRight := b.HasPieceAt(currentPosition.NeighborAt(right))
		hasLeft := b.HasPieceAt(currentPosition.NeighborAt(left))
		if hasRight == hasLeft {
			continue
		}

		if target == slidePosition && currentRange+1 == targetRange {
			return true
		}
		result = result || exactRangeRecursive(b, pn, target, currentPosition, slidePosition, currentRange+1, targetRange)
	}

	return result
}
