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
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/types"
)

// getValidQueenBeeMoves: a one-hex slide in any direction.
func getValidQueenBeeMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	getValidSlides(b, pn, moveSet, 1)
}

// getValidSpiderMoves: a slide of exactly three hexes.
func getValidSpiderMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	upToThree := move.NewSet(16)
	getValidSlides(b, pn, upToThree, 3)

	for _, m := range upToThree.Slice() {
		if canSlideToPositionInExactRange(b, pn, m.Destination, 3) {
			moveSet.Add(m)
		}
	}
}

// getValidBeetleMoves: a one-hex step in any direction, climbing onto or
// down off the hive, subject to the gate rule — a beetle cannot enter a
// gap between two stacks both taller than its takeoff and landing heights.
func getValidBeetleMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	position := b.GetPosition(pn)

	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		newPosition := position.NeighborAt(dir)
		topNeighbor := b.GetPieceOnTopAt(newPosition)

		left := types.LeftOf(dir)
		right := types.RightOf(dir)
		leftNeighborPosition := position.NeighborAt(left)
		rightNeighborPosition := position.NeighborAt(right)

		topLeftNeighbor := b.GetPieceOnTopAt(leftNeighborPosition)
		topRightNeighbor := b.GetPieceOnTopAt(rightNeighborPosition)

		currentHeight := position.Stack + 1
		destinationHeight := 0
		if topNeighbor != types.PieceNameInvalid {
			destinationHeight = b.GetPosition(topNeighbor).Stack + 1
		}
		topLeftHeight := 0
		if topLeftNeighbor != types.PieceNameInvalid {
			topLeftHeight = b.GetPosition(topLeftNeighbor).Stack + 1
		}
		topRightHeight := 0
		if topRightNeighbor != types.PieceNameInvalid {
			topRightHeight = b.GetPosition(topRightNeighbor).Stack + 1
		}

		// Take-off.
		currentHeight--

		if currentHeight == 0 && destinationHeight == 0 && topLeftHeight == 0 && topRightHeight == 0 {
			continue
		}

		// BoardGameGeek Hive FAQ gate rule.
		if destinationHeight < topLeftHeight && destinationHeight < topRightHeight &&
			currentHeight < topLeftHeight && currentHeight < topRightHeight {
			continue
		}

		moveSet.Add(move.Move{
			PieceName:   pn,
			Source:      position,
			Destination: hexgrid.Position{Q: newPosition.Q, R: newPosition.R, Stack: destinationHeight},
		})
	}
}

// getValidGrasshopperMoves: a straight hop over one or more contiguous
// occupied hexes, landing on the first empty hex beyond them.
func getValidGrasshopperMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	startingPosition := b.GetPosition(pn)

	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		landingPosition := startingPosition.NeighborAt(dir)

		distance := 0
		for b.HasPieceAt(landingPosition) {
			landingPosition = landingPosition.NeighborAt(dir)
			distance++
		}

		if distance > 0 {
			moveSet.Add(move.Move{PieceName: pn, Source: startingPosition, Destination: landingPosition})
		}
	}
}

// getValidSoldierAntMoves: an unbounded slide.
func getValidSoldierAntMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	getValidSlides(b, pn, moveSet, -1)
}

// getValidMosquitoMoves: a mosquito on the ground copies the movement
// rule of every distinct bug type among its neighbors (never mosquito
// itself, and at most once per bug type); a mosquito already climbed onto
// the hive just moves like a beetle. specialAbilityOnly restricts this to
// a borrowed pillbug throw, used when the mosquito itself is pinned by
// the one-hive rule but could still use a neighboring pillbug's ability.
func getValidMosquitoMoves(b *board.Board, pn types.PieceName, moveSet *move.Set, specialAbilityOnly bool) {
	position := b.GetPosition(pn)

	if position.Stack > 0 && !specialAbilityOnly {
		getValidBeetleMoves(b, pn, moveSet)
		return
	}

	var evaluated [types.NumBugTypes]bool

	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		neighborPosition := position.NeighborAt(dir)
		neighborPieceName := b.GetPieceOnTopAt(neighborPosition)

		if neighborPieceName == types.PieceNameInvalid {
			continue
		}
		neighborBugType := neighborPieceName.BugTypeOf()
		if evaluated[neighborBugType] {
			continue
		}

		newMoves := move.NewSet(16)
		if specialAbilityOnly {
			if neighborBugType == types.Pillbug {
				getValidPillbugSpecialMoves(b, pn, newMoves)
			}
		} else {
			switch neighborBugType {
			case types.QueenBee:
				getValidQueenBeeMoves(b, pn, newMoves)
			case types.Spider:
				getValidSpiderMoves(b, pn, newMoves)
			case types.Beetle:
				getValidBeetleMoves(b, pn, newMoves)
			case types.Grasshopper:
				getValidGrasshopperMoves(b, pn, newMoves)
			case types.SoldierAnt:
				getValidSoldierAntMoves(b, pn, newMoves)
			case types.Ladybug:
				getValidLadybugMoves(b, pn, newMoves)
			case types.Pillbug:
				getValidPillbugBasicMoves(b, pn, newMoves)
				getValidPillbugSpecialMoves(b, pn, newMoves)
			}
		}

		for _, m := range newMoves.Slice() {
			moveSet.Add(m)
		}

		evaluated[neighborBugType] = true
	}
}

// getValidLadybugMoves: exactly three beetle-style steps — climb, cross
// one hex while on top of the hive, then descend to an empty ground hex
// other than the one it started from.
func getValidLadybugMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	startingPosition := b.GetPosition(pn)

	firstMoves := move.NewSet(8)
	getValidBeetleMoves(b, pn, firstMoves)

	for _, firstMove := range firstMoves.Slice() {
		if firstMove.Destination.Stack <= 0 {
			continue
		}
		b.SetPosition(pn, firstMove.Destination)

		secondMoves := move.NewSet(8)
		getValidBeetleMoves(b, pn, secondMoves)

		for _, secondMove := range secondMoves.Slice() {
			if secondMove.Destination.Stack <= 0 {
				continue
			}
			b.SetPosition(pn, secondMove.Destination)

			thirdMoves := move.NewSet(8)
			getValidBeetleMoves(b, pn, thirdMoves)

			for _, thirdMove := range thirdMoves.Slice() {
				if thirdMove.Destination.Stack == 0 && thirdMove.Destination != startingPosition {
					moveSet.Add(move.Move{PieceName: pn, Source: startingPosition, Destination: thirdMove.Destination})
				}
			}

			b.SetPosition(pn, firstMove.Destination)
		}

		b.SetPosition(pn, startingPosition)
	}
}

// getValidPillbugBasicMoves: the pillbug moves itself exactly like a queen bee.
func getValidPillbugBasicMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	getValidSlides(b, pn, moveSet, 1)
}

// getValidPillbugSpecialMoves: the pillbug's "throw" — it may lift an
// unpinned, uncovered adjacent piece (other than the one that just moved)
// straight up onto its own back and back down onto any empty hex adjacent
// to the pillbug, provided the piece could make that climb itself.
func getValidPillbugSpecialMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	position := b.GetPosition(pn)
	positionAboveTarget := position.Above()

	for dir := types.Direction(0); dir < types.NumDirections; dir++ {
		neighborPosition := position.NeighborAt(dir)
		neighborPieceName := b.GetPieceAt(neighborPosition)

		if neighborPieceName == types.PieceNameInvalid ||
			neighborPieceName == b.LastPieceMoved() ||
			b.GetPieceAt(neighborPosition.Above()) != types.PieceNameInvalid ||
			!b.CanMoveWithoutBreakingHive(neighborPieceName) {
			continue
		}

		firstMove := move.Move{PieceName: neighborPieceName, Source: neighborPosition, Destination: positionAboveTarget}
		firstMoves := move.NewSet(8)
		getValidBeetleMoves(b, neighborPieceName, firstMoves)
		if !firstMoves.Contains(firstMove) {
			continue
		}

		b.SetPosition(neighborPieceName, positionAboveTarget)

		secondMoves := move.NewSet(8)
		getValidBeetleMoves(b, neighborPieceName, secondMoves)

		for _, secondMove := range secondMoves.Slice() {
			if secondMove.Destination.Stack == 0 && secondMove.Destination != neighborPosition {
				moveSet.Add(move.Move{PieceName: neighborPieceName, Source: neighborPosition, Destination: secondMove.Destination})
			}
		}

		b.SetPosition(neighborPieceName, neighborPosition)
	}
}
