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

// GetValidMoves returns every legal move for the side to move. If the
// game has ended it returns the empty set; if no other move exists it
// returns the singleton {PassMove}.
func GetValidMoves(b *board.Board) *move.Set {
	moveSet := move.NewSet(64)

	if !types.GameInProgress(b.BoardState()) {
		return moveSet
	}

	lo, hi := colorRange(b.CurrentColor())
	for pn := lo; pn < hi; pn++ {
		getValidMovesForPiece(b, pn, moveSet)
	}

	if moveSet.Len() == 0 {
		moveSet.Add(move.PassMove)
	}

	return moveSet
}

// getValidMovesForPiece appends every legal move of pn into moveSet,
// dispatching to placement or the bug-specific movement generator,
// gating on the expansion/ordering/turn rules the game variant and
// current ply impose.
func getValidMovesForPiece(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	if !types.PieceNameIsEnabledForGameType(pn, b.GameType()) ||
		!types.GameInProgress(b.BoardState()) ||
		b.CurrentColor() != pn.ColorOf() ||
		!b.PlacingPieceInOrder(pn) {
		return
	}

	switch {
	case b.CurrentTurn() == 0:
		// White's first piece: anything but the queen.
		if pn != types.WQ {
			moveSet.Add(move.Move{PieceName: pn, Source: b.GetPosition(pn), Destination: hexgrid.Origin})
		}
	case b.CurrentTurn() == 1:
		// Black's first piece: anything but the queen.
		if pn != types.BQ {
			for _, p := range calculateValidPlacements(b) {
				moveSet.Add(move.Move{PieceName: pn, Source: b.GetPosition(pn), Destination: p})
			}
		}
	case b.PieceInHand(pn):
		if placementAllowedByQueenRule(b, pn) {
			for _, p := range calculateValidPlacements(b) {
				moveSet.Add(move.Move{PieceName: pn, Source: b.GetPosition(pn), Destination: p})
			}
		}
	case pn != b.LastPieceMoved() && currentTurnQueenInPlay(b) && b.PieceIsOnTop(pn):
		if b.CanMoveWithoutBreakingHive(pn) {
			addBasicMoves(b, pn, moveSet)
		} else {
			addSpecialAbilityMoves(b, pn, moveSet)
		}
	}
}

// currentTurnQueenInPlay reports whether the side to move's queen is
// already on the board; no other piece may move until it is.
func currentTurnQueenInPlay(b *board.Board) bool {
	if b.CurrentColor() == types.White {
		return b.PieceInPlay(types.WQ)
	}
	return b.PieceInPlay(types.BQ)
}

// placementAllowedByQueenRule enforces the "queen must be placed by the
// 4th turn" rule: on a player's 4th placement turn, any piece may still
// be placed if the queen is already down; otherwise only the queen may.
func placementAllowedByQueenRule(b *board.Board, pn types.PieceName) bool {
	if b.CurrentPlayerTurn() != 4 {
		return true
	}
	if currentTurnQueenInPlay(b) {
		return true
	}
	return pn.BugTypeOf() == types.QueenBee
}

func addBasicMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	switch pn.BugTypeOf() {
	case types.QueenBee:
		getValidQueenBeeMoves(b, pn, moveSet)
	case types.Spider:
		getValidSpiderMoves(b, pn, moveSet)
	case types.Beetle:
		getValidBeetleMoves(b, pn, moveSet)
	case types.Grasshopper:
		getValidGrasshopperMoves(b, pn, moveSet)
	case types.SoldierAnt:
		getValidSoldierAntMoves(b, pn, moveSet)
	case types.Mosquito:
		getValidMosquitoMoves(b, pn, moveSet, false)
	case types.Ladybug:
		getValidLadybugMoves(b, pn, moveSet)
	case types.Pillbug:
		getValidPillbugBasicMoves(b, pn, moveSet)
		getValidPillbugSpecialMoves(b, pn, moveSet)
	}
}

func addSpecialAbilityMoves(b *board.Board, pn types.PieceName, moveSet *move.Set) {
	switch pn.BugTypeOf() {
	case types.Mosquito:
		getValidMosquitoMoves(b, pn, moveSet, true)
	case types.Pillbug:
		getValidPillbugSpecialMoves(b, pn, moveSet)
	}
}

// TryPlayMove plays m if and only if it belongs to GetValidMoves(b). On
// success it derives (or accepts) the canonical move string, records it,
// and applies the move; on failure it leaves the board untouched.
func TryPlayMove(b *board.Board, m move.Move, moveString string) bool {
	validMoves := GetValidMoves(b)

	if !validMoves.Contains(m) {
		return false
	}

	if moveString == "" {
		if s, ok := b.TryGetMoveString(m); ok {
			moveString = s
		}
	}

	b.AppendMoveHistoryString(moveString)
	b.TrustedPlay(m)

	return true
}
