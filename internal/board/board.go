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

// Package board holds the Hive board's authoritative state: where every
// piece identity sits, whose turn it is, the played-move history, and the
// dense grid/position-array mirror the move generator reads from.
package board

import (
	"strings"

	"github.com/hiveengine/hivego/internal/assert"
	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/types"
)

// Board is the full state of one Hive game.
type Board struct {
	gameType types.GameType

	// piecePositions and grid are kept in sync on every SetPosition call;
	// this is the one invariant every mutator must preserve.
	piecePositions [types.NumPieceNames]hexgrid.Position
	grid           [hexgrid.BoardSize][hexgrid.BoardSize][hexgrid.StackMax]types.PieceName

	boardState types.BoardState

	currentTurn    int
	lastPieceMoved types.PieceName

	moveHistory    []move.Move
	moveHistoryStr []string

	cachedValidPlacements      map[hexgrid.Position]struct{}
	cachedValidPlacementsReady bool
}

// New creates an empty board for the given game variant with every piece
// identity in hand and the state not yet started.
func New(gameType types.GameType) *Board {
	b := &Board{
		gameType:       gameType,
		lastPieceMoved: types.PieceNameInvalid,
		boardState:     types.NotStarted,
	}
	for pn := types.PieceName(0); pn < types.NumPieceNames; pn++ {
		b.piecePositions[pn] = hexgrid.InHand
	}
	for i := range b.grid {
		for j := range b.grid[i] {
			for k := range b.grid[i][j] {
				b.grid[i][j][k] = types.PieceNameInvalid
			}
		}
	}
	return b
}

// GameType returns the active rule variant.
func (b *Board) GameType() types.GameType {
	return b.gameType
}

// BoardState returns the current game-level status.
func (b *Board) BoardState() types.BoardState {
	return b.boardState
}

// CurrentColor returns the side to move.
func (b *Board) CurrentColor() types.Color {
	return types.Color(b.currentTurn % types.ColorLength)
}

// CurrentTurn returns the number of half-moves played so far.
func (b *Board) CurrentTurn() int {
	return b.currentTurn
}

// CurrentPlayerTurn returns the 1-based move number for the side to move,
// matching the source's `1 + m_currentTurn / 2` and the UHP game string's
// "White[2]" notation.
func (b *Board) CurrentPlayerTurn() int {
	return 1 + b.currentTurn/2
}

// LastPieceMoved returns the identity last physically relocated, or
// PieceNameInvalid at the start of the game or right after undoing the
// very first move. Pillbug "throw" legality depends on this.
func (b *Board) LastPieceMoved() types.PieceName {
	return b.lastPieceMoved
}

// MoveHistoryLen returns the number of plies recorded so far.
func (b *Board) MoveHistoryLen() int {
	return len(b.moveHistory)
}

// MoveAt returns the move played at history index i.
func (b *Board) MoveAt(i int) move.Move {
	return b.moveHistory[i]
}

// LastMove returns the most recently played move and true, or the zero
// move and false if no move has been played yet.
func (b *Board) LastMove() (move.Move, bool) {
	if len(b.moveHistory) == 0 {
		return move.Move{}, false
	}
	return b.moveHistory[len(b.moveHistory)-1], true
}

// GetGameString renders the UHP game string: GameType;BoardState;Color[Turn]
// followed by every played move's canonical text, semicolon-separated.
func (b *Board) GetGameString() string {
	var sb strings.Builder
	sb.WriteString(b.gameType.String())
	sb.WriteByte(';')
	sb.WriteString(b.boardState.String())
	sb.WriteByte(';')
	sb.WriteString(b.CurrentColor().String())
	sb.WriteByte('[')
	sb.WriteString(itoa(b.CurrentPlayerTurn()))
	sb.WriteByte(']')
	for _, s := range b.moveHistoryStr {
		sb.WriteByte(';')
		sb.WriteString(s)
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// GetPosition returns the current position of pn (in-hand if never placed).
func (b *Board) GetPosition(pn types.PieceName) hexgrid.Position {
	return b.piecePositions[pn]
}

func inBounds(q, r, stack int) bool {
	return q >= 0 && q < hexgrid.BoardSize && r >= 0 && r < hexgrid.BoardSize && stack >= 0 && stack < hexgrid.StackMax
}

// SetPosition relocates pn to position, keeping the dense grid and the
// per-identity position array in sync. This is the only method allowed
// to touch either field directly; every other mutation goes through it.
func (b *Board) SetPosition(pn types.PieceName, position hexgrid.Position) {
	old := b.piecePositions[pn]
	if old.IsOnBoard() {
		q, r, s := old.GridIndex()
		if assert.DEBUG {
			assert.Assert(inBounds(q, r, s), "piece %s's recorded position %v is out of grid bounds", pn, old)
		}
		if inBounds(q, r, s) {
			b.grid[q][r][s] = types.PieceNameInvalid
		}
	}
	if position.IsOnBoard() {
		q, r, s := position.GridIndex()
		if assert.DEBUG {
			assert.Assert(inBounds(q, r, s), "new position %v for piece %s is out of grid bounds", position, pn)
		}
		if inBounds(q, r, s) {
			b.grid[q][r][s] = pn
		}
	}
	b.piecePositions[pn] = position
}

// GetPieceAt returns the identity occupying position exactly, or
// PieceNameInvalid if position is off-board or empty.
func (b *Board) GetPieceAt(position hexgrid.Position) types.PieceName {
	if position.IsInHand() {
		return types.PieceNameInvalid
	}
	q, r, s := position.GridIndex()
	if !inBounds(q, r, s) {
		return types.PieceNameInvalid
	}
	return b.grid[q][r][s]
}

// GetPieceOnTopAt returns the topmost identity stacked above position's
// column (position itself may be any stack height; only its (Q,R) matters).
func (b *Board) GetPieceOnTopAt(position hexgrid.Position) types.PieceName {
	current := position.Bottom()
	top := b.GetPieceAt(current)
	if top == types.PieceNameInvalid {
		return types.PieceNameInvalid
	}
	for {
		current = current.Above()
		next := b.GetPieceAt(current)
		if next == types.PieceNameInvalid {
			break
		}
		top = next
	}
	return top
}

// HasPieceAt reports whether any identity occupies position exactly.
func (b *Board) HasPieceAt(position hexgrid.Position) bool {
	return b.GetPieceAt(position) != types.PieceNameInvalid
}

// PieceInHand reports whether pn has not yet been placed.
func (b *Board) PieceInHand(pn types.PieceName) bool {
	return b.GetPosition(pn).Stack < 0
}

// PieceInPlay reports whether pn is on the board.
func (b *Board) PieceInPlay(pn types.PieceName) bool {
	return b.GetPosition(pn).Stack >= 0
}

// PieceIsOnTop reports whether pn is in play and nothing is stacked above it.
func (b *Board) PieceIsOnTop(pn types.PieceName) bool {
	return b.PieceInPlay(pn) && !b.HasPieceAt(b.GetPosition(pn).Above())
}

// CachedValidPlacements returns the memoized set of legal placement
// hexes for the side to move, and whether the cache is populated.
func (b *Board) CachedValidPlacements() ([]hexgrid.Position, bool) {
	if !b.cachedValidPlacementsReady {
		return nil, false
	}
	out := make([]hexgrid.Position, 0, len(b.cachedValidPlacements))
	for p := range b.cachedValidPlacements {
		out = append(out, p)
	}
	return out, true
}

// SetCachedValidPlacements populates the placement cache.
func (b *Board) SetCachedValidPlacements(positions []hexgrid.Position) {
	b.cachedValidPlacements = make(map[hexgrid.Position]struct{}, len(positions))
	for _, p := range positions {
		b.cachedValidPlacements[p] = struct{}{}
	}
	b.cachedValidPlacementsReady = true
}

// ResetCaches invalidates every cache that depends on board state. Called
// after any mutation.
func (b *Board) ResetCaches() {
	b.cachedValidPlacementsReady = false
	b.cachedValidPlacements = nil
}
