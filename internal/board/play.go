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
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/types"
)

// TrustedPlay applies m unconditionally: the caller (movegen.TryPlayMove,
// or Clone replaying history) is responsible for having already verified
// legality. Appends to moveHistory, relocates the piece unless m is a
// pass, advances currentTurn, records lastPieceMoved and recomputes
// derived state and caches.
func (b *Board) TrustedPlay(m move.Move) {
	b.moveHistory = append(b.moveHistory, m)

	if !m.IsPass() {
		b.SetPosition(m.PieceName, m.Destination)
	}

	b.currentTurn++
	b.lastPieceMoved = m.PieceName

	b.ResetState()
	b.ResetCaches()
}

// AppendMoveHistoryString records the canonical text of the move just
// played via TrustedPlay. Kept separate from TrustedPlay itself so replay
// paths (Clone) that already know the string can skip re-deriving it.
func (b *Board) AppendMoveHistoryString(s string) {
	b.moveHistoryStr = append(b.moveHistoryStr, s)
}

// TryUndoLastMove reverses the most recently applied move: restores the
// piece (if any) to its source, pops the move and, if one was recorded for
// it, its text, and restores lastPieceMoved from the new last entry (or
// PieceNameInvalid if history is now empty). Moves applied by TrustedPlay
// alone (as perft does) have no recorded text, so nothing is popped from
// moveHistoryStr for them. Returns false if there is nothing to undo.
func (b *Board) TryUndoLastMove() bool {
	if len(b.moveHistory) == 0 {
		return false
	}

	last := b.moveHistory[len(b.moveHistory)-1]
	if !last.IsPass() {
		b.SetPosition(last.PieceName, last.Source)
	}

	b.moveHistory = b.moveHistory[:len(b.moveHistory)-1]
	if len(b.moveHistoryStr) > len(b.moveHistory) {
		b.moveHistoryStr = b.moveHistoryStr[:len(b.moveHistoryStr)-1]
	}

	if len(b.moveHistory) > 0 {
		b.lastPieceMoved = b.moveHistory[len(b.moveHistory)-1].PieceName
	} else {
		b.lastPieceMoved = types.PieceNameInvalid
	}

	b.currentTurn--

	b.ResetState()
	b.ResetCaches()

	return true
}

// Clone returns an independent board in the same game state, built by
// replaying moveHistory into a freshly constructed Board of the same
// game type — the same approach the source uses, rather than a deep
// copy of the grid.
func (b *Board) Clone() *Board {
	clone := New(b.gameType)
	for _, m := range b.moveHistory {
		clone.TrustedPlay(m)
	}
	for _, s := range b.moveHistoryStr {
		clone.AppendMoveHistoryString(s)
	}
	return clone
}
