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
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/types"
)

// TryGetMoveString derives the canonical UHP text for m against the
// current board state (the text names a reference piece already on the
// board, so it cannot be computed from m alone). Returns false if m's
// destination touches no other piece and it isn't the turn-0 opening move.
func (b *Board) TryGetMoveString(m move.Move) (string, bool) {
	if m.IsPass() {
		return move.PassMoveString, true
	}

	startPiece := m.PieceName.String()

	if b.currentTurn == 0 && m.Destination == hexgrid.Origin {
		return startPiece, true
	}

	endPiece := ""

	if m.Destination.Stack > 0 {
		pieceBelow := b.GetPieceAt(m.Destination.Below())
		endPiece = pieceBelow.String()
	} else {
		for dir := types.Direction(0); dir < types.NumDirections; dir++ {
			neighborPosition := m.Destination.NeighborAt(dir)
			neighbor := b.GetPieceOnTopAt(neighborPosition)

			if neighbor != types.PieceNameInvalid && neighbor != m.PieceName {
				name := neighbor.String()
				switch dir {
				case types.Up:
					name = name + "\\"
				case types.UpRight:
					name = "/" + name
				case types.DownRight:
					name = "-" + name
				case types.Down:
					name = "\\" + name
				case types.DownLeft:
					name = name + "/"
				case types.UpLeft:
					name = name + "-"
				}
				endPiece = name
				break
			}
		}
	}

	if endPiece != "" {
		return startPiece + " " + endPiece, true
	}

	return "", false
}

// TryParseMove parses a raw UHP move string into a Move against the
// current board state, resolving the reference piece's position. Returns
// the move, its re-canonicalized text, and true on success.
func (b *Board) TryParseMove(moveString string) (move.Move, string, bool) {
	normalized, ok := move.TryNormalize(moveString)
	if !ok {
		return move.Move{}, "", false
	}

	resultString := move.Build(normalized)

	if normalized.IsPass {
		return move.PassMove, resultString, true
	}

	source := b.GetPosition(normalized.StartPiece)
	destination := hexgrid.Origin

	if normalized.EndPiece != types.PieceNameInvalid {
		targetPosition := b.GetPosition(normalized.EndPiece)

		switch {
		case normalized.BeforeSeparator != 0:
			switch normalized.BeforeSeparator {
			case '-':
				destination = targetPosition.NeighborAt(types.UpLeft).Bottom()
			case '/':
				destination = targetPosition.NeighborAt(types.DownLeft).Bottom()
			case '\\':
				destination = targetPosition.NeighborAt(types.Up).Bottom()
			}
		case normalized.AfterSeparator != 0:
			switch normalized.AfterSeparator {
			case '-':
				destination = targetPosition.NeighborAt(types.DownRight).Bottom()
			case '/':
				destination = targetPosition.NeighborAt(types.UpRight).Bottom()
			case '\\':
				destination = targetPosition.NeighborAt(types.Down).Bottom()
			}
		default:
			destination = targetPosition.Above()
		}
	}

	result := move.Move{PieceName: normalized.StartPiece, Source: source, Destination: destination}
	return result, resultString, true
}
