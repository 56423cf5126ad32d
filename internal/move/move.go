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

// Package move defines the Move value type, its UHP text notation, and a
// duplicate-free container move generation accumulates into.
package move

import (
	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/types"
)

// Move is either a placement (Source in hand) or a movement (Source on
// board) of PieceName to Destination. Unlike a bitmask-encoded engine move,
// positions are unbounded Q/R pairs, so Move is a plain struct rather than
// a packed integer.
type Move struct {
	PieceName   types.PieceName
	Source      hexgrid.Position
	Destination hexgrid.Position
}

// PassMove is the distinguished sentinel GetValidMoves returns when the
// side to move has no other legal move. Its PieceName is invalid by
// construction, matching the source's Move{PieceName::INVALID}.
var PassMove = Move{
	PieceName:   types.PieceNameInvalid,
	Source:      hexgrid.InHand,
	Destination: hexgrid.InHand,
}

// IsPass reports whether m is the pass sentinel.
func (m Move) IsPass() bool {
	return m.PieceName == types.PieceNameInvalid
}

// Equal compares moves by (PieceName, Source, Destination), the same triple
// GetValidMoves and TryPlayMove use to recognize duplicates and membership.
func (m Move) Equal(other Move) bool {
	return m.PieceName == other.PieceName && m.Source == other.Source && m.Destination == other.Destination
}
