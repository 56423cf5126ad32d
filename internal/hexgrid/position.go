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

// Package hexgrid implements the flat-top axial hex coordinate system Hive
// is played on, plus the vertical stack axis used for beetles and mosquitos
// climbing on top of the hive.
package hexgrid

import (
	"fmt"

	"github.com/hiveengine/hivego/internal/types"
)

// BoardSize is the edge length of the dense occupancy grid a Board indexes
// Positions into, after centering: grid[Q+BoardSize/2][R+BoardSize/2][Stack].
const BoardSize = 128

// StackMax is the maximum number of pieces that may ever occupy one hex
// column (six pieces can at most surround and climb a single stack).
const StackMax = 6

// OffBoardStack is the Stack value of a Position held in hand.
const OffBoardStack = -1

// Position is a single hex cell at a given vertical layer. Stack == -1
// denotes "in hand" (off-board); Stack >= 0 is an on-board layer, with 0
// the ground layer.
type Position struct {
	Q     int
	R     int
	Stack int
}

// Origin is the ground hex at the center of the board, (0,0,0).
var Origin = Position{Q: 0, R: 0, Stack: 0}

// InHand is the canonical off-board position new pieces start at.
var InHand = Position{Q: 0, R: 0, Stack: OffBoardStack}

// neighborDeltas holds the (dQ, dR) offset for each of the six planar
// directions, indexed by types.Direction. Do not add a seventh "Above"
// entry here: climbing is modeled via Above/Below/Bottom, not a direction.
var neighborDeltas = [types.NumDirections]struct{ dQ, dR int }{
	{0, -1}, // Up
	{1, -1}, // UpRight
	{1, 0},  // DownRight
	{0, 1},  // Down
	{-1, 1}, // DownLeft
	{-1, 0}, // UpLeft
}

// IsInHand reports whether p is off-board.
func (p Position) IsInHand() bool {
	return p.Stack < 0
}

// IsOnBoard reports whether p occupies a real board layer.
func (p Position) IsOnBoard() bool {
	return p.Stack >= 0
}

// NeighborAt returns the ground-layer (Stack 0) position adjacent to p's
// (Q,R) in direction d, whatever p's own Stack is. Callers that need the
// neighbor at another height build that Position from the result's Q/R.
func (p Position) NeighborAt(d types.Direction) Position {
	delta := neighborDeltas[d]
	return Position{Q: p.Q + delta.dQ, R: p.R + delta.dR, Stack: 0}
}

// Above returns the position directly on top of p.
func (p Position) Above() Position {
	return Position{Q: p.Q, R: p.R, Stack: p.Stack + 1}
}

// Below returns the position directly beneath p. Callers must not call
// this on a ground-layer position; the result's Stack would be -1, which
// collides with the in-hand sentinel.
func (p Position) Below() Position {
	return Position{Q: p.Q, R: p.R, Stack: p.Stack - 1}
}

// Bottom returns p's ground-layer position, Stack reset to 0.
func (p Position) Bottom() Position {
	return Position{Q: p.Q, R: p.R, Stack: 0}
}

// SamePlane reports whether p and other share a (Q,R) column, regardless
// of stack height.
func (p Position) SamePlane(other Position) bool {
	return p.Q == other.Q && p.R == other.R
}

// GridIndex translates p into the dense grid's non-negative coordinates.
// The caller is responsible for bounds-checking against BoardSize/StackMax;
// GridIndex itself performs no clamping.
func (p Position) GridIndex() (q, r, stack int) {
	return p.Q + BoardSize/2, p.R + BoardSize/2, p.Stack
}

// String renders p as "(Q,R,Stack)", matching the diagnostic format used
// throughout move and board logging.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Q, p.R, p.Stack)
}
