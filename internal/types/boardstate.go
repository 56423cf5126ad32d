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

package types

// BoardState is the overall game-level status, derived after every move
// from whether either queen is fully surrounded.
type BoardState int8

// BoardStateInvalid denotes an unset/unknown board state.
const BoardStateInvalid BoardState = -1

const (
	NotStarted BoardState = iota
	InProgress
	Draw
	WhiteWins
	BlackWins

	// NumBoardStates is the number of valid board states.
	NumBoardStates
)

var boardStateToString = [NumBoardStates]string{
	"NotStarted", "InProgress", "Draw", "WhiteWins", "BlackWins",
}

// IsValid reports whether bs is one of the five defined states.
func (bs BoardState) IsValid() bool {
	return bs >= 0 && bs < NumBoardStates
}

// String returns the board state's name.
func (bs BoardState) String() string {
	if !bs.IsValid() {
		return "INVALID"
	}
	return boardStateToString[bs]
}

// GameInProgress reports whether bs allows further moves to be played.
func GameInProgress(bs BoardState) bool {
	return bs == NotStarted || bs == InProgress
}

// GameIsOver reports whether bs is a terminal state.
func GameIsOver(bs BoardState) bool {
	return bs == Draw || bs == WhiteWins || bs == BlackWins
}
