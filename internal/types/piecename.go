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

import "strings"

// PieceName identifies one of the 28 physical pieces in a Hive set: one
// queen, two spiders, two beetles, three grasshoppers, three soldier ants
// and one each of mosquito, ladybug and pillbug, per color. Expansion
// identities exist in this space even when the current GameType disables
// them; PieceNameIsEnabledForGameType gates whether they may ever appear
// in play.
type PieceName int8

// Piece identity constants. White pieces occupy [wQ, bQ); black occupies
// [bQ, NumPieceNames). Code that scans "one color's pieces" relies on that
// contiguous layout.
// PieceNameInvalid denotes "no piece" / an off-table lookup result.
const PieceNameInvalid PieceName = -1

const (
	WQ PieceName = iota
	WS1
	WS2
	WB1
	WB2
	WG1
	WG2
	WG3
	WA1
	WA2
	WA3
	WM
	WL
	WP

	BQ
	BS1
	BS2
	BB1
	BB2
	BG1
	BG2
	BG3
	BA1
	BA2
	BA3
	BM
	BL
	BP

	// NumPieceNames is the number of valid piece identities.
	NumPieceNames
)

// PiecesPerColor is the number of distinct identities of a single color.
const PiecesPerColor = int(BQ)

var pieceNameToString = [NumPieceNames]string{
	"wQ", "wS1", "wS2", "wB1", "wB2", "wG1", "wG2", "wG3", "wA1", "wA2", "wA3", "wM", "wL", "wP",
	"bQ", "bS1", "bS2", "bB1", "bB2", "bG1", "bG2", "bG3", "bA1", "bA2", "bA3", "bM", "bL", "bP",
}

// IsValid reports whether pn is one of the 28 identities.
func (pn PieceName) IsValid() bool {
	return pn >= 0 && pn < NumPieceNames
}

// String returns the canonical UHP piece string, e.g. "wA1".
func (pn PieceName) String() string {
	if pn == PieceNameInvalid {
		return "INVALID"
	}
	if !pn.IsValid() {
		return "INVALID"
	}
	return pieceNameToString[pn]
}

// ColorOf returns the owning color of pn.
func (pn PieceName) ColorOf() Color {
	if pn < BQ {
		return White
	}
	return Black
}

// BugTypeOf returns the bug type of pn.
func (pn PieceName) BugTypeOf() BugType {
	offset := int(pn)
	if pn >= BQ {
		offset -= PiecesPerColor
	}
	return pieceOffsetToBugType[offset]
}

var pieceOffsetToBugType = [PiecesPerColor]BugType{
	QueenBee, Spider, Spider, Beetle, Beetle, Grasshopper, Grasshopper, Grasshopper,
	SoldierAnt, SoldierAnt, SoldierAnt, Mosquito, Ladybug, Pillbug,
}

// ParsePieceName parses the canonical (case-insensitive) UHP piece string
// into a PieceName. Returns PieceNameInvalid, false on failure.
func ParsePieceName(s string) (PieceName, bool) {
	s = strings.TrimSpace(s)
	for pn := PieceName(0); pn < NumPieceNames; pn++ {
		if strings.EqualFold(s, pieceNameToString[pn]) {
			return pn, true
		}
	}
	return PieceNameInvalid, false
}
