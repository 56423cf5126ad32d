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

package move

import (
	"strings"

	"github.com/hiveengine/hivego/internal/types"
)

// PassMoveString is the canonical text for the pass sentinel.
const PassMoveString = "pass"

// Normalized is the tokenized form of a UHP move string: either a pass, or
// a start piece optionally followed by a separator and an end piece. The
// separator's position (before or after the end piece) records which side
// of the end piece the start piece sits on.
type Normalized struct {
	IsPass          bool
	StartPiece      types.PieceName
	BeforeSeparator byte
	EndPiece        types.PieceName
	AfterSeparator  byte
}

func isSeparator(b byte) bool {
	return b == '-' || b == '/' || b == '\\'
}

// TryNormalize tokenizes a raw UHP move string into its piece and separator
// parts without resolving positions. It mirrors the source's
// character-by-character scan exactly, including its tolerance for extra
// interior whitespace ("wA1   -wQ").
func TryNormalize(moveString string) (Normalized, bool) {
	var piece1, piece2 strings.Builder
	var beforeSeparator, afterSeparator byte
	itemsFound := 0

	for i := 0; i < len(moveString); i++ {
		c := moveString[i]
		switch itemsFound {
		case 0:
			if c != ' ' {
				piece1.WriteByte(c)
				itemsFound++
			}
		case 1:
			if c != ' ' {
				piece1.WriteByte(c)
			} else {
				itemsFound++
			}
		case 2:
			if c != ' ' {
				if isSeparator(c) {
					beforeSeparator = c
				} else {
					piece2.WriteByte(c)
				}
				itemsFound++
			}
		case 3:
			if c != ' ' {
				if isSeparator(c) {
					afterSeparator = c
					i = len(moveString) // break outer loop
				} else {
					piece2.WriteByte(c)
				}
			} else {
				i = len(moveString) // break outer loop
			}
		}
		if i >= len(moveString) {
			break
		}
	}

	piece1Str := piece1.String()

	if strings.EqualFold(piece1Str, PassMoveString) {
		return Normalized{IsPass: true}, true
	}

	startPiece, ok := types.ParsePieceName(piece1Str)
	if !ok {
		return Normalized{}, false
	}

	endPiece, ok := types.ParsePieceName(piece2.String())
	if !ok {
		endPiece = types.PieceNameInvalid
		beforeSeparator = 0
		afterSeparator = 0
	} else if beforeSeparator != 0 {
		afterSeparator = 0
	}

	return Normalized{
		StartPiece:      startPiece,
		BeforeSeparator: beforeSeparator,
		EndPiece:        endPiece,
		AfterSeparator:  afterSeparator,
	}, true
}

// Build renders n back into its canonical UHP text form.
func Build(n Normalized) string {
	if n.IsPass {
		return PassMoveString
	}

	var out strings.Builder
	out.WriteString(n.StartPiece.String())

	if n.EndPiece != types.PieceNameInvalid {
		out.WriteByte(' ')
		switch {
		case n.BeforeSeparator != 0:
			out.WriteByte(n.BeforeSeparator)
			out.WriteString(n.EndPiece.String())
		case n.AfterSeparator != 0:
			out.WriteString(n.EndPiece.String())
			out.WriteByte(n.AfterSeparator)
		default:
			out.WriteString(n.EndPiece.String())
		}
	}

	return out.String()
}

// TryNormalizeString tokenizes and immediately re-renders moveString,
// returning its canonical spelling (e.g. " wA1   -wQ " -> "wA1 -wQ").
func TryNormalizeString(moveString string) (string, bool) {
	n, ok := TryNormalize(moveString)
	if !ok {
		return "", false
	}
	return Build(n), true
}
