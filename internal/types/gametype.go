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

// GameType selects the Base rule set plus any combination of the three
// expansion bugs (Mosquito, Ladybug, Pillbug).
type GameType int8

// GameTypeInvalid denotes an unparseable game type string.
const GameTypeInvalid GameType = -1

const (
	Base GameType = iota
	BaseM
	BaseL
	BaseP
	BaseML
	BaseMP
	BaseLP
	BaseMLP

	// NumGameTypes is the number of valid game types.
	NumGameTypes
)

var gameTypeToString = [NumGameTypes]string{
	"Base", "Base+M", "Base+L", "Base+P", "Base+ML", "Base+MP", "Base+LP", "Base+MLP",
}

// IsValid reports whether gt is one of the eight defined variants.
func (gt GameType) IsValid() bool {
	return gt >= 0 && gt < NumGameTypes
}

// String returns the canonical UHP game type string, e.g. "Base+MLP".
func (gt GameType) String() string {
	if !gt.IsValid() {
		return "INVALID"
	}
	return gameTypeToString[gt]
}

// HasMosquito, HasLadybug and HasPillbug report whether the variant
// enables the respective expansion bug.
func (gt GameType) HasMosquito() bool {
	return gt == BaseM || gt == BaseML || gt == BaseMP || gt == BaseMLP
}

func (gt GameType) HasLadybug() bool {
	return gt == BaseL || gt == BaseML || gt == BaseLP || gt == BaseMLP
}

func (gt GameType) HasPillbug() bool {
	return gt == BaseP || gt == BaseMP || gt == BaseLP || gt == BaseMLP
}

// ParseGameType parses the canonical (case-insensitive) game type string.
func ParseGameType(s string) (GameType, bool) {
	s = strings.TrimSpace(s)
	for gt := GameType(0); gt < NumGameTypes; gt++ {
		if strings.EqualFold(s, gameTypeToString[gt]) {
			return gt, true
		}
	}
	return GameTypeInvalid, false
}

// PieceNameIsEnabledForGameType reports whether pn's bug type is legal
// under gt: Base-set bugs are always enabled, expansion bugs only when
// gt carries them.
func PieceNameIsEnabledForGameType(pn PieceName, gt GameType) bool {
	switch pn.BugTypeOf() {
	case Mosquito:
		return gt.HasMosquito()
	case Ladybug:
		return gt.HasLadybug()
	case Pillbug:
		return gt.HasPillbug()
	default:
		return true
	}
}
