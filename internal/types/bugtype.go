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

// BugType identifies which of the eight Hive bugs a piece is, independent
// of color or copy number.
type BugType int8

// BugTypeInvalid denotes "no bug" / an off-table lookup result.
const BugTypeInvalid BugType = -1

const (
	QueenBee BugType = iota
	Spider
	Beetle
	Grasshopper
	SoldierAnt
	Mosquito
	Ladybug
	Pillbug

	// NumBugTypes is the number of bug types.
	NumBugTypes
)

var bugTypeToString = [NumBugTypes]string{
	"QueenBee", "Spider", "Beetle", "Grasshopper", "SoldierAnt", "Mosquito", "Ladybug", "Pillbug",
}

// IsValid reports whether bt is one of the eight bug types.
func (bt BugType) IsValid() bool {
	return bt >= 0 && bt < NumBugTypes
}

// String returns the bug type's name.
func (bt BugType) String() string {
	if !bt.IsValid() {
		return "INVALID"
	}
	return bugTypeToString[bt]
}

// IsExpansion reports whether bt is one of the three expansion bugs
// (Mosquito, Ladybug, Pillbug) rather than a Base-set bug.
func (bt BugType) IsExpansion() bool {
	return bt == Mosquito || bt == Ladybug || bt == Pillbug
}
