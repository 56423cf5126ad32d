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

// Direction is one of the six planar directions between adjacent hexes.
// Above/Below/Bottom are not directions: they move along the stack axis
// and are modeled as separate Position operations (see internal/hexgrid).
type Direction int8

const (
	Up Direction = iota
	UpRight
	DownRight
	Down
	DownLeft
	UpLeft

	// NumDirections is the number of planar directions.
	NumDirections
)

var directionToString = [NumDirections]string{
	"Up", "UpRight", "DownRight", "Down", "DownLeft", "UpLeft",
}

// IsValid reports whether d is one of the six planar directions.
func (d Direction) IsValid() bool {
	return d >= 0 && d < NumDirections
}

// String returns the direction's name.
func (d Direction) String() string {
	if !d.IsValid() {
		return "INVALID"
	}
	return directionToString[d]
}

// LeftOf returns the direction one step counter-clockwise from d.
func LeftOf(d Direction) Direction {
	return (d + NumDirections - 1) % NumDirections
}

// RightOf returns the direction one step clockwise from d.
func RightOf(d Direction) Direction {
	return (d + 1) % NumDirections
}
