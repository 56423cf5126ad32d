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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiveengine/hivego/internal/board"
	"github.com/hiveengine/hivego/internal/types"
)

// Canonical node counts from an empty Base board.
func TestStandardPerft(t *testing.T) {
	maxDepth := 5
	var perft Perft

	results := [6]uint64{1, 4, 96, 1_440, 21_600, 516_240}

	for depth := 0; depth <= maxDepth; depth++ {
		b := board.New(types.Base)
		perft.StartPerft(b, depth, false)
		assert.Equal(t, results[depth], perft.Nodes)
	}
}

func TestStandardPerftParallel(t *testing.T) {
	maxDepth := 4
	var perft Perft

	results := [5]uint64{1, 4, 96, 1_440, 21_600}

	for depth := 0; depth <= maxDepth; depth++ {
		b := board.New(types.Base)
		perft.StartPerft(b, depth, true)
		assert.Equal(t, results[depth], perft.Nodes)
	}
}

// In Base+MLP the mosquito, ladybug and pillbug may open the game too:
// the turn-0/turn-1 rule only excludes the queen, so each side has seven
// first pieces instead of four (7 at depth 1, 7 * 7 * 6 = 294 at depth 2).
// Depths 0-2 are a cheap smoke test that the expansion pieces are enabled.
func TestExpansionPerftSmoke(t *testing.T) {
	maxDepth := 2
	var perft Perft

	results := [3]uint64{1, 7, 294}

	for depth := 0; depth <= maxDepth; depth++ {
		b := board.New(types.BaseMLP)
		perft.StartPerft(b, depth, false)
		assert.Equal(t, results[depth], perft.Nodes)
	}
}
