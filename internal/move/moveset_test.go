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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiveengine/hivego/internal/hexgrid"
	"github.com/hiveengine/hivego/internal/types"
)

func TestSetAddDedups(t *testing.T) {
	s := NewSet(4)
	m := Move{PieceName: types.WA1, Source: hexgrid.InHand, Destination: hexgrid.Origin.NeighborAt(types.Up)}
	s.Add(m)
	s.Add(m)
	assert.Equal(t, 1, s.Len())
}

func TestSetContains(t *testing.T) {
	s := NewSet(4)
	m := Move{PieceName: types.WA1, Source: hexgrid.InHand, Destination: hexgrid.Origin}
	other := Move{PieceName: types.WS1, Source: hexgrid.InHand, Destination: hexgrid.Origin}

	s.Add(m)
	assert.True(t, s.Contains(m))
	assert.False(t, s.Contains(other))
}

func TestSetSliceContainsAllAdded(t *testing.T) {
	s := NewSet(4)
	moves := []Move{
		{PieceName: types.WA1, Source: hexgrid.InHand, Destination: hexgrid.Origin.NeighborAt(types.Up)},
		{PieceName: types.WA1, Source: hexgrid.InHand, Destination: hexgrid.Origin.NeighborAt(types.Down)},
	}
	for _, m := range moves {
		s.Add(m)
	}

	slice := s.Slice()
	assert.Len(t, slice, 2)
	for _, m := range moves {
		assert.Contains(t, slice, m)
	}
}
