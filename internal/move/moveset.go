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

// Set is a duplicate-free collection of moves, keyed by the same
// (PieceName, Source, Destination) triple Move.Equal compares. Move
// generation builds candidate moves from several independent bug-specific
// routines (e.g. a mosquito copying a beetle's gate-rule climb can retrace
// a square another routine already reached); Set absorbs the overlap so
// callers never see duplicates.
type Set struct {
	moves map[key]Move
}

type key struct {
	pieceName   int8
	srcQ, srcR  int
	srcStack    int
	dstQ, dstR  int
	dstStack    int
}

func keyOf(m Move) key {
	return key{
		pieceName: int8(m.PieceName),
		srcQ:      m.Source.Q,
		srcR:      m.Source.R,
		srcStack:  m.Source.Stack,
		dstQ:      m.Destination.Q,
		dstR:      m.Destination.R,
		dstStack:  m.Destination.Stack,
	}
}

// NewSet creates an empty move set with room for size entries.
func NewSet(size int) *Set {
	return &Set{moves: make(map[key]Move, size)}
}

// Add inserts m, silently absorbing it if an equal move is already present.
func (s *Set) Add(m Move) {
	s.moves[keyOf(m)] = m
}

// Contains reports whether a move equal to m is already in the set.
func (s *Set) Contains(m Move) bool {
	_, ok := s.moves[keyOf(m)]
	return ok
}

// Len returns the number of distinct moves in the set.
func (s *Set) Len() int {
	return len(s.moves)
}

// Slice returns the set's contents as a slice. Order is unspecified.
func (s *Set) Slice() []Move {
	out := make([]Move, 0, len(s.moves))
	for _, m := range s.moves {
		out = append(out, m)
	}
	return out
}
