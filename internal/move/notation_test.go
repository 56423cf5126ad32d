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

	"github.com/hiveengine/hivego/internal/types"
)

func TestTryNormalizeOpeningMove(t *testing.T) {
	n, ok := TryNormalize("wS1")
	assert.True(t, ok)
	assert.False(t, n.IsPass)
	assert.Equal(t, types.WS1, n.StartPiece)
	assert.Equal(t, types.PieceNameInvalid, n.EndPiece)
}

func TestTryNormalizeBeforeSeparator(t *testing.T) {
	n, ok := TryNormalize("wA1 -wQ")
	assert.True(t, ok)
	assert.Equal(t, types.WA1, n.StartPiece)
	assert.Equal(t, types.WQ, n.EndPiece)
	assert.EqualValues(t, '-', n.BeforeSeparator)
	assert.Zero(t, n.AfterSeparator)
}

func TestTryNormalizeAfterSeparator(t *testing.T) {
	n, ok := TryNormalize("wA1 wQ-")
	assert.True(t, ok)
	assert.Equal(t, types.WA1, n.StartPiece)
	assert.Equal(t, types.WQ, n.EndPiece)
	assert.Zero(t, n.BeforeSeparator)
	assert.EqualValues(t, '-', n.AfterSeparator)
}

func TestTryNormalizeToleratesExtraWhitespace(t *testing.T) {
	s, ok := TryNormalizeString(" wA1   -wQ ")
	assert.True(t, ok)
	assert.Equal(t, "wA1 -wQ", s)
}

func TestTryNormalizePass(t *testing.T) {
	n, ok := TryNormalize("pass")
	assert.True(t, ok)
	assert.True(t, n.IsPass)

	s, ok := TryNormalizeString("PASS")
	assert.True(t, ok)
	assert.Equal(t, PassMoveString, s)
}

func TestTryNormalizeInvalidPiece(t *testing.T) {
	_, ok := TryNormalize("foobar")
	assert.False(t, ok)
}

func TestBuildRoundTrip(t *testing.T) {
	for _, s := range []string{"wS1", "wA1 -wQ", "wA1 wQ-", "wA1 /wQ", "wA1 wQ\\"} {
		n, ok := TryNormalize(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, Build(n), s)
	}
}
