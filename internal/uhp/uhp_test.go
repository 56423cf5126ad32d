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

package uhp

import (
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory so relative paths, such
// as the default "./logs" folder NewHandler's protocol logger looks up,
// resolve against it.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestInfoCommand(t *testing.T) {
	h := NewHandler()
	out := h.Command("info")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, engineID, lines[0])
	assert.Equal(t, capabilities, lines[1])
	assert.Equal(t, "ok", lines[2])
}

func TestNewGameDefault(t *testing.T) {
	h := NewHandler()
	out := h.Command("newgame")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Base;NotStarted;White[1]", lines[0])
	assert.Equal(t, "ok", lines[1])
}

func TestValidMovesAfterFirstPlacement(t *testing.T) {
	h := NewHandler()
	h.Command("newgame")
	out := h.Command("play wS1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Base;InProgress;Black[1];wS1", lines[0])
	assert.Equal(t, "ok", lines[1])

	out = h.Command("validmoves")
	lines = strings.Split(strings.TrimSpace(out), "\n")
	moves := strings.Split(lines[0], ";")
	assert.NotEmpty(t, moves)
	assert.Equal(t, "ok", lines[1])
}

func TestQueenMustBePlacedByTurnFour(t *testing.T) {
	h := NewHandler()
	h.Command("newgame")
	h.Command("play wS1")
	h.Command("play bS1 wS1-")
	h.Command("play wS2 -wS1")
	h.Command("play bS2 bS1-")
	h.Command("play wG1 -wS2")
	h.Command("play bG1 bS2-")

	out := h.Command("validmoves")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	moves := strings.Split(lines[0], ";")
	for _, m := range moves {
		assert.True(t, strings.HasPrefix(m, "wQ"))
	}
}

func TestPerftDepthFour(t *testing.T) {
	h := NewHandler()
	h.Command("newgame")
	out := h.Command("perft 4")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, 6, len(lines))
	assert.Contains(t, lines[4], "perft(4) = 21600 in")
	assert.Equal(t, "ok", lines[5])
}

func TestUndoTwoMoves(t *testing.T) {
	h := NewHandler()
	h.Command("newgame")
	h.Command("play wS1")
	h.Command("play bS1 -wS1")

	out := h.Command("undo 2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Base;NotStarted;White[1]", lines[0])
	assert.Equal(t, "ok", lines[1])
}

func TestUndoTooManyMoves(t *testing.T) {
	h := NewHandler()
	h.Command("newgame")
	h.Command("play wS1")

	out := h.Command("undo 5")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "err Unable to undo that many moves.", lines[0])
	assert.Equal(t, "ok", lines[1])
}

func TestPlayInvalidMoveDoesNotReturnErr(t *testing.T) {
	h := NewHandler()
	h.Command("newgame")

	out := h.Command("play wQ")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "invalidmove"))
	assert.Equal(t, "ok", lines[1])
}

func TestNoGameInProgress(t *testing.T) {
	h := NewHandler()

	out := h.Command("validmoves")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "err No game in progress. Try 'newgame' to start a new game.", lines[0])
	assert.Equal(t, "ok", lines[1])
}

func TestPerftNoGameInProgress(t *testing.T) {
	h := NewHandler()

	out := h.Command("perft 4")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "err No game in progress. Try 'newgame' to start a new game.", lines[0])
	assert.Equal(t, "ok", lines[1])
}

func TestUnknownCommand(t *testing.T) {
	h := NewHandler()
	out := h.Command("foobar")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "err Invalid command.", lines[0])
	assert.Equal(t, "ok", lines[1])
}
