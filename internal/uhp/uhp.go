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

// Package uhp contains the Handler data structure and functionality to
// handle Universal Hive Protocol communication between a Hive user
// interface and this engine.
package uhp

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/hiveengine/hivego/internal/board"
	"github.com/hiveengine/hivego/internal/config"
	myLogging "github.com/hiveengine/hivego/internal/logging"
	"github.com/hiveengine/hivego/internal/move"
	"github.com/hiveengine/hivego/internal/movegen"
	"github.com/hiveengine/hivego/internal/types"
)

var log *logging.Logger

const engineID = "id MzingaCpp 0.9.2"
const capabilities = "Mosquito;Ladybug;Pillbug"

// Handler handles all communication with a Hive UI via UHP and owns the
// single Board in play. Create an instance with NewHandler().
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	myBoard *board.Board
	myPerft *movegen.Perft
	uhpLog  *logging.Logger

	useParallelPerft bool
}

// NewHandler creates a new Handler instance. Input/output io can be
// replaced by changing the instance's InIo and OutIo members.
func NewHandler() *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Handler{
		InIo:    bufio.NewScanner(os.Stdin),
		OutIo:   bufio.NewWriter(os.Stdout),
		myBoard: nil,
		myPerft: movegen.NewPerft(),
		uhpLog:  myLogging.GetUhpLog(),
	}
}

// SetParallelPerft toggles whether the "perft" command uses the
// semaphore-bounded parallel perft or the single-threaded recursive one.
func (h *Handler) SetParallelPerft(parallel bool) {
	h.useParallelPerft = parallel
}

// Loop starts the main loop reading commands from the input stream
// (pipe or interactive) until "exit" or EOF.
func (h *Handler) Loop() {
	h.loop()
}

// Command handles a single line of UHP protocol and returns everything
// written in response, including the trailing "ok"/"err ... ok" block.
// Mostly useful for debugging and unit testing.
func (h *Handler) Command(cmd string) string {
	tmp := h.OutIo
	buffer := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buffer)
	h.handleReceivedCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buffer.String()
}

func (h *Handler) loop() {
	for h.InIo.Scan() {
		if h.handleReceivedCommand(h.InIo.Text()) {
			return
		}
	}
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches cmd and returns true once "exit" has
// been processed, signalling the caller to stop the loop.
func (h *Handler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}

	h.uhpLog.Infof("<< %s", cmd)

	tokens := regexWhiteSpace.Split(cmd, -1)
	verb := tokens[0]

	switch verb {
	case "info":
		h.infoCommand()
	case "newgame":
		h.newGameCommand(tokens)
	case "validmoves":
		h.validMovesCommand()
	case "bestmove":
		h.bestMoveCommand()
	case "play":
		h.playCommand(tokens)
	case "pass":
		h.passCommand()
	case "undo":
		h.undoCommand(tokens)
	case "options":
		h.send("ok")
	case "perft":
		h.perftCommand(tokens)
	case "exit":
		return true
	default:
		h.sendErr("Invalid command.")
	}

	return false
}

func (h *Handler) infoCommand() {
	h.send(engineID)
	h.send(capabilities)
	h.send("ok")
}

// newGameCommand instantiates a fresh board of the given GameType
// (default: the configured DefaultGameType, Base unless set otherwise) and
// replays every move token in the optional game string's tail (everything
// after "GameType;BoardState;ColorAndTurn").
func (h *Handler) newGameCommand(tokens []string) {
	gameString := ""
	if len(tokens) > 1 {
		gameString = strings.Join(tokens[1:], " ")
	}

	gameType := types.Base
	if configured, ok := types.ParseGameType(config.Settings.Engine.DefaultGameType); ok {
		gameType = configured
	}
	var moveStrings []string

	if gameString != "" {
		items := strings.Split(gameString, ";")
		parsedType, ok := types.ParseGameType(items[0])
		if !ok {
			h.sendErr("An unknown error has occured.")
			return
		}
		gameType = parsedType
		for i := 3; i < len(items); i++ {
			moveStrings = append(moveStrings, items[i])
		}
	}

	newBoard := board.New(gameType)
	for _, ms := range moveStrings {
		m, _, ok := newBoard.TryParseMove(ms)
		if !ok || !movegen.TryPlayMove(newBoard, m, ms) {
			h.sendErr("An unknown error has occured.")
			return
		}
	}

	h.myBoard = newBoard
	h.send(h.myBoard.GetGameString())
	h.send("ok")
}

func (h *Handler) validMovesCommand() {
	if !h.requireGameInProgress() {
		return
	}
	if types.GameIsOver(h.myBoard.BoardState()) {
		h.sendErr("The game is over. No moves can be played.")
		return
	}

	moves := movegen.GetValidMoves(h.myBoard)
	var parts []string
	for _, m := range moves.Slice() {
		if s, ok := h.myBoard.TryGetMoveString(m); ok {
			parts = append(parts, s)
		}
	}
	h.send(strings.Join(parts, ";"))
	h.send("ok")
}

// bestMoveCommand emits the string form of any one legal move; time and
// depth arguments are accepted but ignored since this engine does not
// search.
func (h *Handler) bestMoveCommand() {
	if !h.requireGameInProgress() {
		return
	}
	if types.GameIsOver(h.myBoard.BoardState()) {
		h.sendErr("The game is over. No moves can be played.")
		return
	}

	moves := movegen.GetValidMoves(h.myBoard).Slice()
	if len(moves) == 0 {
		h.sendErr("An unknown error has occured.")
		return
	}
	s, _ := h.myBoard.TryGetMoveString(moves[0])
	h.send(s)
	h.send("ok")
}

func (h *Handler) playCommand(tokens []string) {
	if !h.requireGameInProgress() {
		return
	}
	if len(tokens) < 2 {
		h.sendErr("Invalid move format.")
		return
	}

	moveString := strings.Join(tokens[1:], " ")
	h.tryPlay(moveString)
}

func (h *Handler) passCommand() {
	if !h.requireGameInProgress() {
		return
	}
	h.tryPlay(move.PassMoveString)
}

func (h *Handler) tryPlay(moveString string) {
	m, canonical, ok := h.myBoard.TryParseMove(moveString)
	if !ok || !movegen.TryPlayMove(h.myBoard, m, canonical) {
		h.send("invalidmove Unable to play that move at this time.")
		h.send("ok")
		return
	}
	h.send(h.myBoard.GetGameString())
	h.send("ok")
}

// undoCommand undoes N half-moves (default 1).
func (h *Handler) undoCommand(tokens []string) {
	if !h.requireGameInProgress() {
		return
	}

	n := 1
	if len(tokens) > 1 {
		parsed, err := strconv.Atoi(tokens[1])
		if err != nil {
			h.sendErr("Unable to undo that many moves.")
			return
		}
		n = parsed
	}

	if n < 1 || n > h.myBoard.CurrentTurn() {
		h.sendErr("Unable to undo that many moves.")
		return
	}

	for i := 0; i < n; i++ {
		if !h.myBoard.TryUndoLastMove() {
			h.sendErr("Unable to undo that many moves.")
			return
		}
	}

	h.send(h.myBoard.GetGameString())
	h.send("ok")
}

// perftCommand runs perft for every depth from 0 to D (default 0),
// printing one "perft(d) = N in T ms. R KN/s" line per depth.
func (h *Handler) perftCommand(tokens []string) {
	if !h.requireGameInProgress() {
		return
	}

	depth := 0
	if len(tokens) > 1 {
		parsed, err := strconv.Atoi(tokens[1])
		if err != nil {
			h.sendErr("An unknown error has occured.")
			return
		}
		depth = parsed
	}
	if depth < 0 {
		h.sendErr("An unknown error has occured.")
		return
	}

	for d := 0; d <= depth; d++ {
		nodes, elapsed, _ := h.myPerft.Count(h.myBoard, d, h.useParallelPerft)
		ms := float64(elapsed.Nanoseconds()) / float64(time.Millisecond)
		kn := (float64(nodes) / 1000) / (ms / 1000 + 1e-9)
		h.send(fmt.Sprintf("perft(%d) = %d in %.0f ms. %.0f KN/s", d, nodes, ms, kn))
	}
	h.send("ok")
}

func (h *Handler) requireGameInProgress() bool {
	if h.myBoard == nil {
		h.sendErr("No game in progress. Try 'newgame' to start a new game.")
		return false
	}
	return true
}

func (h *Handler) sendErr(msg string) {
	h.send("err " + msg)
	h.send("ok")
}

// send writes s to the output stream, terminated by a newline, and
// mirrors it to the UHP protocol log.
func (h *Handler) send(s string) {
	h.uhpLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
