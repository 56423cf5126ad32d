//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hiveengine/hivego/internal/board"
	"github.com/hiveengine/hivego/internal/move"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes of the legal-move game tree rooted at a
// board to a fixed depth, for validating move generation against the
// game's published node counts.
type Perft struct {
	Nodes    uint64
	stopFlag bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop
// the currently running perft test.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti iterates StartPerft across every depth from startDepth
// to endDepth. If started in a goroutine it can be stopped via Stop().
func (perft *Perft) StartPerftMulti(b *board.Board, startDepth, endDepth int, parallel bool) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(b, i, parallel)
	}
}

// StartPerft runs a single perft test from b to depth, printing timing
// and node-rate statistics in the style of the engine's UHP console
// output. If started in a goroutine it can be stopped via Stop().
func (perft *Perft) StartPerft(b *board.Board, depth int, parallel bool) {
	if depth < 0 {
		depth = 0
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("Game string: %s\n", b.GetGameString())
	out.Printf("-----------------------------------------\n")

	result, elapsed, stopped := perft.Count(b, depth, parallel)
	if stopped {
		out.Print("Perft stopped\n")
		return
	}

	nps := (result * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds()+1)

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d KN/s\n", nps/1000)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", result)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// Count runs perft from b to depth without printing anything, returning
// the leaf count, the elapsed wall-clock time, and whether Stop() cut the
// run short. It also updates perft.Nodes as a side effect. Used by callers
// (such as the UHP "perft" command) that need their own output format.
func (perft *Perft) Count(b *board.Board, depth int, parallel bool) (uint64, time.Duration, bool) {
	perft.stopFlag = false
	perft.Nodes = 0

	start := time.Now()
	var result uint64
	if parallel {
		result = perft.calculateParallel(b.Clone(), depth)
	} else {
		result = perft.calculate(b.Clone(), depth)
	}
	elapsed := time.Since(start)

	if perft.stopFlag {
		return 0, elapsed, true
	}

	perft.Nodes = result
	return result, elapsed, false
}

// calculate recursively enumerates the game tree below b to depth,
// mutating and restoring b in place rather than cloning at each ply.
func (perft *Perft) calculate(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if perft.stopFlag {
		return 0
	}

	moves := GetValidMoves(b).Slice()
	var nodes uint64
	for _, m := range moves {
		b.TrustedPlay(m)
		nodes += perft.calculate(b, depth-1)
		b.TryUndoLastMove()
	}
	return nodes
}

// calculateParallel is calculate's root-level fan-out: the first ply's
// moves are explored concurrently, each against its own cloned board, so
// the recursion below stays single-threaded and allocation-cheap.
func (perft *Perft) calculateParallel(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := GetValidMoves(b).Slice()

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	ctx := context.Background()

	var wg sync.WaitGroup
	var total uint64
	var mu sync.Mutex

	for _, m := range moves {
		if perft.stopFlag {
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		wg.Add(1)
		go func(m move.Move) {
			defer wg.Done()
			defer sem.Release(1)

			clone := b.Clone()
			clone.TrustedPlay(m)
			nodes := perft.calculate(clone, depth-1)

			mu.Lock()
			total += nodes
			mu.Unlock()
		}(m)
	}

	wg.Wait()
	return total
}
