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

package config

// engineConfiguration is a data structure holding the configuration of
// an instance of the UHP engine.
type engineConfiguration struct {
	// DefaultGameType is the variant newgame uses when no game string is given.
	DefaultGameType string

	// UseParallelPerft selects the semaphore-bounded parallel perft
	// (Perft.Count with parallel set) over the single-threaded recursive
	// one, for the "perft" UHP command and the -perft command-line run.
	UseParallelPerft bool
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Engine.DefaultGameType = "Base"
	Settings.Engine.UseParallelPerft = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEngine() {
}
