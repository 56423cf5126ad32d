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

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hiveengine/hivego/internal/board"
	"github.com/hiveengine/hivego/internal/config"
	"github.com/hiveengine/hivego/internal/logging"
	"github.com/hiveengine/hivego/internal/movegen"
	"github.com/hiveengine/hivego/internal/types"
	"github.com/hiveengine/hivego/internal/uhp"
)

const engineVersion = "1.0.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	perftDepth := flag.Int("perft", 0, "runs perft for depths 0..N on a fresh board of -gametype and exits")
	gameType := flag.String("gametype", "Base", "game type used for -perft (Base|Base+M|Base+L|Base+P|Base+ML|Base+MP|Base+LP|Base+MLP)")
	parallel := flag.Bool("parallel", false, "use the parallel perft implementation")
	doProfile := flag.Bool("profile", false, "profile CPU usage for the duration of this run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	logging.GetLog()

	if *perftDepth > 0 {
		gt, ok := types.ParseGameType(*gameType)
		if !ok {
			out.Printf("unknown game type: %s\n", *gameType)
			os.Exit(1)
		}
		b := board.New(gt)
		var perftTest movegen.Perft
		perftTest.StartPerftMulti(b, 0, *perftDepth, *parallel || config.Settings.Engine.UseParallelPerft)
		return
	}

	h := uhp.NewHandler()
	h.SetParallelPerft(config.Settings.Engine.UseParallelPerft)
	h.Loop()
}

func printVersionInfo() {
	out.Printf("hivego %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
