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

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances preconfigured with the necessary
// backends and formatters.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"

	"github.com/hiveengine/hivego/internal/config"
	"github.com/hiveengine/hivego/internal/util"
)

var (
	standardLog *logging.Logger
	testLog     *logging.Logger
	uhpLog      *logging.Logger
	uhpLogFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	testLog = logging.MustGetLogger("test")
	uhpLog = logging.MustGetLogger("UHP ")
}

// GetLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format (time - file - level).
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(standardBackEnd)
	return standardLog
}

// GetTestLog returns an instance of a standard Logger preconfigured the
// same way as GetLog, for use from within tests.
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	testBackEnd := logging.AddModuleLevel(backend1Formatter)
	testBackEnd.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(testBackEnd)
	return testLog
}

// GetUhpLog returns an instance of a special Logger preconfigured for
// logging every received/sent UHP protocol line to os.Stdout and, when
// a log folder can be resolved, to a log file. Format is the simple
// "time UHP <line>".
func GetUhpLog() *logging.Logger {
	uhpFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UHP %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, uhpFormat)
	uhpBackEnd1 := logging.AddModuleLevel(backend1Formatter)
	uhpBackEnd1.SetLevel(logging.DEBUG, "")
	uhpLog.SetBackend(uhpBackEnd1)

	logPath, err := util.ResolveFolder(config.Settings.Log.LogPath)
	if err != nil {
		log.Println("Log folder could not be found:", err)
		return uhpLog
	}

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	logFilePath := filepath.Join(logPath, exeName+"_uhp.log")

	uhpLogFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Logfile could not be created:", err)
		return uhpLog
	}

	backend2 := logging.NewLogBackend(uhpLogFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, uhpFormat)
	uhpBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	uhpBackEnd2.SetLevel(logging.DEBUG, "")
	multi := logging.SetBackend(uhpBackEnd1, uhpBackEnd2)
	uhpLog.SetBackend(multi)

	return uhpLog
}
