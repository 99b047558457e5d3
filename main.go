//go:build windows

// Copyright 2026 workturnedplay
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// diswndtech shows a WS_DISABLED topmost tool window that still acts active:
// click it to virtually activate it, drag it around, press Q to close it.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"golang.org/x/sys/windows"

	"github.com/workturnedplay/diswndtech/internal/config"
	"github.com/workturnedplay/diswndtech/internal/logging"
	"github.com/workturnedplay/diswndtech/internal/win32"
	"github.com/workturnedplay/diswndtech/internal/wndctl"
)

func init() {
	// one P for the message loop thread, one for the log worker
	runtime.GOMAXPROCS(2)
}

var useStderr bool // true if os.Stderr is a console we can write to

// don't log from here, the logger doesn't exist yet.
func init() {
	h := windows.Handle(os.Stderr.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return
	}
	_, writeErr := os.Stderr.WriteString("") // zero-write test
	useStderr = writeErr == nil
}

var (
	logger  *logging.Logger
	logFile *os.File
)

// startLogging picks stderr when there is a console (devbuild), else appends
// to path. With neither, log lines are discarded.
func startLogging(path string) {
	var out io.Writer = io.Discard
	if useStderr {
		out = os.Stderr
	} else if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			logFile = f
			out = f
		}
	}
	logger = logging.New(out, logging.DefaultQueueSize)
	logging.SetDefault(logger)
}

func closeAndFlushLog() {
	if logger == nil {
		return
	}
	logging.SetDefault(nil)
	logger.Close()
	if logFile != nil {
		_ = logFile.Close()
	}
}

type theILockedMainThreadToken struct{}

type exitStatus struct {
	Code    int
	Message string
}

// exitf unwinds to primaryDefer, which logs, flushes and exits with code.
func exitf(code int, format string, a ...any) {
	panic(exitStatus{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	})
}

var currentExitCode int

// primaryDefer owns the normal os.Exit: it turns an exitf panic (or a real
// one) into an exit code and flushes the log first.
func primaryDefer() {
	if r := recover(); r != nil {
		if status, ok := r.(exitStatus); ok {
			currentExitCode = status.Code
			logging.Logf("exiting with code %d: %s", currentExitCode, status.Message)
		} else {
			currentExitCode = 1
			logging.Logf("--- CRASH: %v ---\nStack: %s\n--- END---", r, debug.Stack())
		}
	}
	logging.Logf("Execution finished.")
	closeAndFlushLog()
	os.Exit(currentExitCode)
}

// secondaryDefer only runs when primaryDefer itself panicked.
func secondaryDefer() {
	exitcode := 121
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "panic in primary defer: %v\n%s\n", r, debug.Stack())
		exitcode = 120
	}
	os.Exit(exitcode)
}

func main() {
	// The window, its timer and the message loop all belong to this thread.
	runtime.LockOSThread()
	token := theILockedMainThreadToken{}

	cfg, cfgErr := config.Load(config.Path())
	logPath := config.Default().LogFile
	if cfgErr == nil {
		logPath = cfg.LogFile
	}
	startLogging(logPath)

	defer secondaryDefer()
	defer primaryDefer()

	if cfgErr != nil {
		win32.ErrorBox(cfgErr.Error())
		exitf(1, "config: %v", cfgErr)
	}

	code, err := runApplication(token, cfg)
	if err != nil {
		exitf(code, "%v", err)
	}
	currentExitCode = code
}

// runApplication must be called from main, after runtime.LockOSThread().
func runApplication(_ theILockedMainThreadToken, cfg *config.Config) (int, error) {
	strategy, err := wndctl.StrategyFor(cfg.Mode)
	if err != nil {
		return 1, err
	}
	logging.Logf("Started, mode %q, poll every %v, hotkey %q", strategy.Name(), cfg.PollInterval(), cfg.Hotkey)

	ctl := wndctl.New(win32.NewPlatform(), strategy,
		wndctl.WithHotkey(cfg.HotkeyVK()),
		wndctl.WithPollInterval(cfg.PollInterval()),
	)
	host := win32.NewHost(ctl)

	return wndctl.Run(host, ctl, wndctl.WindowOptions{
		ClassName: cfg.Window.ClassName,
		Title:     cfg.Window.Title,
		Style:     wndctl.BaseStyle,
		ExStyle:   wndctl.BaseExStyle,
		X:         cfg.Window.X,
		Y:         cfg.Window.Y,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
	})
}
