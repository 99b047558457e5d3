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

package wndctl

import (
	"errors"
	"fmt"

	"github.com/workturnedplay/diswndtech/internal/logging"
)

const (
	StepRegisterClass = "RegisterClass"
	StepCreateWindow  = "CreateWindow"
)

var (
	ErrRegisterClass = errors.New("window class registration failed")
	ErrCreateWindow  = errors.New("window creation failed")
)

// Exit codes for the two startup failures.
const (
	ExitRegisterClass = 1
	ExitCreateWindow  = 2
)

// StartupError is a fatal startup failure. Step names the Win32 call for the
// error box.
type StartupError struct {
	Step string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StartupError) Unwrap() []error {
	switch e.Step {
	case StepRegisterClass:
		return []error{ErrRegisterClass, e.Err}
	case StepCreateWindow:
		return []error{ErrCreateWindow, e.Err}
	}
	return []error{e.Err}
}

// ExitCode maps a Start error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrRegisterClass):
		return ExitRegisterClass
	case errors.Is(err, ErrCreateWindow):
		return ExitCreateWindow
	}
	return 1
}

// BaseStyle and BaseExStyle are the styles every strategy's window shares.
const (
	BaseStyle   = WS_POPUP | WS_BORDER
	BaseExStyle = WS_EX_TOPMOST | WS_EX_DLGMODALFRAME | WS_EX_TOOLWINDOW
)

// Start registers the class, creates the window for ctl and shows it. The
// strategy's style bits are OR'ed into opts.Style. Nothing is created when
// registration fails.
func Start(host Host, ctl *Controller, opts WindowOptions) (Handle, error) {
	if err := host.RegisterClass(ClassOptions{Name: opts.ClassName}); err != nil {
		return 0, &StartupError{Step: StepRegisterClass, Err: err}
	}
	opts.Style |= ctl.strategy.Style()
	hwnd, err := host.CreateWindow(opts)
	if err != nil {
		return 0, &StartupError{Step: StepCreateWindow, Err: err}
	}
	if ctl.hwnd == 0 {
		ctl.Attach(hwnd)
	}
	logging.Logf("created %q at %d,%d %dx%d style=0x%08x exstyle=0x%08x",
		opts.Title, opts.X, opts.Y, opts.Width, opts.Height, opts.Style, opts.ExStyle)
	host.Show(hwnd)
	return hwnd, nil
}

// Run is Start followed by the message loop. On a startup failure the error
// box is shown before returning. The returned code is what the process
// should exit with.
func Run(host Host, ctl *Controller, opts WindowOptions) (int, error) {
	if _, err := Start(host, ctl, opts); err != nil {
		var se *StartupError
		if errors.As(err, &se) {
			host.ShowError(se.Step)
		}
		return ExitCode(err), err
	}
	code := host.Loop()
	logging.Logf("message loop done, quit code %d", code)
	return code, nil
}
