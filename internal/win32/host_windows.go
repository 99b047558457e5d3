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

package win32

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/workturnedplay/diswndtech/internal/logging"
	"github.com/workturnedplay/diswndtech/internal/wndctl"
)

// Host registers the class, creates the window and pumps messages for one
// controller. The window proc is a single callback bound to that controller.
type Host struct {
	ctl     *wndctl.Controller
	inst    win.HINSTANCE
	wndProc uintptr
}

func NewHost(ctl *wndctl.Controller) *Host {
	h := &Host{
		ctl:  ctl,
		inst: win.GetModuleHandle(nil),
	}
	h.wndProc = windows.NewCallback(h.windowProc)
	return h
}

var _ wndctl.Host = (*Host)(nil)

func (h *Host) windowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	// WM_GETMINMAXINFO and WM_NCCREATE come before CreateWindowEx returns
	if h.ctl.Hwnd() == 0 {
		h.ctl.Attach(wndctl.Handle(hwnd))
	}
	if ret, handled := h.ctl.Dispatch(msg, wParam, lParam); handled {
		return ret
	}
	return win.DefWindowProc(win.HWND(hwnd), msg, wParam, lParam)
}

func (h *Host) RegisterClass(opts wndctl.ClassOptions) error {
	className, err := windows.UTF16PtrFromString(opts.Name)
	if err != nil {
		return fmt.Errorf("UTF16PtrFromString failed for class name: %w", err)
	}

	var wc win.WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.Style = win.CS_DBLCLKS
	wc.LpfnWndProc = h.wndProc
	wc.HInstance = h.inst
	wc.HIcon = win.LoadIcon(0, win.MAKEINTRESOURCE(win.IDI_APPLICATION))
	wc.HCursor = win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW))
	wc.HbrBackground = win.HBRUSH(win.COLOR_BTNFACE + 1)
	wc.LpszClassName = className

	if atom := win.RegisterClassEx(&wc); atom == 0 {
		return fmt.Errorf("RegisterClassEx(%q) failed: %w", opts.Name, windows.GetLastError())
	}
	logging.Logf("registered window class %q", opts.Name)
	return nil
}

func (h *Host) CreateWindow(opts wndctl.WindowOptions) (wndctl.Handle, error) {
	className, err := windows.UTF16PtrFromString(opts.ClassName)
	if err != nil {
		return 0, fmt.Errorf("UTF16PtrFromString failed for class name: %w", err)
	}
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return 0, fmt.Errorf("UTF16PtrFromString failed for title: %w", err)
	}

	hwnd := win.CreateWindowEx(
		opts.ExStyle,
		className,
		title,
		opts.Style,
		opts.X, opts.Y, opts.Width, opts.Height,
		0,
		0,
		h.inst,
		nil,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx failed: %w", windows.GetLastError())
	}
	return wndctl.Handle(hwnd), nil
}

func (h *Host) Show(hwnd wndctl.Handle) {
	win.ShowWindow(win.HWND(hwnd), win.SW_SHOWDEFAULT)
	win.UpdateWindow(win.HWND(hwnd))
}

// Loop runs GetMessage/TranslateMessage/DispatchMessage until WM_QUIT (or a
// GetMessage error) and returns the quit code.
func (h *Host) Loop() int {
	var msg win.MSG
	for {
		r := win.GetMessage(&msg, 0, 0, 0)
		if r == -1 {
			logging.Logf("GetMessage failed: %v", windows.GetLastError())
			return 1
		}
		if r == 0 {
			break
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
	return int(msg.WParam)
}

// ShowError is the blocking error box for a failed startup step.
func (h *Host) ShowError(step string) {
	ErrorBox(step)
}

// ErrorBox shows text in a modal, ownerless error box and waits for it to be
// dismissed. The caption is the system default ("Error").
func ErrorBox(text string) {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	win.MessageBox(0, t, nil, win.MB_ICONERROR)
}
