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

// Package win32 is the real user32 behind wndctl.Platform and wndctl.Host.
// Everything in here must run on the thread that created the window.
package win32

import (
	"time"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/workturnedplay/diswndtech/internal/logging"
	"github.com/workturnedplay/diswndtech/internal/wndctl"
)

// Platform implements wndctl.Platform with user32.
type Platform struct {
	arrow win.HCURSOR
}

func NewPlatform() *Platform {
	return &Platform{
		arrow: win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
	}
}

var _ wndctl.Platform = (*Platform)(nil)

func (p *Platform) SetTimer(hwnd wndctl.Handle, id uintptr, period time.Duration) {
	if err := setTimer(uintptr(hwnd), id, uint32(period.Milliseconds())); err != nil {
		logging.Logf("SetTimer(%d, %v) failed: %v", id, period, err)
	}
}

func (p *Platform) KillTimer(hwnd wndctl.Handle, id uintptr) {
	if err := killTimer(uintptr(hwnd), id); err != nil {
		logging.Logf("KillTimer(%d) failed: %v", id, err)
	}
}

func (p *Platform) PostQuit(code int32) {
	win.PostQuitMessage(code)
}

func (p *Platform) DestroyWindow(hwnd wndctl.Handle) {
	if !win.DestroyWindow(win.HWND(hwnd)) {
		logging.Logf("DestroyWindow(0x%x) failed: %v", uintptr(hwnd), windows.GetLastError())
	}
}

func (p *Platform) ForegroundWindow() wndctl.Handle {
	return wndctl.Handle(win.GetForegroundWindow())
}

func (p *Platform) KeyState(vk uint32) int16      { return keyState(vk) }
func (p *Platform) AsyncKeyState(vk uint32) int16 { return asyncKeyState(vk) }

func (p *Platform) CursorPos() wndctl.Point {
	var pt win.POINT
	win.GetCursorPos(&pt)
	return wndctl.Point{X: pt.X, Y: pt.Y}
}

func (p *Platform) Capture() wndctl.Handle {
	return wndctl.Handle(getCapture())
}

func (p *Platform) SetCapture(hwnd wndctl.Handle) {
	win.SetCapture(win.HWND(hwnd))
}

// ReleaseCapture is harmless when nothing is captured.
func (p *Platform) ReleaseCapture() {
	win.ReleaseCapture()
}

func (p *Platform) WindowRect(hwnd wndctl.Handle) wndctl.Rect {
	var r win.RECT
	win.GetWindowRect(win.HWND(hwnd), &r)
	return wndctl.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func (p *Platform) MoveWindow(hwnd wndctl.Handle, x, y, w, h int32, repaint bool) {
	if !win.MoveWindow(win.HWND(hwnd), x, y, w, h, repaint) {
		logging.Logf("MoveWindow(0x%x -> %d,%d) failed: %v", uintptr(hwnd), x, y, windows.GetLastError())
	}
}

func (p *Platform) Invalidate(hwnd wndctl.Handle) {
	win.InvalidateRect(win.HWND(hwnd), nil, true)
}

func (p *Platform) PaintText(hwnd wndctl.Handle, text string) {
	var ps win.PAINTSTRUCT
	hdc := win.BeginPaint(win.HWND(hwnd), &ps)
	if hdc == 0 {
		return
	}
	defer win.EndPaint(win.HWND(hwnd), &ps)

	var rc win.RECT
	win.GetClientRect(win.HWND(hwnd), &rc)

	s, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	win.DrawTextEx(hdc, s, -1, &rc, win.DT_SINGLELINE|win.DT_CENTER|win.DT_VCENTER, nil)
}

func (p *Platform) SetArrowCursor() {
	win.SetCursor(p.arrow)
}
