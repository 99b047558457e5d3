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

import "time"

// Handle is a window handle (HWND). Zero means "no window".
type Handle uintptr

type Point struct {
	X, Y int32
}

type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Platform is the slice of user32 the controller drives. Every call is
// treated as infallible; implementations log failures themselves.
type Platform interface {
	SetTimer(hwnd Handle, id uintptr, period time.Duration)
	KillTimer(hwnd Handle, id uintptr)
	PostQuit(code int32)
	DestroyWindow(hwnd Handle)

	ForegroundWindow() Handle
	// KeyState and AsyncKeyState return the raw SHORT; negative means down.
	KeyState(vk uint32) int16
	AsyncKeyState(vk uint32) int16

	CursorPos() Point
	Capture() Handle
	SetCapture(hwnd Handle)
	ReleaseCapture()

	WindowRect(hwnd Handle) Rect
	MoveWindow(hwnd Handle, x, y, w, h int32, repaint bool)
	Invalidate(hwnd Handle)
	// PaintText paints text as one line centered in the client area.
	PaintText(hwnd Handle, text string)
	SetArrowCursor()
}

// ClassOptions describes the window class registered at startup.
type ClassOptions struct {
	Name string
}

// WindowOptions describes the top-level window created at startup.
type WindowOptions struct {
	ClassName string
	Title     string
	Style     uint32
	ExStyle   uint32
	X, Y      int32
	Width     int32
	Height    int32
}

// Host owns window class registration, window creation and the message loop.
type Host interface {
	RegisterClass(opts ClassOptions) error
	CreateWindow(opts WindowOptions) (Handle, error)
	Show(hwnd Handle)
	// Loop pumps messages until WM_QUIT and returns its exit code.
	Loop() int
	// ShowError blocks on a modal error box naming the failed step.
	ShowError(step string)
}
