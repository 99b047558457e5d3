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

// Win32 values the controller needs. Declared here rather than taken from a
// binding package so this package builds (and tests) on every GOOS.
const (
	WM_CREATE     = 0x0001
	WM_DESTROY    = 0x0002
	WM_ACTIVATE   = 0x0006
	WM_PAINT      = 0x000F
	WM_SETCURSOR  = 0x0020
	WM_KEYDOWN    = 0x0100
	WM_KEYUP      = 0x0101
	WM_SYSKEYDOWN = 0x0104
	WM_SYSKEYUP   = 0x0105
	WM_TIMER      = 0x0113

	WM_MOUSEMOVE   = 0x0200
	WM_LBUTTONDOWN = 0x0201
	WM_LBUTTONUP   = 0x0202
)

const (
	WA_INACTIVE = 0

	VK_LBUTTON = 0x01
)

const (
	WS_POPUP    = 0x80000000
	WS_DISABLED = 0x08000000
	WS_BORDER   = 0x00800000

	WS_EX_DLGMODALFRAME = 0x00000001
	WS_EX_TOPMOST       = 0x00000008
	WS_EX_TOOLWINDOW    = 0x00000080
)

// pollTimerID is the id of the key-state poll timer, fixed for the window's life.
const pollTimerID = 999

var messageNames = map[uint32]string{
	WM_KEYDOWN:     "WM_KEYDOWN",
	WM_KEYUP:       "WM_KEYUP",
	WM_SYSKEYDOWN:  "WM_SYSKEYDOWN",
	WM_SYSKEYUP:    "WM_SYSKEYUP",
	WM_MOUSEMOVE:   "WM_MOUSEMOVE",
	WM_LBUTTONDOWN: "WM_LBUTTONDOWN",
	WM_LBUTTONUP:   "WM_LBUTTONUP",
}

// MessageName returns the symbolic name of the input messages shown in the
// status line, or "" for anything else.
func MessageName(msg uint32) string {
	return messageNames[msg]
}

func loword(v uintptr) uint32 {
	return uint32(v & 0xFFFF)
}

func hiword(v uintptr) uint32 {
	return uint32((v >> 16) & 0xFFFF)
}
