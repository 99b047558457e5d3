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
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

/* ---------------- DLLs & Procs ---------------- */
// lxn/win has no GetAsyncKeyState or GetCapture, so those two are called directly.

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetCapture       = user32.NewProc("GetCapture")
)

// keyState returns GetKeyState's SHORT; the high bit (negative) means down
// in this thread's view of the keyboard.
func keyState(vk uint32) int16 {
	return win.GetKeyState(int32(vk))
}

// asyncKeyState is the physical state right now, regardless of which thread
// owns the keyboard.
func asyncKeyState(vk uint32) int16 {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return int16(r)
}

func getCapture() uintptr {
	r, _, _ := procGetCapture.Call()
	return r
}

func setTimer(hwnd uintptr, id uintptr, ms uint32) error {
	if win.SetTimer(win.HWND(hwnd), id, ms, 0) == 0 {
		return windows.GetLastError()
	}
	return nil
}

func killTimer(hwnd uintptr, id uintptr) error {
	if !win.KillTimer(win.HWND(hwnd), id) {
		return windows.GetLastError()
	}
	return nil
}
