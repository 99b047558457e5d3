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
	"time"
)

// fakePlatform is a one-window desktop: a rect, a capture owner, a cursor and
// a key table, plus a record of the calls that have side effects.
type fakePlatform struct {
	foreground Handle
	capture    Handle
	cursor     Point
	rect       Rect

	keys      map[uint32]int16
	asyncKeys map[uint32]int16

	timers      map[uintptr]time.Duration
	destroyed   []Handle
	quitCodes   []int32
	invalidated int
	painted     []string
	arrowSets   int
	releases    int
	moves       []Rect
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		rect:      Rect{0, 0, 250, 150},
		keys:      map[uint32]int16{},
		asyncKeys: map[uint32]int16{},
		timers:    map[uintptr]time.Duration{},
	}
}

func (f *fakePlatform) SetTimer(_ Handle, id uintptr, period time.Duration) { f.timers[id] = period }
func (f *fakePlatform) KillTimer(_ Handle, id uintptr)                      { delete(f.timers, id) }
func (f *fakePlatform) PostQuit(code int32)                                 { f.quitCodes = append(f.quitCodes, code) }
func (f *fakePlatform) DestroyWindow(hwnd Handle)                           { f.destroyed = append(f.destroyed, hwnd) }
func (f *fakePlatform) ForegroundWindow() Handle                            { return f.foreground }
func (f *fakePlatform) KeyState(vk uint32) int16                            { return f.keys[vk] }
func (f *fakePlatform) AsyncKeyState(vk uint32) int16                       { return f.asyncKeys[vk] }
func (f *fakePlatform) CursorPos() Point                                    { return f.cursor }
func (f *fakePlatform) Capture() Handle                                     { return f.capture }
func (f *fakePlatform) SetCapture(hwnd Handle)                              { f.capture = hwnd }
func (f *fakePlatform) WindowRect(Handle) Rect                              { return f.rect }
func (f *fakePlatform) Invalidate(Handle)                                   { f.invalidated++ }
func (f *fakePlatform) PaintText(_ Handle, text string)                     { f.painted = append(f.painted, text) }
func (f *fakePlatform) SetArrowCursor()                                     { f.arrowSets++ }

func (f *fakePlatform) ReleaseCapture() {
	f.capture = 0
	f.releases++
}

func (f *fakePlatform) MoveWindow(_ Handle, x, y, w, h int32, _ bool) {
	f.rect = Rect{x, y, x + w, y + h}
	f.moves = append(f.moves, f.rect)
}

// keyDown marks vk as down in GetKeyState, GetAsyncKeyState or both.
func (f *fakePlatform) keyDown(vk uint32, snapshot, async bool) {
	if snapshot {
		f.keys[vk] = -32768
	}
	if async {
		f.asyncKeys[vk] = -32768
	}
}

func (f *fakePlatform) leftButton(down bool) {
	if down {
		f.asyncKeys[VK_LBUTTON] = -32768
		return
	}
	delete(f.asyncKeys, VK_LBUTTON)
}

type fakeHost struct {
	registerErr error
	createErr   error
	hwnd        Handle
	quitCode    int

	registered []ClassOptions
	created    []WindowOptions
	shown      []Handle
	errorSteps []string
	loops      int
}

var errFake = errors.New("fake failure")

func (h *fakeHost) RegisterClass(opts ClassOptions) error {
	if h.registerErr != nil {
		return h.registerErr
	}
	h.registered = append(h.registered, opts)
	return nil
}

func (h *fakeHost) CreateWindow(opts WindowOptions) (Handle, error) {
	if h.createErr != nil {
		return 0, h.createErr
	}
	h.created = append(h.created, opts)
	return h.hwnd, nil
}

func (h *fakeHost) Show(hwnd Handle)      { h.shown = append(h.shown, hwnd) }
func (h *fakeHost) ShowError(step string) { h.errorSteps = append(h.errorSteps, step) }

func (h *fakeHost) Loop() int {
	h.loops++
	return h.quitCode
}

const testHwnd Handle = 0x1234

func newTestController(s Strategy, opts ...Option) (*Controller, *fakePlatform) {
	plat := newFakePlatform()
	c := New(plat, s, opts...)
	c.Attach(testHwnd)
	return c, plat
}

func makeLParam(lo, hi uint32) uintptr {
	return uintptr((hi&0xFFFF)<<16 | (lo & 0xFFFF))
}
