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

// Package wndctl holds the state machine behind the disabled-window technique:
// a window created with WS_DISABLED still gets WM_ACTIVATE and WM_SETCURSOR, so
// activation, clicks and drags are rebuilt from those plus a key-state poll.
package wndctl

import (
	"time"

	"github.com/workturnedplay/diswndtech/internal/logging"
)

// maxStatusLen matches the 64 unit buffer (with terminator) the status line
// was always drawn from.
const maxStatusLen = 63

const DefaultPollInterval = 100 * time.Millisecond

// Controller is the per-window state. It is only ever touched from the thread
// that runs the message loop, so nothing here is synchronized.
type Controller struct {
	plat     Platform
	strategy Strategy

	hwnd Handle

	hotkey       uint32
	pollInterval time.Duration

	virtuallyActivated bool
	statusText         string

	// dragAnchor is the last cursor position seen while dragging; only
	// meaningful while dragging is true.
	dragAnchor Point
	dragging   bool
}

type Option func(*Controller)

// WithHotkey sets the virtual key that closes the window. Default 'Q'.
func WithHotkey(vk uint32) Option {
	return func(c *Controller) { c.hotkey = vk }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

func New(plat Platform, strategy Strategy, opts ...Option) *Controller {
	c := &Controller{
		plat:         plat,
		strategy:     strategy,
		hotkey:       'Q',
		pollInterval: DefaultPollInterval,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Attach binds the controller to its window. The host calls it with the first
// hwnd it sees, which is before WM_CREATE is dispatched.
func (c *Controller) Attach(hwnd Handle) {
	c.hwnd = hwnd
}

func (c *Controller) Hwnd() Handle                { return c.hwnd }
func (c *Controller) Strategy() Strategy          { return c.strategy }
func (c *Controller) VirtuallyActivated() bool    { return c.virtuallyActivated }
func (c *Controller) StatusText() string          { return c.statusText }
func (c *Controller) PollInterval() time.Duration { return c.pollInterval }

// DragAnchor returns the recorded drag position and whether a drag is in progress.
func (c *Controller) DragAnchor() (Point, bool) {
	return c.dragAnchor, c.dragging
}

// Dispatch routes one window message. handled=false means the caller must pass
// the message on to DefWindowProc.
func (c *Controller) Dispatch(msg uint32, wParam, lParam uintptr) (result uintptr, handled bool) {
	switch msg {
	case WM_CREATE:
		c.OnCreate()
		return 0, true
	case WM_DESTROY:
		c.OnDestroy()
		return 0, true
	case WM_ACTIVATE:
		c.OnActivate(loword(wParam) != WA_INACTIVE)
		return 0, true
	case WM_PAINT:
		c.OnPaint()
		return 0, true
	}
	return c.strategy.Handle(c, msg, wParam, lParam)
}

func (c *Controller) OnCreate() {
	logging.Logf("window 0x%x created, strategy %q", uintptr(c.hwnd), c.strategy.Name())
	c.strategy.OnCreate(c)
}

func (c *Controller) OnDestroy() {
	c.strategy.OnDestroy(c)
	c.dragging = false
	logging.Logf("window 0x%x destroyed, posting quit", uintptr(c.hwnd))
	c.plat.PostQuit(0)
}

// OnTimerTick is the poll: it drops virtual activation once another window is
// in the foreground, and closes the window on the hotkey while virtually
// active. Both key queries are consulted; they can disagree because this
// thread never owns keyboard focus.
func (c *Controller) OnTimerTick() {
	if fg := c.plat.ForegroundWindow(); fg != 0 && fg != c.hwnd {
		c.setVirtuallyActivated(false, "foreground is 0x%x", uintptr(fg))
	}
	if !c.virtuallyActivated {
		return
	}
	if c.plat.KeyState(c.hotkey) < 0 || c.plat.AsyncKeyState(c.hotkey) < 0 {
		logging.Logf("hotkey 0x%x down while virtually active, destroying window", c.hotkey)
		c.plat.DestroyWindow(c.hwnd)
	}
}

// OnActivate handles WM_ACTIVATE, which still arrives for a disabled window.
func (c *Controller) OnActivate(active bool) {
	c.setVirtuallyActivated(active, "WM_ACTIVATE")
}

// OnKey handles the four keyboard messages. Only an enabled window gets them.
func (c *Controller) OnKey(msg uint32, vk uint32) {
	c.setStatus(MessageName(msg))
	if msg == WM_KEYDOWN && vk == c.hotkey {
		logging.Logf("hotkey 0x%x via WM_KEYDOWN, destroying window", vk)
		c.plat.DestroyWindow(c.hwnd)
	}
}

// OnMouseMove moves the window by the cursor delta while the left button is
// held and this window has capture. Otherwise it ends any drag.
func (c *Controller) OnMouseMove(pos Point, leftHeld bool) {
	if leftHeld && c.plat.Capture() == c.hwnd {
		if c.dragging {
			r := c.plat.WindowRect(c.hwnd)
			c.plat.MoveWindow(c.hwnd,
				r.Left+(pos.X-c.dragAnchor.X),
				r.Top+(pos.Y-c.dragAnchor.Y),
				r.Width(),
				r.Height(),
				true)
		}
		c.dragAnchor = pos
		c.dragging = true
		return
	}
	c.dragAnchor = Point{}
	c.dragging = false
	c.plat.ReleaseCapture()
}

// OnLeftButton takes capture on press. Release ends the drag, so the next
// press starts from a fresh anchor.
func (c *Controller) OnLeftButton(pos Point, down bool) {
	if down {
		c.plat.SetCapture(c.hwnd)
		return
	}
	c.dragAnchor = Point{}
	c.dragging = false
	c.plat.ReleaseCapture()
}

func (c *Controller) OnPaint() {
	c.plat.PaintText(c.hwnd, c.statusText)
}

// OnSetCursor handles WM_SETCURSOR, the one mouse notification a disabled
// window still receives. HIWORD(lParam) carries the mouse message that was
// swallowed, so it is replayed here. A click also virtually activates the
// window because no WM_ACTIVATE will follow it.
func (c *Controller) OnSetCursor(lParam uintptr) {
	pos := c.plat.CursorPos()
	switch hiword(lParam) {
	case WM_MOUSEMOVE:
		c.OnMouseMove(pos, c.leftButtonHeld())
	case WM_LBUTTONDOWN:
		c.OnLeftButton(pos, true)
		c.setVirtuallyActivated(true, "click at %d,%d", pos.X, pos.Y)
	case WM_LBUTTONUP:
		c.OnLeftButton(pos, false)
	}
	c.plat.SetArrowCursor()
}

// onMouseMessage is the direct path for WM_MOUSEMOVE/WM_LBUTTONDOWN/WM_LBUTTONUP.
// lParam is client-relative, so the screen position is re-read instead.
func (c *Controller) onMouseMessage(msg uint32) {
	c.setStatus(MessageName(msg))
	pos := c.plat.CursorPos()
	switch msg {
	case WM_MOUSEMOVE:
		c.OnMouseMove(pos, c.leftButtonHeld())
	case WM_LBUTTONDOWN:
		c.OnLeftButton(pos, true)
	case WM_LBUTTONUP:
		c.OnLeftButton(pos, false)
	}
}

func (c *Controller) leftButtonHeld() bool {
	return c.plat.AsyncKeyState(VK_LBUTTON) < 0
}

func (c *Controller) setStatus(s string) {
	if len(s) > maxStatusLen {
		s = s[:maxStatusLen]
	}
	c.statusText = s
	c.plat.Invalidate(c.hwnd)
}

func (c *Controller) setVirtuallyActivated(v bool, why string, args ...any) {
	if c.virtuallyActivated == v {
		return
	}
	c.virtuallyActivated = v
	logging.Logf("virtually activated = %t ("+why+")", append([]any{v}, args...)...)
}
