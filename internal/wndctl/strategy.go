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

import "fmt"

// Strategy is how the window gets its input: polled and intercepted while
// disabled, or from ordinary messages while enabled. The controller handles
// WM_CREATE, WM_DESTROY, WM_ACTIVATE and WM_PAINT itself and offers every
// other message to the strategy.
type Strategy interface {
	Name() string
	// Style bits the strategy adds to WS_POPUP|WS_BORDER.
	Style() uint32
	OnCreate(c *Controller)
	OnDestroy(c *Controller)
	Handle(c *Controller, msg uint32, wParam, lParam uintptr) (uintptr, bool)
}

const (
	ModeDisabled = "disabled"
	ModeEnabled  = "enabled"
)

// StrategyFor returns the strategy registered under mode.
func StrategyFor(mode string) (Strategy, error) {
	switch mode {
	case ModeDisabled:
		return DisabledStrategy{}, nil
	case ModeEnabled:
		return EnabledStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown window mode %q (want %q or %q)", mode, ModeDisabled, ModeEnabled)
}

// DisabledStrategy keeps the window WS_DISABLED. Keyboard and mouse messages
// never arrive, so a timer polls the keyboard and WM_SETCURSOR stands in for
// the mouse.
type DisabledStrategy struct{}

func (DisabledStrategy) Name() string  { return ModeDisabled }
func (DisabledStrategy) Style() uint32 { return WS_DISABLED }

func (DisabledStrategy) OnCreate(c *Controller) {
	c.plat.SetTimer(c.hwnd, pollTimerID, c.pollInterval)
}

func (DisabledStrategy) OnDestroy(c *Controller) {
	c.plat.KillTimer(c.hwnd, pollTimerID)
}

func (DisabledStrategy) Handle(c *Controller, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	switch msg {
	case WM_TIMER:
		if wParam == pollTimerID {
			c.OnTimerTick()
		}
		return 0, true
	case WM_SETCURSOR:
		c.OnSetCursor(lParam)
		return 0, true
	}
	return 0, false
}

// EnabledStrategy is the ordinary window, kept to compare against: input
// comes through WM_KEY* and WM_*BUTTON* and there is nothing to poll.
type EnabledStrategy struct{}

func (EnabledStrategy) Name() string          { return ModeEnabled }
func (EnabledStrategy) Style() uint32         { return 0 }
func (EnabledStrategy) OnCreate(*Controller)  {}
func (EnabledStrategy) OnDestroy(*Controller) {}

func (EnabledStrategy) Handle(c *Controller, msg uint32, wParam, _ uintptr) (uintptr, bool) {
	switch msg {
	case WM_KEYDOWN, WM_KEYUP, WM_SYSKEYDOWN, WM_SYSKEYUP:
		c.OnKey(msg, uint32(wParam))
		return 0, true
	case WM_MOUSEMOVE, WM_LBUTTONDOWN, WM_LBUTTONUP:
		c.onMouseMessage(msg)
		return 0, true
	}
	return 0, false
}
