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

// Package config loads the optional diswndtech.toml. Every field has a
// default reproducing the stock demo, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/workturnedplay/diswndtech/internal/wndctl"
)

const FileName = "diswndtech.toml"

// Window modes, as wndctl.StrategyFor spells them.
const (
	ModeDisabled = wndctl.ModeDisabled
	ModeEnabled  = wndctl.ModeEnabled
)

type Config struct {
	// Mode is "disabled" (poll and intercept) or "enabled" (plain messages).
	Mode string `toml:"mode"`

	PollIntervalMS int `toml:"poll_interval_ms"`
	// Hotkey is the single letter or digit that closes the window.
	Hotkey string `toml:"hotkey"`

	Window Window `toml:"window"`

	LogFile string `toml:"log_file"`
}

type Window struct {
	ClassName string `toml:"class_name"`
	Title     string `toml:"title"`
	X         int32  `toml:"x"`
	Y         int32  `toml:"y"`
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
}

func Default() *Config {
	return &Config{
		Mode:           DefaultMode,
		PollIntervalMS: 100,
		Hotkey:         "Q",
		Window: Window{
			ClassName: "DisWndTech",
			Title:     "DisWndTech",
			X:         0,
			Y:         0,
			Width:     250,
			Height:    150,
		},
		LogFile: "diswndtech_debug.log",
	}
}

// Path is where the config file is looked for: next to the executable.
func Path() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("decode %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// HotkeyVK is the virtual key code of Hotkey. Letters and digits use their
// upper case ASCII value as VK code. Only valid after Validate.
func (c *Config) HotkeyVK() uint32 {
	return uint32(strings.ToUpper(c.Hotkey)[0])
}
