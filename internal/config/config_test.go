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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workturnedplay/diswndtech/internal/wndctl"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesStockWindow(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultMode, cfg.Mode)
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, uint32('Q'), cfg.HotkeyVK())
	assert.Equal(t, "DisWndTech", cfg.Window.ClassName)
	assert.Equal(t, int32(0), cfg.Window.X)
	assert.Equal(t, int32(0), cfg.Window.Y)
	assert.Equal(t, int32(250), cfg.Window.Width)
	assert.Equal(t, int32(150), cfg.Window.Height)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyWhatIsSet(t *testing.T) {
	path := writeConfig(t, `
mode = "enabled"
hotkey = "x"

[window]
x = 40
width = 320
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeEnabled, cfg.Mode)
	assert.Equal(t, uint32('X'), cfg.HotkeyVK())
	assert.Equal(t, int32(40), cfg.Window.X)
	assert.Equal(t, int32(320), cfg.Window.Width)
	assert.Equal(t, int32(150), cfg.Window.Height, "unset field keeps its default")
	assert.Equal(t, 100, cfg.PollIntervalMS)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `polling = 5`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys polling")
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `mode = `)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Mode = "sideways"
	cfg.PollIntervalMS = 1
	cfg.Hotkey = "F12"
	cfg.Window.ClassName = ""
	cfg.Window.Height = 0

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"mode", "poll_interval_ms", "hotkey", "window.class_name", "window.width/height"}, fields)
}

func TestValidHotkey(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Q", true},
		{"q", true},
		{"7", true},
		{"", false},
		{"QQ", false},
		{"-", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validHotkey(tt.in))
		})
	}
}

func TestPathEndsWithFileName(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(Path()))
}

func TestExampleFileLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "diswndtech.example.toml"))
	require.NoError(t, err)

	assert.Equal(t, ModeDisabled, cfg.Mode)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Equal(t, Default().PollIntervalMS, cfg.PollIntervalMS)
}

func TestEveryValidModeHasAStrategy(t *testing.T) {
	for _, mode := range []string{ModeDisabled, ModeEnabled, DefaultMode} {
		cfg := Default()
		cfg.Mode = mode
		require.NoError(t, cfg.Validate(), mode)

		s, err := wndctl.StrategyFor(cfg.Mode)
		require.NoError(t, err, mode)
		assert.Equal(t, mode, s.Name())
	}
}
