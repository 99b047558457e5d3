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
	"fmt"
	"strings"
)

const (
	minPollIntervalMS = 10
	maxPollIntervalMS = 10000
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate returns ValidationErrors listing every bad field, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Mode {
	case ModeDisabled, ModeEnabled:
	default:
		errs = append(errs, ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("%q is not %q or %q", c.Mode, ModeDisabled, ModeEnabled),
		})
	}

	if c.PollIntervalMS < minPollIntervalMS || c.PollIntervalMS > maxPollIntervalMS {
		errs = append(errs, ValidationError{
			Field:   "poll_interval_ms",
			Message: fmt.Sprintf("%d out of range [%d, %d]", c.PollIntervalMS, minPollIntervalMS, maxPollIntervalMS),
		})
	}

	if !validHotkey(c.Hotkey) {
		errs = append(errs, ValidationError{
			Field:   "hotkey",
			Message: fmt.Sprintf("%q must be one letter or digit", c.Hotkey),
		})
	}

	if c.Window.ClassName == "" {
		errs = append(errs, ValidationError{Field: "window.class_name", Message: "must not be empty"})
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, ValidationError{
			Field:   "window.width/height",
			Message: fmt.Sprintf("%dx%d is not a positive size", c.Window.Width, c.Window.Height),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validHotkey(s string) bool {
	if len(s) != 1 {
		return false
	}
	b := s[0]
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
