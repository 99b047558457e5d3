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

package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesAllLinesBeforeClose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, 0)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	for i := 0; i < 10; i++ {
		l.Logf("line %d", i)
	}
	l.Close()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "[Fri Jan 2 03:04:05.000000000 UTC 2026] line 0", lines[0])
	assert.True(t, strings.HasSuffix(lines[9], "] line 9"))
	assert.Zero(t, l.Dropped())
}

// blockingWriter holds the worker on its first write until released.
type blockingWriter struct {
	started chan struct{}
	release chan struct{}
	buf     bytes.Buffer
	first   bool
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	if !w.first {
		w.first = true
		close(w.started)
		<-w.release
	}
	return w.buf.Write(p)
}

func TestLoggerDropsWhenQueueFull(t *testing.T) {
	w := &blockingWriter{started: make(chan struct{}), release: make(chan struct{})}
	l := New(w, 2)

	l.Logf("held by the worker")
	<-w.started

	l.Logf("queued 1")
	l.Logf("queued 2")
	l.Logf("dropped")

	assert.Equal(t, uint64(1), l.Dropped())
	assert.Equal(t, uint64(2), l.Peak())

	close(w.release)
	l.Close()

	out := w.buf.String()
	assert.Contains(t, out, "queued 2")
	assert.NotContains(t, out, "] dropped\n")
	assert.Contains(t, out, "dropped 1 log lines")
}

func TestLogfAfterCloseIsCountedNotPanicking(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, 0)
	l.Close()

	assert.NotPanics(t, func() { l.Logf("late") })
	assert.Equal(t, uint64(1), l.Dropped())
	l.Close()
}

func TestPackageLogfUsesDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	assert.NotPanics(t, func() { Logf("nobody listening") })

	var buf bytes.Buffer
	l := New(&buf, 0)
	SetDefault(l)
	require.Same(t, l, Default())

	Logf("hello %s", "world")
	l.Close()
	assert.Contains(t, buf.String(), "hello world")
}
