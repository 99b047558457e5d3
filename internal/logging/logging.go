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

// Package logging moves log formatting off the message loop thread: Logf only
// formats and does a non-blocking channel send, a worker goroutine does the
// (possibly slow) writes.
package logging

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

const timeLayout = "Mon Jan 2 15:04:05.000000000 MST 2006"

const DefaultQueueSize = 4096

type syncer interface {
	Sync() error
}

type Logger struct {
	out   io.Writer
	queue chan string
	done  chan struct{}
	once  sync.Once

	dropped atomic.Uint64
	peak    atomic.Uint64

	now func() time.Time
}

// New starts a logger writing to out. A queue size of 0 means DefaultQueueSize.
func New(out io.Writer, queueSize int) *Logger {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	l := &Logger{
		out:   out,
		queue: make(chan string, queueSize),
		done:  make(chan struct{}),
		now:   time.Now,
	}
	go l.worker()
	return l
}

// Logf queues one line. It never blocks: when the queue is full the line is
// dropped and counted, so a stalled console can't stall the window.
func (l *Logger) Logf(format string, args ...any) {
	line := fmt.Sprintf("[%s] %s\n", l.now().Format(timeLayout), fmt.Sprintf(format, args...))

	depth := uint64(len(l.queue))
	for {
		old := l.peak.Load()
		if depth <= old || l.peak.CompareAndSwap(old, depth) {
			break
		}
	}

	defer func() {
		// send on a closed queue after Close
		if recover() != nil {
			l.dropped.Add(1)
		}
	}()
	select {
	case l.queue <- line:
	default:
		l.dropped.Add(1)
	}
}

func (l *Logger) Dropped() uint64 { return l.dropped.Load() }

// Peak is the deepest the queue has been when a line was queued.
func (l *Logger) Peak() uint64 { return l.peak.Load() }

// Close stops accepting lines and waits until everything queued is written.
func (l *Logger) Close() {
	l.once.Do(func() {
		close(l.queue)
	})
	<-l.done
}

func (l *Logger) worker() {
	defer close(l.done)
	for line := range l.queue {
		l.write(line)
	}
	if d := l.dropped.Load(); d > 0 {
		l.write(fmt.Sprintf("[%s] dropped %d log lines\n", l.now().Format(timeLayout), d))
	}
}

func (l *Logger) write(line string) {
	if _, err := io.WriteString(l.out, line); err != nil {
		return
	}
	if s, ok := l.out.(syncer); ok {
		_ = s.Sync()
	}
}

var std atomic.Pointer[Logger]

// SetDefault makes l the logger behind the package level Logf. Passing nil
// turns Logf back into a no-op.
func SetDefault(l *Logger) {
	std.Store(l)
}

func Default() *Logger {
	return std.Load()
}

// Logf logs through the default logger, if one is set.
func Logf(format string, args ...any) {
	if l := std.Load(); l != nil {
		l.Logf(format, args...)
	}
}
