// Package loop is the single-threaded runtime the widget runs on. Goroutines
// (mpv events, timers, downloads) post work here; the ebiten update drains it.
package loop

import (
	"sync"
	"time"

	"github.com/depeter/scrubbar/internal/throttle"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

type frameReq struct {
	id FrameID
	fn func()
}

// Loop queues tasks posted from any goroutine and runs them on the caller of
// RunPending. Frame callbacks run once per render tick via RunFrame.
type Loop struct {
	mu    sync.Mutex
	tasks []func()

	nextFrame FrameID
	frames    []frameReq
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{}
}

// Post queues f to run on the UI thread. Safe for concurrent use.
func (l *Loop) Post(f func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, f)
	l.mu.Unlock()
}

// RunPending runs every queued task, including tasks posted while draining.
// It returns the number of tasks run.
func (l *Loop) RunPending() int {
	n := 0
	for {
		l.mu.Lock()
		tasks := l.tasks
		l.tasks = nil
		l.mu.Unlock()
		if len(tasks) == 0 {
			return n
		}
		for _, f := range tasks {
			f()
			n++
		}
	}
}

// AfterFunc runs f on the UI thread once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) throttle.Timer {
	t := &timer{}
	t.t = time.AfterFunc(d, func() {
		l.Post(func() {
			t.mu.Lock()
			stopped := t.stopped
			t.mu.Unlock()
			if !stopped {
				f()
			}
		})
	})
	return t
}

// RequestFrame schedules f for the next RunFrame.
func (l *Loop) RequestFrame(f func()) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextFrame++
	l.frames = append(l.frames, frameReq{id: l.nextFrame, fn: f})
	return l.nextFrame
}

// CancelFrame drops a callback that has not run yet.
func (l *Loop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, fr := range l.frames {
		if fr.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// RunFrame runs the callbacks requested before this tick. Callbacks requested
// from inside a frame callback wait for the next tick.
func (l *Loop) RunFrame() {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()
	for _, fr := range frames {
		fr.fn()
	}
}

// timer is stoppable both before the deadline and after it fired but before
// the posted task ran.
type timer struct {
	t       *time.Timer
	mu      sync.Mutex
	stopped bool
}

func (t *timer) Stop() bool {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	return t.t.Stop()
}
