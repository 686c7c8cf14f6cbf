// Package looptest provides a manually driven clock and frame source for
// tests of code that runs on loop.Loop.
package looptest

import (
	"sort"
	"time"

	"github.com/depeter/scrubbar/internal/loop"
	"github.com/depeter/scrubbar/internal/throttle"
)

// Timer is a fake timer created by Host.AfterFunc.
type Timer struct {
	At      time.Duration
	fn      func()
	seq     int
	stopped bool
	fired   bool
}

// Stop prevents the timer from firing.
func (t *Timer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Active reports whether the timer is still due to fire.
func (t *Timer) Active() bool {
	return !t.stopped && !t.fired
}

// Host is a virtual clock plus a frame queue. Nothing runs until the test
// calls Advance or RunFrame.
type Host struct {
	now    time.Duration
	seq    int
	timers []*Timer

	nextFrame loop.FrameID
	frames    map[loop.FrameID]func()
	order     []loop.FrameID
}

// New returns a Host at virtual time zero.
func New() *Host {
	return &Host{frames: make(map[loop.FrameID]func())}
}

// Now returns the virtual time.
func (h *Host) Now() time.Duration { return h.now }

// AfterFunc implements throttle.Scheduler.
func (h *Host) AfterFunc(d time.Duration, f func()) throttle.Timer {
	h.seq++
	t := &Timer{At: h.now + d, fn: f, seq: h.seq}
	h.timers = append(h.timers, t)
	return t
}

// Pending returns the timers that have not fired or been stopped, in firing order.
func (h *Host) Pending() []*Timer {
	var out []*Timer
	for _, t := range h.timers {
		if t.Active() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].At != out[j].At {
			return out[i].At < out[j].At
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Advance moves the clock forward by d, firing due timers in order.
func (h *Host) Advance(d time.Duration) {
	target := h.now + d
	for {
		pending := h.Pending()
		if len(pending) == 0 || pending[0].At > target {
			break
		}
		t := pending[0]
		h.now = t.At
		t.fired = true
		t.fn()
	}
	h.now = target
}

// RequestFrame queues f for the next RunFrame.
func (h *Host) RequestFrame(f func()) loop.FrameID {
	h.nextFrame++
	h.frames[h.nextFrame] = f
	h.order = append(h.order, h.nextFrame)
	return h.nextFrame
}

// CancelFrame drops a queued frame callback.
func (h *Host) CancelFrame(id loop.FrameID) {
	delete(h.frames, id)
}

// PendingFrames returns the number of queued frame callbacks.
func (h *Host) PendingFrames() int {
	return len(h.frames)
}

// RunFrame runs the frame callbacks queued so far.
func (h *Host) RunFrame() {
	order := h.order
	h.order = nil
	for _, id := range order {
		f, ok := h.frames[id]
		if !ok {
			continue
		}
		delete(h.frames, id)
		f()
	}
}
