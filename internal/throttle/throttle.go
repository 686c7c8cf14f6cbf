// Package throttle rate-limits high frequency callbacks such as pointer moves.
package throttle

import "time"

// Timer is a pending callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Implementations decide which goroutine f
// runs on; loop.Loop runs it on the UI thread.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Throttler runs at most one immediate call per window, plus one trailing
// call that carries the freshest argument seen during the window.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration
	sched Scheduler

	waiting  bool
	cooldown Timer
	trailing Timer
	pending  T
}

// New wraps fn so that it runs at most once per limit.
func New[T any](fn func(T), limit time.Duration, sched Scheduler) *Throttler[T] {
	return &Throttler[T]{fn: fn, limit: limit, sched: sched}
}

// Call runs fn immediately when idle. While a window is open it replaces any
// pending trailing call with one at limit/2 from now.
func (t *Throttler[T]) Call(arg T) {
	if !t.waiting {
		t.stopTrailing()
		t.fn(arg)
		t.waiting = true
		t.cooldown = t.sched.AfterFunc(t.limit, func() {
			t.waiting = false
			t.cooldown = nil
		})
		return
	}

	t.stopTrailing()
	t.pending = arg
	var trailing Timer
	trailing = t.sched.AfterFunc(t.limit/2, func() {
		if t.trailing == trailing {
			t.trailing = nil
		}
		t.fn(arg)
	})
	t.trailing = trailing
}

// Flush runs the pending trailing call now instead of at its deadline.
// It does nothing when no trailing call is pending.
func (t *Throttler[T]) Flush() {
	if t.trailing == nil {
		return
	}
	t.stopTrailing()
	t.fn(t.pending)
}

// Pending reports whether a trailing call is scheduled.
func (t *Throttler[T]) Pending() bool {
	return t.trailing != nil
}

// Cancel drops any trailing call and closes the current window.
func (t *Throttler[T]) Cancel() {
	t.stopTrailing()
	if t.cooldown != nil {
		t.cooldown.Stop()
		t.cooldown = nil
	}
	t.waiting = false
}

func (t *Throttler[T]) stopTrailing() {
	if t.trailing != nil {
		t.trailing.Stop()
		t.trailing = nil
	}
}
