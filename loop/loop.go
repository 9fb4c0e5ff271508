// SPDX-License-Identifier: Unlicense OR MIT

package loop

import (
	"container/heap"
	"context"
	"errors"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tkgui/boxkit"
)

var (
	// ErrRunning is returned by Run when the loop is already running.
	ErrRunning = errors.New("loop: already running")
	// ErrStopped is returned by Run when the loop has already stopped.
	ErrStopped = errors.New("loop: stopped")
)

// Loop runs scheduled callbacks on a single goroutine.
type Loop struct {
	lockThread bool

	// mu guards the fields below it.
	mu      sync.Mutex
	inbox   []request
	seq     uint64
	stopped bool

	// wakeups wakes Run when the inbox gains a request.
	wakeups chan struct{}
	stop    chan struct{}
	done    chan struct{}
	stopper sync.Once
	running atomic.Bool

	// timers and spare are only touched by the loop goroutine.
	timers timerHeap
	spare  []request
}

// request is a registration, or with remove set, a cancellation handed
// from an arbitrary goroutine to the loop goroutine.
type request struct {
	t      *timer
	remove bool
}

// Option configures a Loop.
type Option func(l *Loop)

// LockOSThread makes Run lock its goroutine to the current OS thread for the
// lifetime of the loop. Hosts that must call thread-affine APIs from
// callbacks need it.
func LockOSThread() Option {
	return func(l *Loop) {
		l.lockThread = true
	}
}

// QueueHint sizes the inbox for n outstanding registrations.
func QueueHint(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.inbox = make([]request, 0, n)
			l.spare = make([]request, 0, n)
		}
	}
}

// New returns a loop that is not yet running.
func New(opts ...Option) *Loop {
	l := &Loop{
		wakeups: make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Run runs callbacks on the calling goroutine until ctx is done or Stop is
// called. It returns ctx.Err() in the first case and nil in the second.
// A loop runs once: Run on a loop that has returned from Run reports
// ErrStopped.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer l.running.Store(false)
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	defer l.finish()
	if l.lockThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}
	boxkit.Logger().Debug("loop: running")
	t := time.NewTimer(time.Hour)
	t.Stop()
	for {
		l.drain()
		l.runDue(time.Now())
		var timeout <-chan time.Time
		if len(l.timers) > 0 {
			d := time.Until(l.timers[0].due)
			if d <= 0 {
				// Callbacks scheduled themselves with no delay. Yield to ctx
				// and Stop before running them.
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-l.stop:
					return nil
				default:
				}
				continue
			}
			t.Reset(d)
			timeout = t.C
		}
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-l.stop:
			t.Stop()
			return nil
		case <-l.wakeups:
		case <-timeout:
		}
		t.Stop()
	}
}

// finish marks the loop stopped and drops every outstanding callback.
func (l *Loop) finish() {
	l.mu.Lock()
	l.stopped = true
	n := len(l.inbox) + len(l.timers)
	l.inbox = nil
	l.mu.Unlock()
	l.timers = nil
	l.Stop()
	close(l.done)
	boxkit.Logger().Debug("loop: stopped", "dropped", n)
}

// Schedule arranges for f to run on the loop goroutine once delay has
// elapsed. A negative delay counts as zero. Callbacks due at the same time
// run in the order they were scheduled. The returned cancel func prevents f
// from running if it has not started yet; calling it more than once is
// harmless.
//
// Schedule is safe for concurrent use, including from within a callback. A
// callback scheduled after the loop stopped never runs.
func (l *Loop) Schedule(delay time.Duration, f func()) (cancel func()) {
	if delay < 0 {
		delay = 0
	}
	t := &timer{due: time.Now().Add(delay), f: f, index: -1}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return func() {}
	}
	l.seq++
	t.seq = l.seq
	l.inbox = append(l.inbox, request{t: t})
	l.mu.Unlock()
	l.wakeup()
	return func() {
		if t.cancelled.Swap(true) {
			return
		}
		l.mu.Lock()
		if !l.stopped {
			l.inbox = append(l.inbox, request{t: t, remove: true})
		}
		l.mu.Unlock()
		l.wakeup()
	}
}

// Post runs f on the loop goroutine as soon as possible.
func (l *Loop) Post(f func()) {
	l.Schedule(0, f)
}

// Stop makes Run return. It is safe to call from any goroutine, any number
// of times.
func (l *Loop) Stop() {
	l.stopper.Do(func() {
		close(l.stop)
	})
}

// Done is closed when Run has returned and every outstanding callback has
// been dropped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Pending returns the number of callbacks that are scheduled and not yet run
// or cancelled. It must be called on the loop goroutine, typically from a
// callback handed to Post.
func (l *Loop) Pending() int {
	l.drain()
	n := 0
	for _, t := range l.timers {
		if !t.cancelled.Load() {
			n++
		}
	}
	return n
}

func (l *Loop) wakeup() {
	select {
	case l.wakeups <- struct{}{}:
	default:
	}
}

// drain moves the inbox into the timer table.
func (l *Loop) drain() {
	l.mu.Lock()
	reqs := l.inbox
	l.inbox = l.spare[:0]
	l.mu.Unlock()
	defer func() {
		clear(reqs)
		l.spare = reqs
	}()
	for _, r := range reqs {
		switch {
		case r.remove:
			if r.t.index >= 0 {
				heap.Remove(&l.timers, r.t.index)
			}
		case !r.t.cancelled.Load():
			heap.Push(&l.timers, r.t)
		}
	}
}

// runDue runs the timers due at or before now. Timers scheduled by the
// callbacks themselves wait for the next iteration.
func (l *Loop) runDue(now time.Time) {
	for len(l.timers) > 0 && !l.timers[0].due.After(now) {
		t := heap.Pop(&l.timers).(*timer)
		if t.cancelled.Load() {
			continue
		}
		l.call(t.f)
	}
}

func (l *Loop) call(f func()) {
	defer func() {
		if r := recover(); r != nil {
			boxkit.Logger().Warn("loop: callback panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	f()
}
