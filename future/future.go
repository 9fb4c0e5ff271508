// SPDX-License-Identifier: Unlicense OR MIT

package future

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/tkgui/boxkit"
)

// State is the lifecycle stage of a Future. A future starts Pending, becomes
// Running when its callback starts and ends either Finished or Cancelled.
type State int

const (
	Pending State = iota
	Running
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Future holds the eventual result of a callback. Its methods are safe for
// concurrent use.
type Future[T any] struct {
	mu        sync.Mutex
	state     State
	value     T
	err       error
	cancel    func()
	callbacks []func(*Future[T])
	// done is closed when the future leaves Pending and Running.
	done chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Submit schedules fn on s after delay and returns its future without
// waiting for it to run.
func Submit[T any](s Scheduler, delay time.Duration, fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	cancel := s.Schedule(delay, func() { f.run(fn) })
	f.mu.Lock()
	if f.state == Pending {
		f.cancel = cancel
	}
	f.mu.Unlock()
	boxkit.Logger().Debug("future: submitted", "delay", delay)
	return f
}

// Go runs fn on a new goroutine and returns its future. Such a future is
// never Pending for long, so Cancel rarely succeeds.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go f.run(fn)
	return f
}

// run is the callback handed to the scheduler.
func (f *Future[T]) run(fn func() (T, error)) {
	f.mu.Lock()
	if f.state != Pending {
		f.mu.Unlock()
		return
	}
	f.state = Running
	f.mu.Unlock()
	v, err := call(fn)
	f.complete(v, err)
}

func call[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// complete stores the outcome of a callback that ran, wakes waiters and
// runs the done callbacks on the calling goroutine.
func (f *Future[T]) complete(v T, err error) {
	f.mu.Lock()
	cbs := f.settle(Finished, v, err)
	f.mu.Unlock()
	f.notify(cbs)
}

// settle moves f to its final state. f.mu must be held.
func (f *Future[T]) settle(s State, v T, err error) []func(*Future[T]) {
	f.state = s
	f.value = v
	f.err = err
	f.cancel = nil
	cbs := f.callbacks
	f.callbacks = nil
	close(f.done)
	return cbs
}

func (f *Future[T]) notify(cbs []func(*Future[T])) {
	for _, cb := range cbs {
		f.callback(cb)
	}
}

func (f *Future[T]) callback(cb func(*Future[T])) {
	defer func() {
		if r := recover(); r != nil {
			boxkit.Logger().Warn("future: done callback panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	cb(f)
}

// Cancel stops the callback from running if it has not started and reports
// whether the future is cancelled. It returns false once the callback is
// running or has finished. Cancelling a cancelled future reports true.
func (f *Future[T]) Cancel() bool {
	f.mu.Lock()
	switch f.state {
	case Cancelled:
		f.mu.Unlock()
		return true
	case Running, Finished:
		f.mu.Unlock()
		return false
	}
	cancel := f.cancel
	var zero T
	cbs := f.settle(Cancelled, zero, ErrCancelled)
	f.mu.Unlock()
	// The registration is dropped outside the lock; a callback that still
	// fires finds the future cancelled and returns.
	if cancel != nil {
		cancel()
	}
	f.notify(cbs)
	return true
}

// OnDone arranges for cb to be called with f once f is finished or
// cancelled. Callbacks run in the order they were added, on the goroutine
// that completed f; if f is already done, cb runs immediately on the calling
// goroutine. A panicking callback is logged and does not stop the others.
func (f *Future[T]) OnDone(cb func(*Future[T])) {
	f.mu.Lock()
	if f.state == Pending || f.state == Running {
		f.callbacks = append(f.callbacks, cb)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	f.callback(cb)
}

// Result blocks until f is finished or cancelled, or ctx is done. It
// returns the callback's value and error verbatim, ErrCancelled for a
// cancelled future, or, when ctx ends first, an error matching ErrTimeout
// for an expired deadline and ctx.Err() otherwise.
func (f *Future[T]) Result(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	default:
		select {
		case <-f.done:
		case <-ctx.Done():
			var zero T
			return zero, waitError(ctx)
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// ResultTimeout is Result with a timeout. A timeout <= 0 waits forever.
func (f *Future[T]) ResultTimeout(timeout time.Duration) (T, error) {
	if timeout <= 0 {
		return f.Result(context.Background())
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.Result(ctx)
}

// Wait is Result without the value.
func (f *Future[T]) Wait(ctx context.Context) error {
	_, err := f.Result(ctx)
	return err
}

// Done returns a channel closed once f is finished or cancelled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// State returns the current lifecycle stage of f.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Cancelled reports whether f was cancelled before its callback started.
func (f *Future[T]) Cancelled() bool { return f.State() == Cancelled }

// Running reports whether the callback is executing.
func (f *Future[T]) Running() bool { return f.State() == Running }

// Finished reports whether the callback ran to completion, successfully or
// not. Use Done to also learn about cancellation.
func (f *Future[T]) Finished() bool { return f.State() == Finished }
