// SPDX-License-Identifier: Unlicense OR MIT

/*
Package future bridges worker goroutines and a single-threaded UI loop.

A Future is a result that some callback will produce later. Submit
registers the callback with a Scheduler, the host loop's "run after delay"
primitive, and returns immediately. The loop eventually runs the callback on
its own goroutine while any other goroutine blocks in Result:

	f := future.Submit(ui, 0, func() (image.Point, error) {
		return win.Size(), nil
	})
	size, err := f.Result(ctx)

Result must not be called on the loop goroutine while the future is still
pending. Nothing else can run the loop's callbacks, so the call would block
until ctx ends.

The same happens when the scheduler drops the callback: a future submitted
to a loop that has stopped, or still pending when it stops, never leaves
Pending. Result then returns only when ctx ends, so waiters should pass a
context with a deadline, or Cancel such futures when the loop goes away.

A future is cancellable until its callback starts. Errors returned by the
callback, and panics raised by it, are stored in the future and handed to the
Result caller; they never reach the loop.
*/
package future
