// SPDX-License-Identifier: Unlicense OR MIT

/*
Package loop implements a single-goroutine cooperative scheduler.

A Loop plays the part of a GUI toolkit's event loop for programs that have
no window: command line tools, servers and tests. Every callback runs on the
goroutine that called Run, one at a time, so state touched only from
callbacks needs no locking. Other goroutines hand work to the loop with
Schedule or Post.

Loop satisfies future.Scheduler:

	l := loop.New()
	go l.Run(ctx)
	f := future.Submit(l, 0, func() (int, error) { return 42, nil })
	v, err := f.Result(ctx)

Once Run returns, every callback still waiting is dropped, and later calls
to Schedule and Post are ignored. Futures submitted to the loop at that
point stay pending for good; their waiters return only when their own
context ends.
*/
package loop
