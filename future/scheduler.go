// SPDX-License-Identifier: Unlicense OR MIT

package future

import "time"

// Scheduler runs callbacks on a host event loop.
//
// Schedule arranges for f to run on the loop once delay has elapsed and
// returns a func that deregisters f if it has not run yet. Callbacks with
// equal delays should run in the order they were scheduled. Schedule must be
// safe to call from any goroutine.
type Scheduler interface {
	Schedule(delay time.Duration, f func()) (cancel func())
}

// ScheduleFunc adapts a plain function to the Scheduler interface, for
// toolkits whose "after" primitive is not a method.
type ScheduleFunc func(delay time.Duration, f func()) (cancel func())

// Schedule calls s(delay, f).
func (s ScheduleFunc) Schedule(delay time.Duration, f func()) (cancel func()) {
	return s(delay, f)
}
