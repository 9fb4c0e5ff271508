// SPDX-License-Identifier: Unlicense OR MIT

package future

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Waiter is implemented by every Future regardless of its value type.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Gather waits for all of fs and returns the first error any of them
// reports. Once one fails, the waits on the others are abandoned; the
// futures themselves keep going.
func Gather(ctx context.Context, fs ...Waiter) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, f := range fs {
		g.Go(func() error {
			return f.Wait(ctx)
		})
	}
	return g.Wait()
}
