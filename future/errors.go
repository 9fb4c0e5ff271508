// SPDX-License-Identifier: Unlicense OR MIT

package future

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned by Result for a future cancelled before its
	// callback started.
	ErrCancelled = errors.New("future: cancelled")
	// ErrTimeout is returned by Result when its deadline passes first. The
	// returned error also matches context.DeadlineExceeded.
	ErrTimeout = errors.New("future: timed out")
)

// PanicError is the error stored by a future whose callback panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: callback panicked: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// waitError converts the error of a context that ended before a future did.
func waitError(ctx context.Context) error {
	err := ctx.Err()
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}
