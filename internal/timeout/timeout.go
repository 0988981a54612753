// Package timeout bounds the wall-clock duration of multi-step operations
// so that a slow dependency cannot hold a request open past the host's
// execution limit.
package timeout

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDeadline marks a timeout-race trip. It is distinct from ordinary
// operation failures so callers can map it to a retryable 504 response.
var ErrDeadline = errors.New("operation timed out")

// Do races op against a timer of duration d and returns whichever settles
// first. When the timer wins, the operation's eventual result is discarded
// and an error wrapping ErrDeadline is returned.
//
// Do does not cancel the underlying operation: an in-flight database query
// keeps running to completion, it is merely no longer waited on. Under
// sustained timeouts this leaks backend work, so pair it with driver-level
// statement timeouts where the store supports them.
func Do[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}

	// Buffered so the abandoned goroutine can deliver its late result and
	// exit instead of blocking forever.
	ch := make(chan result, 1)

	go func() {
		val, err := op(ctx)
		ch <- result{val, err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case res := <-ch:
		return res.val, res.err
	case <-timer.C:
		return zero, fmt.Errorf("%w after %s", ErrDeadline, d)
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
