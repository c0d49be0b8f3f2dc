package httputil

import (
	"context"
	"errors"
	"time"
)

// Retry defaults shared by every outbound client (metadata store, render
// service). Three attempts ride out a pod restart on the remote side
// without stretching a dead-endpoint failure past a few seconds.
const (
	defaultAttempts     = 3
	defaultInitialDelay = time.Second
)

// RetryableError marks a failure as transient. Wrap connection errors,
// timeouts, and 5xx responses with it; anything else fails fast.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling the delay between
// attempts. Only errors wrapped in [RetryableError] are retried; any
// other error returns immediately. Cancelling ctx during a backoff wait
// returns ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*RetryableError)) {
			return err
		}

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the shared client defaults.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultInitialDelay, fn)
}
