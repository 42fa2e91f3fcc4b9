// Package retry runs an operation in a bounded loop. A caller-supplied
// classifier decides after each failure whether to stop, retry or give up.
package retry

import (
	"context"
	"fmt"
	"time"
)

type Action int

const (
	Stop   Action = iota // permanent error, abort immediately
	Retry                // transient error, consumes one retry
	GiveUp               // stop retrying without consuming budget (e.g. rate limited)
)

// DelayFunc returns how long to wait before the given retry (1-based).
type DelayFunc func(retry int) time.Duration

// NoDelay retries immediately.
func NoDelay(int) time.Duration { return 0 }

// Exponential doubles initial on every retry, capped at maxDelay.
func Exponential(initial, maxDelay time.Duration) DelayFunc {
	return func(retry int) time.Duration {
		d := initial
		for i := 1; i < retry && d < maxDelay; i++ {
			d *= 2
		}
		return min(d, maxDelay)
	}
}

type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// Delay is consulted before every retry. nil means NoDelay.
	Delay   DelayFunc
	OnRetry func(retry int, err error, delay time.Duration)
}

type Classify func(err error) Action
type Operation[T any] func(ctx context.Context) (T, error)

// Do calls op until it succeeds, the classifier stops or gives up, or the
// retry budget is spent. Failures are reported as *PermanentError or
// *ExhaustedError wrapping the last error of op.
func Do[T any](ctx context.Context, p Policy, classify Classify, op Operation[T]) (T, error) {
	var zero T
	delay := p.Delay
	if delay == nil {
		delay = NoDelay
	}

	for retries := 0; ; retries++ {
		val, err := op(ctx)
		if err == nil {
			return val, nil
		}

		switch classify(err) {
		case Stop:
			return zero, &PermanentError{Err: err}
		case GiveUp:
			return zero, &ExhaustedError{Retries: retries, GaveUp: true, Err: err}
		}

		if retries >= p.MaxRetries {
			return zero, &ExhaustedError{Retries: retries, Err: err}
		}

		wait := delay(retries + 1)
		if p.OnRetry != nil {
			p.OnRetry(retries+1, err, wait)
		}

		if err := sleep(ctx, wait); err != nil {
			return zero, fmt.Errorf("context cancelled during retry: %w", err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// ExhaustedError is returned when no more attempts will be made. Retries is
// the number of retries performed after the first attempt; GaveUp is set
// when the classifier ended the loop before the budget ran out.
type ExhaustedError struct {
	Retries int
	GaveUp  bool
	Err     error
}

func (e *ExhaustedError) Error() string {
	if e.GaveUp {
		return fmt.Sprintf("gave up after %d retries: %v", e.Retries, e.Err)
	}
	return fmt.Sprintf("failed after %d retries: %v", e.Retries, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }
