package resilience

import (
	"context"
	"time"
)

// RetryPolicy bounds an exponential backoff loop
type RetryPolicy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

// Wait is the pause before retry n, n counting from 0
func (p RetryPolicy) Wait(n int) time.Duration {
	d := p.Base << uint(n)
	if d <= 0 || (p.Max > 0 && d > p.Max) {
		return p.Max
	}
	return d
}

// Retry calls fn until it succeeds, attempts run out, or ctx is done
// onRetry, when set, sees the failure and the pause before every retry
// The last fn error is returned when attempts run out, ctx.Err() on cancellation
func Retry(ctx context.Context, p RetryPolicy, onRetry func(attempt int, err error, wait time.Duration), fn func(context.Context) error) error {
	attempts := max(p.Attempts, 1)
	var last error
	for n := 0; n < attempts; n++ {
		if n > 0 {
			wait := p.Wait(n - 1)
			if onRetry != nil {
				onRetry(n, last, wait)
			}
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		if last = fn(ctx); last == nil {
			return nil
		}
	}
	return last
}
