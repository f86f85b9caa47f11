package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicy_Wait(t *testing.T) {
	p := RetryPolicy{Base: 100 * time.Millisecond, Max: time.Second}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond, 800 * time.Millisecond, time.Second, time.Second}
	for n, w := range want {
		if got := p.Wait(n); got != w {
			t.Fatalf("Wait(%d) = %v, want %v", n, got, w)
		}
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls, retries := 0, 0
	err := Retry(context.Background(), RetryPolicy{Attempts: 4, Base: time.Millisecond},
		func(int, error, time.Duration) { retries++ },
		func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})
	if err != nil || calls != 3 || retries != 2 {
		t.Fatalf("err=%v calls=%d retries=%d", err, calls, retries)
	}
}

func TestRetry_ReturnsLastError(t *testing.T) {
	boom := errors.New("model server 502")
	calls := 0
	err := Retry(context.Background(), RetryPolicy{Attempts: 3, Base: time.Millisecond}, nil, func(context.Context) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestRetry_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, RetryPolicy{Attempts: 10, Base: time.Hour}, func(int, error, time.Duration) { cancel() }, func(context.Context) error {
		calls++
		return errors.New("down")
	})
	if !errors.Is(err, context.Canceled) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}
