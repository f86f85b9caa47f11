package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreaker_DisabledPassesThrough(t *testing.T) {
	b := NewBreaker("op", BreakerConfig{Enabled: false}, nil)
	boom := errors.New("boom")
	for i := 0; i < 20; i++ {
		if err := b.Do(func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("want boom, got %v", err)
		}
	}
	if b.State() != "disabled" {
		t.Fatalf("state = %s", b.State())
	}
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	b := NewBreaker("score", BreakerConfig{
		Enabled:          true,
		MinRequests:      2,
		FailureRatio:     0.5,
		OpenTimeout:      time.Minute,
		HalfOpenMaxCalls: 1,
	}, nil)

	boom := errors.New("boom")
	_ = b.Do(func() error { return boom })
	_ = b.Do(func() error { return boom })

	calls := 0
	err := b.Do(func() error { calls++; return nil })
	if !IsOpen(err) {
		t.Fatalf("want open breaker error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("fn ran while breaker open")
	}
	if b.State() != "open" {
		t.Fatalf("state = %s, want open", b.State())
	}
}

func TestBreaker_IgnoredErrorsDoNotTrip(t *testing.T) {
	caller := errors.New("caller went away")
	b := NewBreaker("score", BreakerConfig{Enabled: true, MinRequests: 1, FailureRatio: 0.1}, func(err error) bool {
		return !errors.Is(err, caller)
	})
	for i := 0; i < 10; i++ {
		_ = b.Do(func() error { return caller })
	}
	if err := b.Do(func() error { return nil }); err != nil {
		t.Fatalf("breaker tripped on ignored errors: %v", err)
	}
}

func TestIsOpen_Nil(t *testing.T) {
	if IsOpen(nil) || IsOpen(errors.New("x")) {
		t.Fatalf("IsOpen false positive")
	}
}
