// Package resilience wraps sony/gobreaker with project defaults and zerolog state logging
package resilience

import (
	"errors"
	"time"

	"aidetect/internal/platform/logger"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes a circuit breaker; zero values fall back to defaults
type BreakerConfig struct {
	Enabled          bool
	MinRequests      uint32
	FailureRatio     float64
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
	// Interval clears closed-state counts periodically; 0 keeps them until a state change
	Interval time.Duration
}

func (c BreakerConfig) normalize() BreakerConfig {
	if c.MinRequests == 0 {
		c.MinRequests = 5
	}
	if c.FailureRatio <= 0 || c.FailureRatio > 1 {
		c.FailureRatio = 0.6
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 30 * time.Second
	}
	if c.HalfOpenMaxCalls == 0 {
		c.HalfOpenMaxCalls = 1
	}
	return c
}

// Breaker guards one named operation
// a disabled Breaker just runs the function
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreaker builds a breaker; countsAsFailure decides which errors trip it (nil = all)
func NewBreaker(name string, cfg BreakerConfig, countsAsFailure func(error) bool) *Breaker {
	b := &Breaker{name: name}
	if !cfg.Enabled {
		return b
	}
	cfg = cfg.normalize()
	log := logger.Named("breaker")

	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenMaxCalls,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if countsAsFailure == nil {
				return false
			}
			return !countsAsFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})
	return b
}

// Do runs fn through the breaker
func (b *Breaker) Do(fn func() error) error {
	if b == nil || b.cb == nil {
		return fn()
	}
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	return err
}

// State reports the breaker state name, "disabled" when off
func (b *Breaker) State() string {
	if b == nil || b.cb == nil {
		return "disabled"
	}
	return b.cb.State().String()
}

// IsOpen reports whether err was produced by an open or saturated half-open breaker
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
