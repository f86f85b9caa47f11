package scoring

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"aidetect/internal/core/textnorm"
	"aidetect/internal/core/verdict"
	perr "aidetect/internal/platform/errors"
	"aidetect/internal/platform/logger"
	"aidetect/internal/platform/resilience"

	"golang.org/x/sync/semaphore"
)

const (
	defaultMaxConcurrent = 1
	defaultLoadAttempts  = 10
	defaultLoadBackoff   = 500 * time.Millisecond
	maxLoadBackoff       = 30 * time.Second
)

// ErrBadOutput marks a model response that broke the scoring contract
var ErrBadOutput = errors.New("scoring: invalid model output")

// Status is the backend lifecycle state
type Status int32

// Lifecycle states; a backend only ever moves forward to StatusReady
const (
	StatusUnloaded Status = iota
	StatusLoading
	StatusFailed
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "failed"
	case StatusReady:
		return "ready"
	default:
		return "unloaded"
	}
}

// Options configures a Backend
type Options struct {
	// MaxConcurrent caps in-flight model calls; 1 serializes them
	MaxConcurrent int64
	LoadAttempts  int
	LoadBackoff   time.Duration
	Breaker       resilience.BreakerConfig
	Observer      Observer
}

// Backend is the process-wide scoring backend
// It is safe for concurrent use once constructed
type Backend struct {
	model   Model
	opts    Options
	sem     *semaphore.Weighted
	breaker *resilience.Breaker
	obs     Observer
	log     logger.Logger

	loadMu sync.Mutex
	status atomic.Int32
	info   atomic.Pointer[Info]
	// gpu is valid once gpuKnown is set by a device check or a load
	gpu      atomic.Bool
	gpuKnown atomic.Bool
	now      func() time.Time
}

// NewBackend wraps m; it starts unloaded
func NewBackend(m Model, o Options) *Backend {
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = defaultMaxConcurrent
	}
	if o.LoadAttempts <= 0 {
		o.LoadAttempts = defaultLoadAttempts
	}
	if o.LoadBackoff <= 0 {
		o.LoadBackoff = defaultLoadBackoff
	}
	obs := o.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	return &Backend{
		model: m,
		opts:  o,
		sem:   semaphore.NewWeighted(o.MaxConcurrent),
		breaker: resilience.NewBreaker("model", o.Breaker, func(err error) bool {
			return !errors.Is(err, context.Canceled)
		}),
		obs: obs,
		log: *logger.Named("scoring"),
		now: time.Now,
	}
}

// Load brings the model up, retrying with exponential backoff
// Once ready, further calls return nil without touching the model
func (b *Backend) Load(ctx context.Context) error {
	b.loadMu.Lock()
	defer b.loadMu.Unlock()

	if b.Ready() {
		return nil
	}
	b.status.Store(int32(StatusLoading))

	policy := resilience.RetryPolicy{Attempts: b.opts.LoadAttempts, Base: b.opts.LoadBackoff, Max: maxLoadBackoff}
	onRetry := func(attempt int, err error, wait time.Duration) {
		b.log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("model load failed, retrying")
	}
	err := resilience.Retry(ctx, policy, onRetry, func(ctx context.Context) error {
		if !b.gpuKnown.Load() {
			b.checkDevice(ctx)
		}
		start := b.now()
		info, err := b.model.Load(ctx)
		if err != nil {
			return err
		}
		if info.LoadedAt.IsZero() {
			info.LoadedAt = b.now().UTC()
		}
		b.info.Store(&info)
		b.gpu.Store(info.GPUAvailable)
		b.gpuKnown.Store(true)
		b.log.Info().
			Str("model", info.ModelName).
			Str("adapter", info.AdapterPath).
			Str("device", info.Device).
			Bool("gpu", info.GPUAvailable).
			Dur("took", b.now().Sub(start)).
			Msg("model loaded")
		return nil
	})
	switch {
	case err == nil:
		b.status.Store(int32(StatusReady))
		return nil
	case ctx.Err() != nil:
		b.status.Store(int32(StatusFailed))
		return perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "model load aborted")
	}
	b.status.Store(int32(StatusFailed))
	return perr.Wrapf(err, perr.ErrorCodeUnavailable, "model load failed after %d attempts", b.opts.LoadAttempts)
}

func (b *Backend) checkDevice(ctx context.Context) {
	dp, ok := b.model.(DeviceReporter)
	if !ok {
		return
	}
	gpu, err := dp.GPUAvailable(ctx)
	if err != nil {
		b.log.Debug().Err(err).Msg("device check failed")
		return
	}
	b.gpu.Store(gpu)
	b.gpuKnown.Store(true)
}

// GPUAvailable reports the device flag from the first successful device check or load
func (b *Backend) GPUAvailable() bool { return b.gpu.Load() }

// Ready reports whether the model is loaded
func (b *Backend) Ready() bool { return b.Status() == StatusReady }

// Status returns the lifecycle state
func (b *Backend) Status() Status { return Status(b.status.Load()) }

// Info returns the loaded model description; ok is false before load
func (b *Backend) Info() (Info, bool) {
	p := b.info.Load()
	if p == nil {
		return Info{}, false
	}
	return *p, true
}

// BreakerState reports the circuit breaker state name
func (b *Backend) BreakerState() string { return b.breaker.State() }

// ScoreOne scores a single text
func (b *Backend) ScoreOne(ctx context.Context, text string) (float64, error) {
	var p float64
	err := b.run(ctx, OpOne, 1, func() error {
		v, err := b.model.ScoreOne(ctx, textnorm.ForModel(text))
		if err != nil {
			return err
		}
		if err := verdict.Check(v); err != nil {
			return fmt.Errorf("%w: %v", ErrBadOutput, err)
		}
		p = v
		return nil
	})
	return p, err
}

// ScoreMany scores texts in one model call, preserving order
func (b *Backend) ScoreMany(ctx context.Context, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		if !b.Ready() {
			return nil, ErrNotReady
		}
		return []float64{}, nil
	}
	var out []float64
	err := b.run(ctx, OpMany, len(texts), func() error {
		ps, err := b.model.ScoreMany(ctx, textnorm.ForModelAll(texts))
		if err != nil {
			return err
		}
		if len(ps) != len(texts) {
			return fmt.Errorf("%w: got %d scores for %d texts", ErrBadOutput, len(ps), len(texts))
		}
		for i, v := range ps {
			if err := verdict.Check(v); err != nil {
				return fmt.Errorf("%w: text %d: %v", ErrBadOutput, i, err)
			}
		}
		out = ps
		return nil
	})
	return out, err
}

// run gates a model call on readiness, the semaphore and the breaker
func (b *Backend) run(ctx context.Context, op string, n int, fn func() error) error {
	if !b.Ready() {
		return ErrNotReady
	}
	start := b.now()
	if err := b.sem.Acquire(ctx, 1); err != nil {
		b.obs.ObserveScore(op, n, b.now().Sub(start), err)
		return err
	}
	err := b.breaker.Do(fn)
	b.sem.Release(1)
	b.obs.ObserveScore(op, n, b.now().Sub(start), err)
	return err
}
