package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	perr "aidetect/internal/platform/errors"
	pnet "aidetect/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures the per client token bucket
type RateLimitOptions struct {
	// RPS is the sustained rate per client, <= 0 disables limiting
	RPS float64
	// Burst is the bucket size, defaults to max(1, ceil(RPS))
	Burst int
	// IdleTTL drops buckets not seen for this long, defaults to 10m
	IdleTTL time.Duration
	// Key picks the bucket for a request, defaults to ClientOrIP
	Key func(*http.Request) string

	now func() time.Time
}

// ClientOrIP keys by authenticated client name, falling back to the remote IP
func ClientOrIP(r *http.Request) string {
	if c := pnet.Client(r.Context()); c != "" {
		return "client:" + c
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// Limiter holds the buckets so tests can inspect them
type Limiter struct {
	opt RateLimitOptions

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewLimiter builds a Limiter with defaults applied
func NewLimiter(o RateLimitOptions) *Limiter {
	if o.Burst <= 0 {
		o.Burst = int(o.RPS)
		if float64(o.Burst) < o.RPS {
			o.Burst++
		}
		if o.Burst < 1 {
			o.Burst = 1
		}
	}
	if o.IdleTTL <= 0 {
		o.IdleTTL = 10 * time.Minute
	}
	if o.Key == nil {
		o.Key = ClientOrIP
	}
	if o.now == nil {
		o.now = time.Now
	}
	return &Limiter{opt: o, buckets: map[string]*bucket{}}
}

// Allow reports whether key may proceed now and how long to wait otherwise
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	now := l.opt.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.opt.IdleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.seen) >= l.opt.IdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Limit(l.opt.RPS), l.opt.Burst)}
		l.buckets[key] = b
	}
	b.seen = now

	res := b.lim.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return false, d
	}
	return true, 0
}

// Len returns the number of live buckets
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RateLimit rejects requests over the per client rate with 429 and a Retry-After header
func RateLimit(o RateLimitOptions, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	if o.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	l := NewLimiter(o)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := l.Allow(l.opt.Key(r))
			if ok {
				next.ServeHTTP(w, r)
				return
			}
			secs := int(wait / time.Second)
			if wait%time.Second != 0 {
				secs++
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			err := perr.Newf(perr.ErrorCodeTooManyRequests, "rate limit exceeded, retry in %ds", secs)
			status, body := pnet.Error(err, pnet.RequestID(r.Context()))
			write(w, status, body)
		})
	}
}
