// Package logger owns the process zerolog root and request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"aidetect/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger aliases zerolog so callers never import it for the type alone
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level   string
	Console bool
	Service string
	Caller  bool
	// SampleEvery keeps one of every N events when above 1
	SampleEvery int
	Writer      io.Writer
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "info"),
		Console:     strings.EqualFold(env.Get("FORMAT", "console"), "console"),
		Service:     env.Get("SERVICE", "aidetect-api"),
		Caller:      env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	root atomic.Pointer[Logger]
	lazy sync.Once
)

// Init builds and installs the root logger; later calls replace it
func Init(o Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := o.Writer
	if w == nil {
		w = os.Stdout
	}
	if o.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	ctx := zerolog.New(w).Level(ParseLevel(o.Level)).With().Timestamp()
	if o.Service != "" {
		ctx = ctx.Str("service", o.Service)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		ctx = ctx.Str("go", bi.GoVersion)
	}
	if o.Caller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	if o.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(o.SampleEvery)})
	}
	root.Store(&l)
	return &l
}

// Get returns the root, initialising it from the environment on first use
func Get() *Logger {
	lazy.Do(func() {
		if root.Load() == nil {
			Init(FromEnv())
		}
	})
	return root.Load()
}

// ParseLevel accepts zerolog level names plus "warning"; anything else is info
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Named returns a child tagged with a component field
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey struct{}

// WithRequest attaches a child logger carrying reqID and client to ctx
// Calls stack, so a later call can add the client to an existing request logger
func WithRequest(ctx context.Context, reqID, client string) context.Context {
	b := C(ctx).With()
	if reqID != "" {
		b = b.Str("request_id", reqID)
	}
	if client != "" {
		b = b.Str("client", client)
	}
	l := b.Logger()
	return context.WithValue(ctx, ctxKey{}, &l)
}

// C returns the request logger stored on ctx, or the root
func C(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Get()
}
