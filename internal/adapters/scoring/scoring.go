// Package scoring owns the model backend lifecycle and exposes the scoring capability
//
// A Model is the concrete thing that turns text into P(AI-generated): today the
// model server client in httpmodel, in tests the scoringtest fake
// Backend wraps a Model with readiness, concurrency limits, a circuit breaker and
// metrics, and is what services depend on through the Scorer interface
package scoring

import (
	"context"
	"errors"
	"time"
)

// ErrNotReady is returned while the model has not been loaded
var ErrNotReady = errors.New("scoring: model not loaded")

// Scorer maps text to the probability that it was machine generated
// ScoreMany returns exactly one probability per input, in input order
type Scorer interface {
	ScoreOne(ctx context.Context, text string) (float64, error)
	ScoreMany(ctx context.Context, texts []string) ([]float64, error)
}

// Model is a Scorer that must be loaded before use
type Model interface {
	Scorer
	Load(ctx context.Context) (Info, error)
}

// DeviceReporter is a Model that reports GPU availability without loading
type DeviceReporter interface {
	GPUAvailable(ctx context.Context) (bool, error)
}

// Info describes the loaded model
type Info struct {
	ModelName    string    `json:"model_name"`
	AdapterPath  string    `json:"adapter_path,omitempty"`
	Device       string    `json:"device"`
	GPUAvailable bool      `json:"gpu_available"`
	Quantization string    `json:"quantization,omitempty"`
	MaxLength    int       `json:"max_length"`
	BatchSize    int       `json:"batch_size"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// Observer receives one callback per scoring call
type Observer interface {
	ObserveScore(op string, texts int, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveScore(string, int, time.Duration, error) {}

// Operation labels passed to Observer
const (
	OpOne  = "one"
	OpMany = "many"
)
