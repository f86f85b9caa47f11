// Package scoringtest provides a deterministic in-memory scoring Model for tests
package scoringtest

import (
	"context"
	"sync"
	"testing"

	"aidetect/internal/adapters/scoring"
)

// Fake scores by exact text lookup and records every call
type Fake struct {
	mu sync.Mutex

	// Probs maps input text to its score; misses get Default
	Probs   map[string]float64
	Default float64

	// Errors returned from the matching call, when set
	OneErr  error
	ManyErr error
	LoadErr error
	// LoadFailures fails the first n Load calls with LoadErr
	LoadFailures int

	// ManyOverride replaces the ScoreMany result when non-nil
	ManyOverride []float64

	ModelInfo scoring.Info

	// GPU and DeviceErr answer GPUAvailable
	GPU       bool
	DeviceErr error

	loads        int
	deviceChecks int
	oneCalls     []string
	many         [][]string
}

// Load implements scoring.Model
func (f *Fake) Load(_ context.Context) (scoring.Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.LoadErr != nil && (f.LoadFailures == 0 || f.loads <= f.LoadFailures) {
		return scoring.Info{}, f.LoadErr
	}
	info := f.ModelInfo
	info.GPUAvailable = info.GPUAvailable || f.GPU
	if info.ModelName == "" {
		info.ModelName = "fake-model"
	}
	if info.Device == "" {
		info.Device = "cpu"
	}
	return info, nil
}

// GPUAvailable implements scoring.DeviceReporter
func (f *Fake) GPUAvailable(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deviceChecks++
	return f.GPU, f.DeviceErr
}

// DeviceChecks returns how many times GPUAvailable ran
func (f *Fake) DeviceChecks() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deviceChecks
}

// ScoreOne implements scoring.Scorer
func (f *Fake) ScoreOne(_ context.Context, text string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.oneCalls = append(f.oneCalls, text)
	if f.OneErr != nil {
		return 0, f.OneErr
	}
	return f.lookup(text), nil
}

// ScoreMany implements scoring.Scorer
func (f *Fake) ScoreMany(_ context.Context, texts []string) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.many = append(f.many, append([]string(nil), texts...))
	if f.ManyErr != nil {
		return nil, f.ManyErr
	}
	if f.ManyOverride != nil {
		return append([]float64(nil), f.ManyOverride...), nil
	}
	out := make([]float64, len(texts))
	for i, t := range texts {
		out[i] = f.lookup(t)
	}
	return out, nil
}

func (f *Fake) lookup(text string) float64 {
	if p, ok := f.Probs[text]; ok {
		return p
	}
	return f.Default
}

// Loads returns how many times Load ran
func (f *Fake) Loads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

// OneCalls returns the texts passed to ScoreOne
func (f *Fake) OneCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.oneCalls...)
}

// ManyCalls returns the batches passed to ScoreMany
func (f *Fake) ManyCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.many...)
}

// Calls returns the total number of scoring calls
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.oneCalls) + len(f.many)
}

// NewBackend wraps f in a scoring.Backend; ready loads it before returning
func NewBackend(t *testing.T, f *Fake, ready bool) *scoring.Backend {
	t.Helper()
	b := scoring.NewBackend(f, scoring.Options{LoadAttempts: 1})
	if ready {
		if err := b.Load(context.Background()); err != nil {
			t.Fatalf("load fake backend: %v", err)
		}
	}
	return b
}
