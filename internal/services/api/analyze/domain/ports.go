package domain

import (
	"context"
	"time"
)

// Request kinds recorded on events and metrics
const (
	KindPredict = "predict"
	KindAnalyze = "analyze"
)

// ServicePort defines the service contract for analyze
type ServicePort interface {
	Predict(ctx context.Context, in TextInput) (PredictResult, error)
	Analyze(ctx context.Context, in TextInput) (AnalysisResult, error)
}

// Event summarizes one successful scoring request
type Event struct {
	Kind             string
	Preview          string
	CharCount        int
	Probability      float64
	Label            string
	Tier             string
	Paragraphs       int
	ParagraphAverage float64
	// Lang is a BCP-47 hint, "und" when undecided
	Lang    string
	Latency time.Duration
	At      time.Time
}

// Recorder persists events; errors are logged by the caller and never surfaced
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// VerdictObserver counts verdicts, usually the metrics registry
type VerdictObserver interface {
	ObserveVerdict(kind, label, tier string)
}
