// Package service contains the predict and paragraph analysis workflows
package service

import (
	"context"
	"errors"
	"time"

	"aidetect/internal/adapters/scoring"
	"aidetect/internal/core/aggregate"
	"aidetect/internal/core/langhint"
	"aidetect/internal/core/paragraph"
	"aidetect/internal/core/textnorm"
	"aidetect/internal/core/verdict"
	perr "aidetect/internal/platform/errors"
	"aidetect/internal/platform/logger"
	"aidetect/internal/platform/resilience"
	"aidetect/internal/services/api/analyze/domain"
)

// DefaultMaxTextLength caps input length in characters
const DefaultMaxTextLength = 4096

const recordTimeout = 2 * time.Second

// Failure messages returned to callers; causes stay in the logs
const (
	msgPredictFailed = "prediction failed"
	msgAnalyzeFailed = "analysis failed"
	msgNotLoaded     = "model is not loaded"
	msgBreakerOpen   = "model is temporarily unavailable"
)

// Service defines the service contract for analyze
type Service interface{ domain.ServicePort }

// Options tunes the service
type Options struct {
	MaxTextLength int
	Recorders     []domain.Recorder
	Observer      domain.VerdictObserver
}

// Svc implements Service over a scoring.Scorer
type Svc struct {
	scorer scoring.Scorer
	opts   Options
	now    func() time.Time
}

// New creates the analyze service
func New(scorer scoring.Scorer, o Options) *Svc {
	if scorer == nil {
		panic("analyze.Service requires a non nil Scorer")
	}
	if o.MaxTextLength <= 0 {
		o.MaxTextLength = DefaultMaxTextLength
	}
	return &Svc{scorer: scorer, opts: o, now: time.Now}
}

// Predict scores the whole text once
func (s *Svc) Predict(ctx context.Context, in domain.TextInput) (domain.PredictResult, error) {
	if err := s.validate(in.Text); err != nil {
		return domain.PredictResult{}, err
	}
	start := s.now()

	p, err := s.scorer.ScoreOne(ctx, in.Text)
	if err != nil {
		return domain.PredictResult{}, s.fail(ctx, err, msgPredictFailed)
	}
	v := verdict.Classify(p)

	out := domain.PredictResult{
		Text:          textnorm.Preview(in.Text),
		AIProbability: v.Probability,
		Prediction:    string(v.Label),
		Confidence:    string(v.Tier),
		CharCount:     textnorm.CharCount(in.Text),
	}
	s.emit(ctx, domain.Event{
		Kind:        domain.KindPredict,
		Preview:     out.Text,
		CharCount:   out.CharCount,
		Probability: v.Probability,
		Label:       out.Prediction,
		Tier:        out.Confidence,
		Lang:        langhint.Detect(in.Text).Lang,
		Latency:     s.now().Sub(start),
	})
	return out, nil
}

// Analyze scores the whole text, then every paragraph in one batch
// either pass failing fails the request
func (s *Svc) Analyze(ctx context.Context, in domain.TextInput) (domain.AnalysisResult, error) {
	if err := s.validate(in.Text); err != nil {
		return domain.AnalysisResult{}, err
	}
	start := s.now()

	whole, err := s.scorer.ScoreOne(ctx, in.Text)
	if err != nil {
		return domain.AnalysisResult{}, s.fail(ctx, err, msgAnalyzeFailed)
	}

	units := paragraph.Units(in.Text)
	probs := []float64{}
	if len(units) > 0 {
		probs, err = s.scorer.ScoreMany(ctx, paragraph.Texts(units))
		if err != nil {
			return domain.AnalysisResult{}, s.fail(ctx, err, msgAnalyzeFailed)
		}
	}
	// paragraph scores are reported rounded and averaged as reported
	rounded := make([]float64, len(probs))
	for i, p := range probs {
		rounded[i] = verdict.Round(p)
	}

	res, err := aggregate.Combine(verdict.Classify(whole), units, rounded)
	if err != nil {
		return domain.AnalysisResult{}, s.fail(ctx, err, msgAnalyzeFailed)
	}

	out := domain.AnalysisResult{
		OverallAnalysis: domain.OverallAnalysis{
			FullTextProbability: res.Overall.Probability,
			Prediction:          string(res.Overall.Label),
			Confidence:          string(res.Overall.Tier),
		},
		ParagraphAnalysis: make([]domain.ParagraphAnalysis, len(res.Paragraphs)),
		ParagraphAverage:  res.Average,
	}
	for i, p := range res.Paragraphs {
		out.ParagraphAnalysis[i] = domain.ParagraphAnalysis{Text: p.Text, AIProbability: p.Probability}
	}

	s.emit(ctx, domain.Event{
		Kind:             domain.KindAnalyze,
		Preview:          textnorm.Preview(in.Text),
		CharCount:        textnorm.CharCount(in.Text),
		Probability:      res.Overall.Probability,
		Label:            out.OverallAnalysis.Prediction,
		Tier:             out.OverallAnalysis.Confidence,
		Paragraphs:       len(res.Paragraphs),
		ParagraphAverage: res.Average,
		Lang:             langhint.Detect(in.Text).Lang,
		Latency:          s.now().Sub(start),
	})
	return out, nil
}

func (s *Svc) validate(text string) error {
	if textnorm.IsBlankForModel(text) {
		return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "text must not be empty"), "text")
	}
	if n := textnorm.CharCount(text); n > s.opts.MaxTextLength {
		return perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "text must be at most %d characters, got %d", s.opts.MaxTextLength, n),
			"text",
		)
	}
	return nil
}

// fail maps a scoring error to the caller facing error
func (s *Svc) fail(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, scoring.ErrNotReady):
		return perr.Wrap(err, perr.ErrorCodeUnavailable, msgNotLoaded)
	case resilience.IsOpen(err):
		return perr.Wrap(err, perr.ErrorCodeUnavailable, msgBreakerOpen)
	}
	logger.C(ctx).Error().Err(err).Msg(msg)
	return perr.Wrap(err, perr.ErrorCodeUnknown, msg)
}

// emit fans a finished request out to metrics and recorders
func (s *Svc) emit(ctx context.Context, ev domain.Event) {
	ev.At = s.now().UTC()
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveVerdict(ev.Kind, ev.Label, ev.Tier)
	}
	if len(s.opts.Recorders) == 0 {
		return
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	for _, r := range s.opts.Recorders {
		if err := r.Record(rctx, ev); err != nil {
			logger.C(ctx).Warn().Err(err).Str("kind", ev.Kind).Msg("record analysis event failed")
		}
	}
}
