// Package service contains scoring stats workflows
package service

import (
	"context"
	"math"
	"sort"
	"time"

	"aidetect/internal/core/langhint"
	"aidetect/internal/core/verdict"
	perr "aidetect/internal/platform/errors"
	"aidetect/internal/services/api/stats/domain"
	"aidetect/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
	now  func() time.Time
}

// New constructs a stats service; now defaults to time.Now
func New(r repo.Repo, now func() time.Time) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil Repo")
	}
	if now == nil {
		now = time.Now
	}
	return &Svc{Repo: r, now: now}
}

// Record writes one event row
func (s *Svc) Record(ctx context.Context, ev domain.Event) error {
	at := ev.At
	if at.IsZero() {
		at = s.now()
	}
	row := repo.EventRow{
		TS:          at.UTC(),
		Kind:        ev.Kind,
		CharCount:   uint32(max(ev.CharCount, 0)),
		Paragraphs:  uint16(min(max(ev.Paragraphs, 0), math.MaxUint16)),
		Probability: ev.Probability,
		Label:       ev.Label,
		Tier:        ev.Tier,
		LatencyMs:   float64(ev.Latency.Microseconds()) / 1000,
		Client:      ev.Client,
		Lang:        ev.Lang,
	}
	if row.Lang == "" {
		row.Lang = langhint.Undetermined
	}
	if err := s.Repo.Insert(ctx, []repo.EventRow{row}); err != nil {
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeDB, "stats insert failed"), "stats record")
	}
	return nil
}

// Summary totals events from now minus in.Days
func (s *Svc) Summary(ctx context.Context, in domain.SummaryInput) (domain.Summary, error) {
	days := in.Days
	if days == 0 {
		days = domain.DefaultDays
	}
	if days < 1 || days > domain.MaxDays {
		return domain.Summary{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "days must be between 1 and %d", domain.MaxDays), "days")
	}
	since := s.now().UTC().AddDate(0, 0, -days)

	parts, err := s.Repo.Breakdown(ctx, since)
	if err != nil {
		return domain.Summary{}, perr.WithOp(perr.Wrap(err, perr.ErrorCodeDB, "stats query failed"), "stats breakdown")
	}
	daily, err := s.Repo.Daily(ctx, since)
	if err != nil {
		return domain.Summary{}, perr.WithOp(perr.Wrap(err, perr.ErrorCodeDB, "stats query failed"), "stats daily")
	}

	out := domain.Summary{Days: days, Since: since, ByDay: make([]domain.DayRow, 0, len(daily))}
	byLabel, byTier, byKind, byLang := map[string]uint64{}, map[string]uint64{}, map[string]uint64{}, map[string]uint64{}
	var probSum float64
	for _, p := range parts {
		out.Total += p.Requests
		probSum += p.ProbSum
		byLabel[p.Label] += p.Requests
		byTier[p.Tier] += p.Requests
		byKind[p.Kind] += p.Requests
		byLang[p.Lang] += p.Requests
	}
	if out.Total > 0 {
		out.MeanProbability = verdict.Round(probSum / float64(out.Total))
	}
	out.ByLabel = buckets(byLabel)
	out.ByTier = buckets(byTier)
	out.ByKind = buckets(byKind)
	out.ByLang = buckets(byLang)
	for _, d := range daily {
		out.ByDay = append(out.ByDay, domain.DayRow{Day: d.Day, Requests: d.Requests, MeanProbability: verdict.Round(d.MeanProb)})
	}
	return out, nil
}

// buckets orders by request count, then key
func buckets(m map[string]uint64) []domain.Bucket {
	out := make([]domain.Bucket, 0, len(m))
	for k, v := range m {
		out = append(out, domain.Bucket{Key: k, Requests: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Requests != out[j].Requests {
			return out[i].Requests > out[j].Requests
		}
		return out[i].Key < out[j].Key
	})
	return out
}
