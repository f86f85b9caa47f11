// Package repo provides clickhouse access for scoring stats
package repo

import (
	"context"
	"time"

	"aidetect/internal/platform/store"
)

// Table holds one row per scoring request
const Table = "scoring_events"

// Schema creates the events table; rows expire after 180 days
const Schema = `
create table if not exists scoring_events (
	ts DateTime64(3, 'UTC'),
	kind LowCardinality(String),
	char_count UInt32,
	paragraphs UInt16,
	probability Float64,
	label LowCardinality(String),
	tier LowCardinality(String),
	latency_ms Float64,
	client String,
	lang LowCardinality(String)
)
engine = MergeTree
order by ts
ttl toDateTime(ts) + interval 180 day
`

// Repo is the minimal persistence surface for stats
type Repo interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, rows []EventRow) error
	Breakdown(ctx context.Context, since time.Time) ([]BreakdownRow, error)
	Daily(ctx context.Context, since time.Time) ([]DailyRow, error)
}

// EventRow mirrors the column order of scoring_events
type EventRow struct {
	TS          time.Time
	Kind        string
	CharCount   uint32
	Paragraphs  uint16
	Probability float64
	Label       string
	Tier        string
	LatencyMs   float64
	Client      string
	Lang        string
}

// BreakdownRow counts requests per kind, label, tier and lang
type BreakdownRow struct {
	Kind     string
	Label    string
	Tier     string
	Lang     string
	Requests uint64
	ProbSum  float64
}

// DailyRow counts requests per UTC day
type DailyRow struct {
	Day      string
	Requests uint64
	MeanProb float64
}

type queries struct{ ch store.Clickhouse }

// NewCH returns the clickhouse repo
func NewCH(ch store.Clickhouse) Repo {
	if ch == nil {
		panic("stats repo requires a clickhouse client")
	}
	return &queries{ch: ch}
}

func (r *queries) Migrate(ctx context.Context) error { return r.ch.Exec(ctx, Schema) }

func (r *queries) Insert(ctx context.Context, rows []EventRow) error {
	data := make([][]any, 0, len(rows))
	for _, e := range rows {
		data = append(data, []any{
			e.TS, e.Kind, e.CharCount, e.Paragraphs, e.Probability, e.Label, e.Tier, e.LatencyMs, e.Client, e.Lang,
		})
	}
	return r.ch.Insert(ctx, Table, data)
}

func (r *queries) Breakdown(ctx context.Context, since time.Time) ([]BreakdownRow, error) {
	const sql = `
select kind, label, tier, lang, count() as requests, sum(probability) as prob_sum
from scoring_events
where ts >= ?
group by kind, label, tier, lang
order by kind, label, tier, lang
`
	rows, err := r.ch.Query(ctx, sql, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BreakdownRow
	for rows.Next() {
		var rr BreakdownRow
		if err := rows.Scan(&rr.Kind, &rr.Label, &rr.Tier, &rr.Lang, &rr.Requests, &rr.ProbSum); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Daily(ctx context.Context, since time.Time) ([]DailyRow, error) {
	const sql = `
select toString(toDate(ts)) as day, count() as requests, avg(probability) as mean_probability
from scoring_events
where ts >= ?
group by day
order by day
`
	rows, err := r.ch.Query(ctx, sql, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DailyRow
	for rows.Next() {
		var rr DailyRow
		if err := rows.Scan(&rr.Day, &rr.Requests, &rr.MeanProb); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
