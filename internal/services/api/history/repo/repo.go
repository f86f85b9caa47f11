// Package repo provides postgres access for analysis history
package repo

import (
	"context"
	"time"

	"aidetect/internal/modkit/repokit"
	"aidetect/internal/platform/store"
)

// Repo is the minimal persistence surface for history
type Repo interface {
	Insert(ctx context.Context, r Row) error
	List(ctx context.Context, limit int) ([]Row, error)
	Clear(ctx context.Context) (int64, error)
}

// Row mirrors one analysis_history record
type Row struct {
	ID               string
	Kind             string
	Preview          string
	CharCount        int
	Probability      float64
	Label            string
	Tier             string
	Paragraphs       int
	ParagraphAverage float64
	Client           string
	CreatedAt        time.Time
}

// Schema creates the history table; every statement is rerunnable
var Schema = []string{
	`create table if not exists analysis_history (
	id uuid primary key,
	kind text not null check (kind in ('predict', 'analyze')),
	preview text not null,
	char_count integer not null,
	probability double precision not null,
	label text not null,
	tier text not null,
	paragraphs integer not null default 0,
	paragraph_average double precision not null default 0,
	client text not null default '',
	created_at timestamptz not null default now()
)`,
	`create index if not exists analysis_history_created_at_idx on analysis_history (created_at desc)`,
}

type (
	// PG binds the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into analysis_history
	(id, kind, preview, char_count, probability, label, tier, paragraphs, paragraph_average, client, created_at)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	return store.ExecOne(ctx, r.q, sql,
		row.ID, row.Kind, row.Preview, row.CharCount, row.Probability, row.Label, row.Tier,
		row.Paragraphs, row.ParagraphAverage, row.Client, row.CreatedAt)
}

func (r *queries) List(ctx context.Context, limit int) ([]Row, error) {
	const sql = `
select id::text, kind, preview, char_count, probability, label, tier, paragraphs, paragraph_average, client, created_at
from analysis_history
order by created_at desc, id desc
limit $1
`
	return store.Many(ctx, r.q, scanRow, sql, limit)
}

func (r *queries) Clear(ctx context.Context) (int64, error) {
	return store.ExecN(ctx, r.q, `delete from analysis_history`)
}

func scanRow(s store.Row) (Row, error) {
	var out Row
	err := s.Scan(&out.ID, &out.Kind, &out.Preview, &out.CharCount, &out.Probability, &out.Label,
		&out.Tier, &out.Paragraphs, &out.ParagraphAverage, &out.Client, &out.CreatedAt)
	return out, err
}
