// Package service contains analysis history workflows
package service

import (
	"context"
	"time"

	"aidetect/internal/core/verdict"
	"aidetect/internal/modkit/repokit"
	perr "aidetect/internal/platform/errors"
	"aidetect/internal/services/api/history/domain"
	"aidetect/internal/services/api/history/repo"

	"github.com/google/uuid"
)

// DefaultClearTimeout bounds the server side delete
const DefaultClearTimeout = 10 * time.Second

// Service defines the history service contract
type Service interface {
	domain.ServicePort
}

// Options tune the service
type Options struct {
	ClearTimeout time.Duration
	Now          func() time.Time
	NewID        func() uuid.UUID
}

// Svc implements the history service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	opts   Options
}

// New constructs a history service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], o Options) *Svc {
	if db == nil {
		panic("history.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	if o.ClearTimeout <= 0 {
		o.ClearTimeout = DefaultClearTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.New
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db, opts: o}
}

// Add stores e under a fresh id and returns the stored entry
func (s *Svc) Add(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	if e.Kind == "" {
		return domain.Entry{}, perr.InvalidArgf("history entry requires a kind")
	}
	e.ID = s.opts.NewID().String()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.opts.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	err := s.Repo.Insert(ctx, repo.Row{
		ID:               e.ID,
		Kind:             e.Kind,
		Preview:          e.Preview,
		CharCount:        e.CharCount,
		Probability:      e.Probability,
		Label:            e.Label,
		Tier:             e.Tier,
		Paragraphs:       e.Paragraphs,
		ParagraphAverage: e.ParagraphAverage,
		Client:           e.Client,
		CreatedAt:        e.CreatedAt,
	})
	if err != nil {
		return domain.Entry{}, dbErr(err, "history insert")
	}
	return e, nil
}

// List returns the most recent entries, newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	limit := in.Limit
	if limit == 0 {
		limit = domain.DefaultLimit
	}
	if limit < 1 || limit > domain.MaxLimit {
		return domain.ListResult{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "limit must be between 1 and %d", domain.MaxLimit), "limit")
	}

	rows, err := s.Repo.List(ctx, limit)
	if err != nil {
		return domain.ListResult{}, dbErr(err, "history list")
	}
	out := make([]domain.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Entry{
			ID:               r.ID,
			Kind:             r.Kind,
			Preview:          r.Preview,
			CharCount:        r.CharCount,
			Probability:      verdict.Round(r.Probability),
			Label:            r.Label,
			Tier:             r.Tier,
			Paragraphs:       r.Paragraphs,
			ParagraphAverage: verdict.Round(r.ParagraphAverage),
			Client:           r.Client,
			CreatedAt:        r.CreatedAt.UTC(),
		})
	}
	return domain.ListResult{Items: out, Count: len(out)}, nil
}

// Clear deletes every entry in one bounded transaction
func (s *Svc) Clear(ctx context.Context) (domain.ClearResult, error) {
	var n int64
	tx := repokit.WithBeginHooks(s.db, repokit.StatementTimeout(s.opts.ClearTimeout))
	err := repokit.WithTx(ctx, tx, func(q repokit.Queryer) error {
		var err error
		n, err = s.binder.Bind(q).Clear(ctx)
		return err
	})
	if err != nil {
		return domain.ClearResult{}, dbErr(err, "history clear")
	}
	return domain.ClearResult{Deleted: n}, nil
}

// dbErr maps driver failures onto perr codes
func dbErr(err error, op string) error {
	msg := "history store failed"
	if perr.IsDuplicateKey(err) {
		msg = "duplicate history id"
	}
	return perr.WithOp(perr.FromPostgres(err, msg), op)
}
