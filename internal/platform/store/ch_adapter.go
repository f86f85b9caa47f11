package store

import (
	"context"

	"aidetect/internal/platform/store/ch"
)

// chClient is the part of *ch.CH the adapter forwards to
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// chAdapter only reshapes Query; everything else is the client's own method
type chAdapter struct{ chClient }

var _ Clickhouse = chAdapter{}

func newCHAdapter(c chClient) Clickhouse { return chAdapter{c} }

func (a chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := a.chClient.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{rs}, nil
}

// chRows drops the Close error, which clickhouse-go also returns from Err
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
