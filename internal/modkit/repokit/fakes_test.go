package repokit

import (
	"context"
	"errors"

	"aidetect/internal/platform/store"
)

type okTag struct{}

func (okTag) String() string      { return "OK" }
func (okTag) RowsAffected() int64 { return 0 }

// recorder is a TxRunner that logs statements and optionally fails one
type recorder struct {
	stmts  []string
	txs    int
	failOn string
}

func (r *recorder) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	r.stmts = append(r.stmts, sql)
	if sql == r.failOn {
		return nil, errors.New("exec failed")
	}
	return okTag{}, nil
}

func (r *recorder) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (r *recorder) QueryRow(context.Context, string, ...any) store.Row        { return nil }

func (r *recorder) Tx(_ context.Context, fn func(q Queryer) error) error {
	r.txs++
	return fn(r)
}
