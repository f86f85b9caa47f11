package store

import (
	"context"
	"errors"
	"testing"

	"aidetect/internal/platform/store/ch"
)

type fakeCHRows struct {
	n      int
	closed bool
}

func (r *fakeCHRows) Next() bool             { r.n--; return r.n >= 0 }
func (r *fakeCHRows) Scan(dest ...any) error { return nil }
func (r *fakeCHRows) Err() error             { return nil }
func (r *fakeCHRows) Close() error           { r.closed = true; return nil }
func (r *fakeCHRows) Columns() []string      { return []string{"day", "requests"} }

type fakeCHClient struct {
	inserted [][]any
	table    string
	execSQL  string
	rows     *fakeCHRows
	err      error
	closed   bool
}

func (f *fakeCHClient) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.inserted = table, rows
	return f.err
}

func (f *fakeCHClient) Exec(_ context.Context, sql string, _ ...any) error {
	f.execSQL = sql
	return f.err
}

func (f *fakeCHClient) Query(context.Context, string, ...any) (ch.Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeCHClient) Ping(context.Context) error { return f.err }
func (f *fakeCHClient) Close() error               { f.closed = true; return nil }

func TestCHAdapter_Forwards(t *testing.T) {
	t.Parallel()

	f := &fakeCHClient{rows: &fakeCHRows{n: 2}}
	a := newCHAdapter(f)
	ctx := context.Background()

	if err := a.Insert(ctx, "analysis_events", [][]any{{"predict", 0.4}}); err != nil || f.table != "analysis_events" || len(f.inserted) != 1 {
		t.Fatalf("Insert err=%v table=%q rows=%v", err, f.table, f.inserted)
	}
	if err := a.Exec(ctx, "CREATE TABLE x"); err != nil || f.execSQL != "CREATE TABLE x" {
		t.Fatalf("Exec err=%v sql=%q", err, f.execSQL)
	}
	if err := a.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	rs, err := a.Query(ctx, "SELECT")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	count := 0
	for rs.Next() {
		count++
	}
	rs.Close()
	if count != 2 || !f.rows.closed || len(rs.Columns()) != 2 {
		t.Fatalf("count=%d closed=%v", count, f.rows.closed)
	}
	if err := a.Close(); err != nil || !f.closed {
		t.Fatalf("Close err=%v closed=%v", err, f.closed)
	}
}

func TestCHAdapter_QueryError(t *testing.T) {
	t.Parallel()

	boom := errors.New("code: 60, table does not exist")
	rs, err := newCHAdapter(&fakeCHClient{err: boom}).Query(context.Background(), "SELECT")
	if !errors.Is(err, boom) || rs != nil {
		t.Fatalf("Query = %v, %v", rs, err)
	}
}
