package store

import (
	"context"
	"fmt"
)

// ExecN runs a write and reports how many rows it touched
func ExecN(ctx context.Context, q RowQuerier, sql string, args ...any) (int64, error) {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExecOne fails unless the write touched exactly one row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	switch n, err := ExecN(ctx, q, sql, args...); {
	case err != nil:
		return err
	case n != 1:
		return fmt.Errorf("store: %d rows affected, want 1", n)
	}
	return nil
}

// Many scans every row of the result with scan, closing the rows either way
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
