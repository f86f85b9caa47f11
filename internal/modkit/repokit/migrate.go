package repokit

import (
	"context"
	"fmt"
)

// Migrate applies idempotent DDL statements in one transaction
// statements must be safe to rerun, e.g. CREATE ... IF NOT EXISTS
func Migrate(ctx context.Context, tx TxRunner, stmts ...string) error {
	return WithTx(ctx, tx, func(q Queryer) error {
		for i, s := range stmts {
			if _, err := q.Exec(ctx, s); err != nil {
				return fmt.Errorf("migrate step %d: %w", i+1, err)
			}
		}
		return nil
	})
}
