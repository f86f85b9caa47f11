package repokit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithBeginHooks_RunsHooksBeforeFn(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	tx := WithBeginHooks(rec, StatementTimeout(1500*time.Millisecond))

	err := WithTx(context.Background(), tx, func(q Queryer) error {
		_, err := q.Exec(context.Background(), "DELETE FROM analysis_history")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	want := []string{"SET LOCAL statement_timeout = 1500", "DELETE FROM analysis_history"}
	if len(rec.stmts) != 2 || rec.stmts[0] != want[0] || rec.stmts[1] != want[1] {
		t.Fatalf("stmts = %q", rec.stmts)
	}
}

func TestWithBeginHooks_HookErrorSkipsFn(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	called := false
	tx := WithBeginHooks(&recorder{}, func(context.Context, Queryer) error { return boom })
	err := tx.Tx(context.Background(), func(Queryer) error { called = true; return nil })
	if !errors.Is(err, boom) || called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}

func TestWithBeginHooks_NoHooksReturnsInner(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	if got := WithBeginHooks(rec); got != TxRunner(rec) {
		t.Fatalf("expected inner runner back")
	}
}

func TestStatementTimeout_ZeroIsNoop(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	if err := StatementTimeout(0)(context.Background(), rec); err != nil || len(rec.stmts) != 0 {
		t.Fatalf("err=%v stmts=%v", err, rec.stmts)
	}
}

func TestHookedTx_DelegatesPlainStatements(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	tx := WithBeginHooks(rec, StatementTimeout(time.Second))
	if _, err := tx.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if rec.txs != 0 || len(rec.stmts) != 1 {
		t.Fatalf("txs=%d stmts=%v", rec.txs, rec.stmts)
	}
}
