package repokit

import (
	"context"
	"strings"
	"testing"
)

func TestMigrate(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	if err := Migrate(context.Background(), rec, "CREATE TABLE a", "CREATE INDEX b"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if rec.txs != 1 || len(rec.stmts) != 2 {
		t.Fatalf("txs=%d stmts=%v", rec.txs, rec.stmts)
	}

	rec = &recorder{failOn: "CREATE INDEX b"}
	err := Migrate(context.Background(), rec, "CREATE TABLE a", "CREATE INDEX b", "CREATE INDEX c")
	if err == nil || !strings.Contains(err.Error(), "step 2") {
		t.Fatalf("err = %v", err)
	}
	if len(rec.stmts) != 2 {
		t.Fatalf("kept going after failure: %v", rec.stmts)
	}
}
