package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aidetect/internal/platform/testkit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = pc
		return nil, errors.New("no database in unit tests")
	})

	ql := NewQueryLog(zerolog.Nop(), 0)
	cfg := Config{URL: "postgres://aidetect:pw@db:5432/aidetect?sslmode=disable", MaxConns: 7, AppName: "aidetect-api"}
	if _, err := Open(context.Background(), cfg, ql); err == nil {
		t.Fatal("pool error should surface")
	}
	if seen.MaxConns != 7 || seen.ConnConfig.RuntimeParams["application_name"] != "aidetect-api" || seen.ConnConfig.Tracer != ql {
		t.Fatalf("pool config = %+v", seen)
	}
}

type line struct {
	Level string `json:"level"`
	SQL   string `json:"sql"`
	Rows  int64  `json:"rows"`
	Args  int    `json:"args"`
	Slow  bool   `json:"slow"`
	Error string `json:"error"`
}

func TestQueryLog(t *testing.T) {
	tests := []struct {
		name string
		took time.Duration
		err  error
		want line
	}{
		{name: "fast", took: time.Millisecond, want: line{Level: "debug", Rows: 3}},
		{name: "slow", took: time.Second, want: line{Level: "warn", Rows: 3, Slow: true}},
		{name: "failed", took: time.Second, err: errors.New("relation missing"), want: line{Level: "error", Rows: 3, Error: "relation missing"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ql := NewQueryLog(zerolog.New(&buf).Level(zerolog.ErrorLevel), 500*time.Millisecond)
			clock := time.Unix(0, 0)
			ql.now = func() time.Time { return clock }

			ctx := ql.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "DELETE\n  FROM history", Args: []any{1, "x"}})
			clock = clock.Add(tc.took)
			ql.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("DELETE 3"), Err: tc.err})

			var got line
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
				t.Fatalf("decode %q: %v", buf.String(), err)
			}
			tc.want.SQL, tc.want.Args = "DELETE FROM history", 2
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestQueryLog_EndWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	NewQueryLog(zerolog.New(&buf), 0).TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
