package pg

import (
	"context"
	"strings"
	"time"

	"aidetect/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// QueryLog is a pgx.QueryTracer writing one log line per statement
// Statements at or above Slow log at warn; Slow <= 0 never does
type QueryLog struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*QueryLog)(nil)

// NewQueryLog logs at debug and above regardless of the root level
func NewQueryLog(l logger.Logger, slow time.Duration) *QueryLog {
	return &QueryLog{
		log:  l.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

type startKey struct{}

type started struct {
	at   time.Time
	sql  string
	args []any
}

func (q *QueryLog) TraceQueryStart(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, startKey{}, started{at: q.now(), sql: d.SQL, args: d.Args})
}

func (q *QueryLog) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryEndData) {
	s, ok := ctx.Value(startKey{}).(started)
	if !ok {
		return
	}
	took := q.now().Sub(s.at)
	evt := q.log.Debug()
	switch {
	case d.Err != nil:
		evt = q.log.Error().Err(d.Err)
	case q.slow > 0 && took >= q.slow:
		evt = q.log.Warn().Bool("slow", true)
	}
	evt.Str("sql", oneLine(s.sql)).
		Int("args", len(s.args)).
		Int64("rows", d.CommandTag.RowsAffected()).
		Dur("took", took).
		Msg("pg query")
}

// oneLine collapses whitespace runs so multi line statements log on one line
func oneLine(s string) string { return strings.Join(strings.Fields(s), " ") }
