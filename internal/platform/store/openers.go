package store

import (
	"context"
	"fmt"
	"time"

	"aidetect/internal/platform/logger"
	"aidetect/internal/platform/resilience"
	chx "aidetect/internal/platform/store/ch"
	"aidetect/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
)

// openPG builds the pool, then pings until the database answers or retries run out
func openPG(ctx context.Context, c PGConfig, log logger.Logger) (TxRunner, error) {
	var tracer pgx.QueryTracer
	if c.LogSQL {
		tracer = pg.NewQueryLog(log, time.Duration(c.SlowQueryMs)*time.Millisecond)
	}
	pool, err := pg.Open(ctx, pg.Config{URL: c.URL, MaxConns: c.MaxConns, AppName: c.AppName}, tracer)
	if err != nil {
		return nil, err
	}

	pingTimeout := c.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	policy := resilience.RetryPolicy{Attempts: c.ConnectRetries, Base: 150 * time.Millisecond, Max: 2 * time.Second}
	if policy.Attempts <= 0 {
		policy.Attempts = 20
	}
	onRetry := func(attempt int, err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("postgres not ready")
	}
	err = resilience.Retry(ctx, policy, onRetry, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return pool.Ping(ctx)
	})
	if err != nil {
		pool.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", policy.Attempts, err)
	}
	return newPGAdapter(pool), nil
}

func openCH(ctx context.Context, c CHConfig) (Clickhouse, error) {
	client, err := chx.Open(ctx, chx.Config{
		URL:          c.URL,
		Role:         c.Role,
		Tag:          c.Tag,
		DialTimeout:  c.DialTimeout,
		MaxOpenConns: c.MaxOpenConns,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(client), nil
}
