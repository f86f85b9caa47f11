// Package pg opens the pgx pool behind the history store
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the subset of pool settings the service exposes
type Config struct {
	URL      string
	MaxConns int32
	// AppName shows up as application_name in pg_stat_activity
	AppName string
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and builds a pool; tracer may be nil
// The pool connects lazily, so a nil error says nothing about reachability
func Open(ctx context.Context, cfg Config, tracer pgx.QueryTracer) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if tracer != nil {
		pc.ConnConfig.Tracer = tracer
	}
	return newPool(ctx, pc)
}
