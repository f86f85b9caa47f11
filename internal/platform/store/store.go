// Package store opens the optional Postgres and ClickHouse backends behind small seams
package store

import (
	"context"
	"errors"

	"aidetect/internal/platform/logger"
)

// Store holds whichever backends were configured; a nil field means disabled
type Store struct {
	Log logger.Logger
	PG  TxRunner
	CH  Clickhouse
}

// Row is a single scanned result
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the statement surface of a pool or transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also scope fn to a transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam used by the stats module
type Clickhouse interface {
	// Insert sends rows to table as one batch, values in column order
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// Pinger reports backend reachability
type Pinger interface{ Ping(context.Context) error }

// Probe names a readiness check; a nil Ping means the backend cannot be probed
type Probe struct {
	Name string
	Ping func(context.Context) error
}

// ProbeOf builds a Probe for v, which may be nil or may not implement Pinger
func ProbeOf(name string, v any) Probe {
	p := Probe{Name: name}
	if pg, ok := v.(Pinger); ok {
		p.Ping = pg.Ping
	}
	return p
}

// Open dials every enabled backend; on failure anything already opened is closed
func Open(ctx context.Context, cfg Config, log logger.Logger) (*Store, error) {
	s := &Store{Log: log}
	if cfg.PG.Enabled {
		pg, err := openPG(ctx, cfg.PG, log)
		if err != nil {
			return nil, err
		}
		s.PG = pg
	}
	if cfg.CH.Enabled {
		ch, err := openCH(ctx, cfg.CH)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.CH = ch
	}
	return s, nil
}

// Probes lists a check per configured backend
func (s *Store) Probes() []Probe {
	var out []Probe
	if s == nil {
		return out
	}
	if s.PG != nil {
		out = append(out, ProbeOf("pg", s.PG))
	}
	if s.CH != nil {
		out = append(out, ProbeOf("ch", s.CH))
	}
	return out
}

// Close releases every open backend and joins their errors
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
