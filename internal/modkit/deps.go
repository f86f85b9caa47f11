// Package modkit provides module wiring and core deps
package modkit

import (
	"aidetect/internal/adapters/scoring"
	"aidetect/internal/modkit/repokit"
	"aidetect/internal/platform/config"
	"aidetect/internal/platform/logger"
	"aidetect/internal/platform/metrics"
	"aidetect/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backing store is not configured
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	CH      store.Clickhouse
	Model   *scoring.Backend
	Metrics *metrics.Metrics
}

// HasPG reports whether Postgres backed modules can mount
func (d Deps) HasPG() bool { return d.PG != nil }

// HasCH reports whether ClickHouse backed modules can mount
func (d Deps) HasCH() bool { return d.CH != nil }
