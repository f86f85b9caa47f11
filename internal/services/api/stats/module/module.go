// Package module wires scoring stats into the API using modkit
package module

import (
	"context"

	modkit "aidetect/internal/modkit"
	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/platform/logger"
	statshttp "aidetect/internal/services/api/stats/http"
	statsrepo "aidetect/internal/services/api/stats/repo"
	statssvc "aidetect/internal/services/api/stats/service"
)

// Module serves /stats backed by ClickHouse
type Module struct {
	modkit.Base
	ports Ports
	svc   statssvc.Service
}

// Migrate creates the events table when CORE_STATS_AUTO_MIGRATE is on, the default
func Migrate(ctx context.Context, deps modkit.Deps) error {
	if !deps.HasCH() || !deps.Cfg.Prefix("CORE_STATS_").MayBool("AUTO_MIGRATE", true) {
		return nil
	}
	if err := statsrepo.NewCH(deps.CH).Migrate(ctx); err != nil {
		return err
	}
	logger.Named("stats").Info().Str("table", statsrepo.Table).Msg("stats schema ready")
	return nil
}

// New constructs the stats module; deps.CH is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if deps.CH == nil {
		panic("stats module requires deps.CH")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)...)
	svc := statssvc.New(statsrepo.NewCH(deps.CH), nil)
	return &Module{
		Base: b,
		svc:  svc,
		ports: Ports{
			Service:  adaptStatsPort{svc: svc},
			Recorder: recorder{svc: svc},
		},
	}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Docs().Add(statshttp.Docs(m.Prefix()))
	m.Mount(r, func(rr httpkit.Router) { statshttp.Register(rr, m.svc) })
}
