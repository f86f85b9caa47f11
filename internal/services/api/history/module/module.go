// Package module wires analysis history into the API using modkit
package module

import (
	"context"

	modkit "aidetect/internal/modkit"
	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/modkit/repokit"
	"aidetect/internal/platform/logger"
	historyhttp "aidetect/internal/services/api/history/http"
	historyrepo "aidetect/internal/services/api/history/repo"
	historysvc "aidetect/internal/services/api/history/service"
)

// Module serves /history backed by Postgres
type Module struct {
	modkit.Base
	ports Ports
	svc   historysvc.Service
}

// Migrate creates the history schema when CORE_HISTORY_AUTO_MIGRATE is on, the default
func Migrate(ctx context.Context, deps modkit.Deps) error {
	if !deps.HasPG() || !deps.Cfg.Prefix("CORE_HISTORY_").MayBool("AUTO_MIGRATE", true) {
		return nil
	}
	if err := repokit.Migrate(ctx, deps.PG, historyrepo.Schema...); err != nil {
		return err
	}
	logger.Named("history").Info().Int("statements", len(historyrepo.Schema)).Msg("history schema ready")
	return nil
}

// New constructs the history module; deps.PG is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if deps.PG == nil {
		panic("history module requires deps.PG")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("history"), modkit.WithPrefix("/history")}, opts...)...)
	svc := historysvc.New(deps.PG, historyrepo.NewPG(), historysvc.Options{})
	return &Module{
		Base: b,
		svc:  svc,
		ports: Ports{
			Service:  adaptHistoryPort{svc: svc},
			Recorder: recorder{svc: svc},
		},
	}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Docs().Add(historyhttp.Docs(m.Prefix()))
	m.Mount(r, func(rr httpkit.Router) { historyhttp.Register(rr, m.svc) })
}
