// Package module wires analyze into the API using modkit
package module

import (
	modkit "aidetect/internal/modkit"
	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/services/api/analyze/domain"
	analyzehttp "aidetect/internal/services/api/analyze/http"
	analyzesvc "aidetect/internal/services/api/analyze/service"
)

// Ports are the cross module inputs analyze consumes
type Ports struct {
	Recorders []domain.Recorder
}

// Options configure the analyze module
type Options struct {
	MaxTextLength int
}

// FromConfig reads module options from CORE_API_*
func FromConfig(deps modkit.Deps) Options {
	return Options{
		MaxTextLength: deps.Cfg.Prefix("CORE_API_").MayInt("MAX_TEXT_LENGTH", analyzesvc.DefaultMaxTextLength),
	}
}

// Module serves /predict and /analyze-sentences at the API root
type Module struct {
	modkit.Base
	svc analyzesvc.Service
}

// New panics when deps.Model is nil
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	if deps.Model == nil {
		panic("analyze module requires deps.Model")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analyze")}, opts...)...)

	svcOpts := analyzesvc.Options{
		MaxTextLength: o.MaxTextLength,
		Recorders:     modkit.PortsIn[Ports](b).Recorders,
	}
	if deps.Metrics != nil {
		svcOpts.Observer = deps.Metrics
	}
	return &Module{Base: b, svc: analyzesvc.New(deps.Model, svcOpts)}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { analyzehttp.Register(rr, m.svc) })
}

// MountPlainRoutes mounts the unwrapped variants for the /api surface
func (m *Module) MountPlainRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { analyzehttp.RegisterPlain(rr, m.svc) })
}
