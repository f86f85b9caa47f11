// Package module wires health and meta endpoints into the API
package module

import (
	"time"

	"aidetect/internal/core/version"
	modkit "aidetect/internal/modkit"
	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/platform/store"
	metahttp "aidetect/internal/services/api/meta/http"
)

// Module mounts /health at the API root and the rest under /meta
type Module struct {
	modkit.Base
	hd metahttp.Deps
}

// New constructs the meta module; every store is optional
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	hd := metahttp.Deps{ServiceName: version.Service, StartedAt: time.Now()}
	// typed nils must not reach the handlers as non nil interfaces
	if deps.Model != nil {
		hd.Model = deps.Model
	}
	if deps.PG != nil {
		hd.Stores = append(hd.Stores, store.ProbeOf("pg", deps.PG))
	}
	if deps.CH != nil {
		hd.Stores = append(hd.Stores, store.ProbeOf("ch", deps.CH))
	}
	return &Module{Base: b, hd: hd}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.MountRoot(r, func(rr httpkit.Router) { metahttp.RegisterHealth(rr, m.hd) })
	m.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.hd) })
}

// MountPlainRoutes mounts the unwrapped /health for the /api surface
func (m *Module) MountPlainRoutes(r httpkit.Router) {
	m.MountRoot(r, func(rr httpkit.Router) { metahttp.RegisterPlainHealth(rr, m.hd) })
}

// Ports is nil; meta exports nothing
func (m *Module) Ports() any { return nil }
