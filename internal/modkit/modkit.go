// Package modkit builds API modules from shared deps and functional options
package modkit

import (
	"net/http"

	"aidetect/internal/modkit/module"
	"aidetect/internal/modkit/swaggerkit"
	phttp "aidetect/internal/platform/net/http"
	str "aidetect/internal/platform/strings"
)

// Module is the contract the API composition root mounts
type Module = module.Module

// Base is the option driven state every module embeds
// It supplies Name and route mounting; modules add MountRoutes and Ports
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	in     any
	docs   *swaggerkit.Doc
}

// Build applies opts in order; later options win
// Modules pass their defaults first and caller options after
func Build(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name panics when no WithName option was applied
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix is "" for modules that mount at the API root
func (b Base) Prefix() string {
	if b.prefix == "" {
		return ""
	}
	return str.MustPrefix(b.prefix)
}

// Docs is the OpenAPI document the module extends, nil when docs are off
func (b Base) Docs() *swaggerkit.Doc { return b.docs }

// Mount registers routes under the module prefix with the module middlewares applied
func (b Base) Mount(r phttp.Router, register func(phttp.Router)) {
	scoped := func(rr phttp.Router) {
		for _, mw := range b.mws {
			rr.Use(mw)
		}
		register(rr)
	}
	if p := b.Prefix(); p != "" {
		r.Route(p, scoped)
		return
	}
	r.Group(scoped)
}

// MountRoot is Mount ignoring the prefix, for routes that live at the API root
func (b Base) MountRoot(r phttp.Router, register func(phttp.Router)) {
	Build(WithMiddlewares(b.mws...)).Mount(r, register)
}

// PortsIn returns the cross module ports injected with WithPorts, or the zero T
func PortsIn[T any](b Base) T {
	v, _ := b.in.(T)
	return v
}
