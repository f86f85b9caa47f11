package modkit

import (
	"net/http"

	"aidetect/internal/modkit/swaggerkit"
)

// Option tunes a module at construction
type Option func(*Base)

func WithName(name string) Option { return func(b *Base) { b.name = name } }

// WithPrefix mounts the module under prefix; "" mounts at the API root
func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares appends module scoped middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mws = append(b.mws, mw...) }
}

// WithPorts injects ports another module exports; the receiving module owns type T
func WithPorts[T any](p T) Option { return func(b *Base) { b.in = p } }

// WithDocs hands the module the served OpenAPI document; nil leaves docs off
func WithDocs(d *swaggerkit.Doc) Option { return func(b *Base) { b.docs = d } }
