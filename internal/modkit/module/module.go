// Package module holds the module contract and the registry the API composes modules with
package module

import (
	"reflect"

	phttp "aidetect/internal/platform/net/http"
)

// Module is what every API module exposes to the composition root
type Module interface {
	MountRoutes(r phttp.Router)
	// Ports returns the module's exported port set, or nil
	Ports() any
	Name() string
}

// PortsOf finds a T in m.Ports(): the value itself or one of its exported struct fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// Registry keeps the modules of one API composition in mount order
type Registry struct {
	mods   []Module
	byName map[string]Module
}

func NewRegistry() *Registry { return &Registry{byName: map[string]Module{}} }

// Add appends modules; a repeated name panics since routes would collide
func (r *Registry) Add(ms ...Module) {
	for _, m := range ms {
		if _, dup := r.byName[m.Name()]; dup {
			panic("module: " + m.Name() + " registered twice")
		}
		r.byName[m.Name()] = m
		r.mods = append(r.mods, m)
	}
}

// Modules returns the registered modules in the order they were added
func (r *Registry) Modules() []Module { return append([]Module(nil), r.mods...) }

func (r *Registry) Names() []string {
	out := make([]string, len(r.mods))
	for i, m := range r.mods {
		out[i] = m.Name()
	}
	return out
}

// Collect gathers every port of type T the registered modules export, in module order
func Collect[T any](r *Registry) []T {
	var out []T
	for _, m := range r.mods {
		if v, ok := PortsOf[T](m); ok {
			out = append(out, v)
		}
	}
	return out
}
