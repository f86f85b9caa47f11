package httpkit

import (
	"net/http"

	phttp "aidetect/internal/platform/net/http"
)

// fakeRouter records wiring calls without serving anything
type fakeRouter struct {
	prefixes []string
	useCalls int
	routes   []string
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router))                     { fn(f) }
func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) { f.useCalls++ }
func (f *fakeRouter) Handle(p string, _ http.Handler)           { f.routes = append(f.routes, "ANY "+p) }
func (f *fakeRouter) Get(p string, _ phttp.Handler)             { f.routes = append(f.routes, "GET "+p) }
func (f *fakeRouter) Post(p string, _ phttp.Handler)            { f.routes = append(f.routes, "POST "+p) }
func (f *fakeRouter) Delete(p string, _ phttp.Handler)          { f.routes = append(f.routes, "DELETE "+p) }
