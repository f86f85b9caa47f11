package httpkit

import (
	"net/http"
	"path"
	"sort"
	"sync"

	"aidetect/internal/platform/net/middleware"

	phttp "aidetect/internal/platform/net/http"
)

var (
	securedMu    sync.Mutex
	securedPaths = map[string]struct{}{}
)

// Protected groups routes under auth and records them so startup can report what is gated
// a nil port leaves the routes open
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		if p != nil {
			gr.Use(Auth(p))
		}
		fn(&securedRouter{Router: gr, base: "/"})
	})
}

// SecuredRoutes lists "METHOD /path" entries registered through Protected, sorted
func SecuredRoutes() []string {
	securedMu.Lock()
	defer securedMu.Unlock()
	out := make([]string, 0, len(securedPaths))
	for k := range securedPaths {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// securedRouter records every route it registers relative to the Protected group
type securedRouter struct {
	Router
	base string
}

func (s *securedRouter) mark(method, p string) {
	securedMu.Lock()
	securedPaths[method+" "+path.Join(s.base, p)] = struct{}{}
	securedMu.Unlock()
}

func (s *securedRouter) Route(prefix string, fn func(Router)) {
	s.Router.Route(prefix, func(child Router) {
		fn(&securedRouter{Router: child, base: path.Join(s.base, prefix)})
	})
}

func (s *securedRouter) Group(fn func(Router)) {
	s.Router.Group(func(child Router) { fn(&securedRouter{Router: child, base: s.base}) })
}

func (s *securedRouter) Handle(p string, h http.Handler) {
	s.mark("ANY", p)
	s.Router.Handle(p, h)
}

func (s *securedRouter) Get(p string, h phttp.Handler) {
	s.mark(http.MethodGet, p)
	s.Router.Get(p, h)
}

func (s *securedRouter) Post(p string, h phttp.Handler) {
	s.mark(http.MethodPost, p)
	s.Router.Post(p, h)
}

func (s *securedRouter) Delete(p string, h phttp.Handler) {
	s.mark(http.MethodDelete, p)
	s.Router.Delete(p, h)
}
