// Package httpkit is the routing vocabulary modules use; they never import the
// platform http package or chi directly
package httpkit

import (
	"net/http"
	"strings"

	phttp "aidetect/internal/platform/net/http"
	"aidetect/internal/platform/net/http/bind"
)

type (
	Router      = phttp.Router
	Envelope    = phttp.Envelope
	Response    = phttp.Response
	JSONOptions = bind.JSONOptions
)

// Lenient body decoding ignores unknown fields
var Lenient = bind.LenientJSONOptions

// PostJSON mounts a POST handler that binds and validates a T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, phttp.JSONHandler(h, opts...))
}

// PostPlain is PostJSON answering with the bare result instead of the envelope
func PostPlain[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, phttp.PlainJSONHandler(h, opts...))
}

// Get mounts a body-less GET handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBodyHandler(h))
}

// GetPlain is Get answering with the bare result
func GetPlain(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.PlainHandler(h))
}

// Delete mounts a body-less DELETE handler
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.NoBodyHandler(h))
}

// MountAPI scopes mw and the routes registered by mount under /api/{version}
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIRoot scopes mw and the routes registered by mount under the unversioned /api
func MountAPIRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api", func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
