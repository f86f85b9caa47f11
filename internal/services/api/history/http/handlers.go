// Package http provides http transport for analysis history
package http

import (
	stdhttp "net/http"

	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/platform/net/http/bind"
	"aidetect/internal/services/api/history/domain"
	svc "aidetect/internal/services/api/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Delete(r, "/", h.clear)
}

type handlers struct{ svc svc.Service }

// GET /history - recent scoring requests, newest first
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseQuery(r, domain.ListInput{Limit: domain.DefaultLimit})
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in)
}

// DELETE /history - delete all history entries
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	return h.svc.Clear(r.Context())
}
