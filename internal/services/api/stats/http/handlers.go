// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/platform/net/http/bind"
	"aidetect/internal/services/api/stats/domain"
	svc "aidetect/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// totals by label, tier, kind and day
	httpkit.Get(r, "/summary", h.summary)
}

type handlers struct{ svc svc.Service }

// GET /stats/summary - scoring totals over the last n days
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseQuery(r, domain.SummaryInput{Days: domain.DefaultDays})
	if err != nil {
		return nil, err
	}
	return h.svc.Summary(r.Context(), in)
}
