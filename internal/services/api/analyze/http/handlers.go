// Package http provides http transport for analyze
package http

import (
	stdhttp "net/http"

	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/services/api/analyze/domain"
	svc "aidetect/internal/services/api/analyze/service"
)

// Register mounts the scoring endpoints answering inside the envelope
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// single text verdict
	httpkit.PostJSON[domain.TextInput](r, "/predict", h.predict, httpkit.Lenient)

	// whole document plus per paragraph scores
	httpkit.PostJSON[domain.TextInput](r, "/analyze-sentences", h.analyze, httpkit.Lenient)
}

// RegisterPlain mounts the same endpoints answering with the bare payload
func RegisterPlain(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostPlain[domain.TextInput](r, "/predict", h.predict, httpkit.Lenient)
	httpkit.PostPlain[domain.TextInput](r, "/analyze-sentences", h.analyze, httpkit.Lenient)
}

type handlers struct{ svc svc.Service }

// POST /predict - score a text
func (h *handlers) predict(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Predict(r.Context(), in)
}

// POST /analyze-sentences - score a document and each of its paragraphs
func (h *handlers) analyze(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}
