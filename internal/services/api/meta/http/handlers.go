// Package http provides health and meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"aidetect/internal/adapters/scoring"
	"aidetect/internal/core/version"
	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/platform/store"

	"golang.org/x/sync/errgroup"
)

// ModelState is the read side of the scoring backend lifecycle
type ModelState interface {
	Ready() bool
	Status() scoring.Status
	Info() (scoring.Info, bool)
	GPUAvailable() bool
	BreakerState() string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Model       ModelState
	// Stores are probed by /meta/ready; unconfigured stores are absent
	Stores []store.Probe
	Now    func() time.Time
}

type handlers struct {
	deps Deps
}

// RegisterHealth mounts the liveness route used by the frontend and load balancers
func RegisterHealth(r httpkit.Router, d Deps) {
	h := newHandlers(d)
	httpkit.Get(r, "/health", h.health)
}

// RegisterPlainHealth mounts /health answering with the bare payload
func RegisterPlainHealth(r httpkit.Router, d Deps) {
	h := newHandlers(d)
	httpkit.GetPlain(r, "/health", h.health)
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := newHandlers(d)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/model", h.model)
}

func newHandlers(d Deps) *handlers {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &handlers{deps: d}
}

// HealthResponse is the health payload
type HealthResponse struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	GPUAvailable bool   `json:"gpu_available"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail unknown
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// ModelResponse reports the scoring backend state and loaded model
type ModelResponse struct {
	State   string        `json:"state"`
	Breaker string        `json:"breaker"`
	Model   *scoring.Info `json:"model,omitempty"`
}

// GET /health - liveness with model state
func (h *handlers) health(_ *http.Request) (any, error) {
	out := HealthResponse{Status: "healthy"}
	if h.deps.Model == nil {
		return out, nil
	}
	out.ModelLoaded = h.deps.Model.Ready()
	out.GPUAvailable = h.deps.Model.GPUAvailable()
	return out, nil
}

// GET /meta/ready - readiness probe with model and store checks
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := make([]ReadyCheck, 1+len(h.deps.Stores))
	checks[0] = h.modelCheck()
	var g errgroup.Group
	for i, p := range h.deps.Stores {
		g.Go(func() error {
			checks[i+1] = probe(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	out := ReadyResponse{Status: "ok", Checks: checks, Now: h.deps.Now().UTC().Format(time.RFC3339)}
	for _, c := range checks {
		if c.Status == "fail" {
			out.Status = "fail"
			return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
		}
	}
	return out, nil
}

func (h *handlers) modelCheck() ReadyCheck {
	switch {
	case h.deps.Model == nil:
		return ReadyCheck{Name: "model", Status: "fail", Error: "no model backend"}
	case !h.deps.Model.Ready():
		return ReadyCheck{Name: "model", Status: "fail", Error: "model state " + h.deps.Model.Status().String()}
	}
	return ReadyCheck{Name: "model", Status: "ok"}
}

func probe(ctx stdctx.Context, p store.Probe) ReadyCheck {
	if p.Ping == nil {
		return ReadyCheck{Name: p.Name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: p.Name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: p.Name, Status: "ok"}
}

// GET /meta/version - build and version info
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// GET /meta/service - service info and uptime
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// GET /meta/model - scoring backend state and loaded model
func (h *handlers) model(_ *http.Request) (any, error) {
	if h.deps.Model == nil {
		return ModelResponse{State: scoring.StatusUnloaded.String(), Breaker: "disabled"}, nil
	}
	out := ModelResponse{
		State:   h.deps.Model.Status().String(),
		Breaker: h.deps.Model.BreakerState(),
	}
	if info, ok := h.deps.Model.Info(); ok {
		out.Model = &info
	}
	return out, nil
}
