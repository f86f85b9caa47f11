package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aidetect/internal/adapters/scoring"
	phttp "aidetect/internal/platform/net/http"
	"aidetect/internal/platform/store"

	"github.com/go-chi/chi/v5"
)

type stubModel struct {
	ready   bool
	status  scoring.Status
	info    scoring.Info
	breaker string
}

func (s stubModel) Ready() bool            { return s.ready }
func (s stubModel) Status() scoring.Status { return s.status }
func (s stubModel) BreakerState() string   { return s.breaker }
func (s stubModel) GPUAvailable() bool     { return s.info.GPUAvailable }
func (s stubModel) Info() (scoring.Info, bool) {
	return s.info, s.ready
}

func stubProbe(name string, err error) store.Probe {
	return store.Probe{Name: name, Ping: func(context.Context) error { return err }}
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
}

func serve(t *testing.T, d Deps, path string) (int, json.RawMessage) {
	t.Helper()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	RegisterHealth(r, d)
	r.Route("/meta", func(rr phttp.Router) { Register(rr, d) })

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env.Data
}

func readyModel() stubModel {
	return stubModel{
		ready:   true,
		status:  scoring.StatusReady,
		breaker: "closed",
		info:    scoring.Info{ModelName: "m", Device: "cuda", GPUAvailable: true},
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name  string
		model ModelState
		want  HealthResponse
	}{
		{name: "loaded", model: readyModel(), want: HealthResponse{Status: "healthy", ModelLoaded: true, GPUAvailable: true}},
		{name: "loading", model: stubModel{status: scoring.StatusLoading}, want: HealthResponse{Status: "healthy"}},
		{
			name:  "loading on a gpu host",
			model: stubModel{status: scoring.StatusLoading, info: scoring.Info{GPUAvailable: true}},
			want:  HealthResponse{Status: "healthy", GPUAvailable: true},
		},
		{name: "no backend", want: HealthResponse{Status: "healthy"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, data := serve(t, Deps{Model: tc.model}, "/health")
			if code != stdhttp.StatusOK {
				t.Fatalf("health must always be 200, got %d", code)
			}
			var got HealthResponse
			_ = json.Unmarshal(data, &got)
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		deps   Deps
		status int
		checks map[string]string
	}{
		{
			name:   "model ready, no stores",
			deps:   Deps{Model: readyModel()},
			status: stdhttp.StatusOK,
			checks: map[string]string{"model": "ok", "pg": "", "ch": ""},
		},
		{
			name:   "model loading",
			deps:   Deps{Model: stubModel{status: scoring.StatusLoading}},
			status: stdhttp.StatusServiceUnavailable,
			checks: map[string]string{"model": "fail"},
		},
		{
			name:   "pg down",
			deps:   Deps{Model: readyModel(), Stores: []store.Probe{stubProbe("pg", errors.New("refused")), stubProbe("ch", nil)}},
			status: stdhttp.StatusServiceUnavailable,
			checks: map[string]string{"model": "ok", "pg": "fail", "ch": "ok"},
		},
		{
			name:   "store without ping",
			deps:   Deps{Model: readyModel(), Stores: []store.Probe{{Name: "ch"}}},
			status: stdhttp.StatusOK,
			checks: map[string]string{"ch": "unknown"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, data := serve(t, tc.deps, "/meta/ready")
			if code != tc.status {
				t.Fatalf("status %d want %d (%s)", code, tc.status, data)
			}
			var got ReadyResponse
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			seen := map[string]string{}
			for _, c := range got.Checks {
				seen[c.Name] = c.Status
			}
			for name, want := range tc.checks {
				if seen[name] != want {
					t.Fatalf("check %s = %q want %q", name, seen[name], want)
				}
			}
		})
	}
}

func TestServiceUptime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := Deps{ServiceName: "aidetect-api", StartedAt: start, Now: func() time.Time { return start.Add(90 * time.Second) }}
	_, data := serve(t, d, "/meta/service")
	var got ServiceResponse
	_ = json.Unmarshal(data, &got)
	if got.Name != "aidetect-api" || got.Uptime != 90 || got.Started != "2025-01-01T00:00:00Z" {
		t.Fatalf("got %+v", got)
	}
}

func TestModelState(t *testing.T) {
	_, data := serve(t, Deps{Model: readyModel()}, "/meta/model")
	var got ModelResponse
	_ = json.Unmarshal(data, &got)
	if got.State != "ready" || got.Breaker != "closed" || got.Model == nil || got.Model.ModelName != "m" {
		t.Fatalf("got %+v", got)
	}

	_, data = serve(t, Deps{}, "/meta/model")
	got = ModelResponse{}
	_ = json.Unmarshal(data, &got)
	if got.State != scoring.StatusUnloaded.String() || got.Model != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestVersion(t *testing.T) {
	code, data := serve(t, Deps{}, "/meta/version")
	if code != stdhttp.StatusOK || len(data) == 0 {
		t.Fatalf("status %d data %s", code, data)
	}
}

func TestPlainHealth(t *testing.T) {
	mux := chi.NewRouter()
	RegisterPlainHealth(phttp.AdaptChi(mux), Deps{Model: readyModel()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))
	var got HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	if want := (HealthResponse{Status: "healthy", ModelLoaded: true, GPUAvailable: true}); got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
