package httpmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	perr "aidetect/internal/platform/errors"
)

type fakeServer struct {
	ready     atomic.Bool
	loadCalls atomic.Int32
	lastLoad  LoadRequest
	lastScore ScoreRequest
	scoreCode int
	scores    func(texts []string) []float64
}

func (f *fakeServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Health{Status: "ok", Ready: f.ready.Load(), GPUAvailable: true, Device: "cuda:0"})
	})
	mux.HandleFunc("POST /load", func(w http.ResponseWriter, r *http.Request) {
		f.loadCalls.Add(1)
		if err := json.NewDecoder(r.Body).Decode(&f.lastLoad); err != nil {
			t.Errorf("decode load: %v", err)
		}
		f.ready.Store(true)
		_ = json.NewEncoder(w).Encode(LoadResponse{Loaded: true, ModelName: f.lastLoad.ModelName, Device: "cuda:0", GPUAvailable: true})
	})
	mux.HandleFunc("POST /score", func(w http.ResponseWriter, r *http.Request) {
		if f.scoreCode != 0 {
			http.Error(w, "boom", f.scoreCode)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&f.lastScore); err != nil {
			t.Errorf("decode score: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ScoreResponse{Probabilities: f.scores(f.lastScore.Texts)})
	})
	return mux
}

func constScores(p float64) func([]string) []float64 {
	return func(texts []string) []float64 {
		out := make([]float64, len(texts))
		for i := range out {
			out[i] = p
		}
		return out
	}
}

func TestClient_LoadSendsConfig(t *testing.T) {
	fs := &fakeServer{scores: constScores(0.5)}
	srv := httptest.NewServer(fs.handler(t))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL + "/", ModelName: "kanana", AdapterPath: "/models/lora", MaxLength: 1024})
	info, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fs.loadCalls.Load() != 1 {
		t.Fatalf("load calls = %d", fs.loadCalls.Load())
	}
	if fs.lastLoad.ModelName != "kanana" || fs.lastLoad.AdapterPath != "/models/lora" || fs.lastLoad.Quantization != "nf4" || fs.lastLoad.MaxLength != 1024 {
		t.Fatalf("load request = %+v", fs.lastLoad)
	}
	if !info.GPUAvailable || info.Device != "cuda:0" || info.LoadedAt.IsZero() {
		t.Fatalf("info = %+v", info)
	}

	// already ready: no second /load
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if fs.loadCalls.Load() != 1 {
		t.Fatalf("load called again on ready server")
	}
}

func TestClient_ScoreMany(t *testing.T) {
	fs := &fakeServer{scores: func(texts []string) []float64 {
		out := make([]float64, len(texts))
		for i := range texts {
			out[i] = float64(i+1) / 10
		}
		return out
	}}
	srv := httptest.NewServer(fs.handler(t))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, BatchSize: 4, MaxLength: 256})
	got, err := c.ScoreMany(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("ScoreMany: %v", err)
	}
	if len(got) != 3 || got[0] != 0.1 || got[2] != 0.3 {
		t.Fatalf("got %v", got)
	}
	if fs.lastScore.BatchSize != 4 || fs.lastScore.MaxLength != 256 {
		t.Fatalf("score request = %+v", fs.lastScore)
	}

	p, err := c.ScoreOne(context.Background(), "solo")
	if err != nil || p != 0.1 {
		t.Fatalf("ScoreOne = %v, %v", p, err)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   perr.ErrorCode
	}{
		{http.StatusServiceUnavailable, perr.ErrorCodeUnavailable},
		{http.StatusInternalServerError, perr.ErrorCodeUnknown},
		{http.StatusBadRequest, perr.ErrorCodeUnknown},
	}
	for _, tc := range tests {
		fs := &fakeServer{scoreCode: tc.status}
		srv := httptest.NewServer(fs.handler(t))
		c := NewClient(Options{BaseURL: srv.URL})
		_, err := c.ScoreOne(context.Background(), "x")
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: want error", tc.status)
		}
		if !perr.IsCode(err, tc.want) {
			t.Fatalf("status %d: code = %v, want %v", tc.status, perr.CodeOf(err), tc.want)
		}
	}
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(Options{BaseURL: url})
	if _, err := c.Health(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v", err)
	}
}

func TestClient_EmptyBatchSkipsServer(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1"})
	got, err := c.ScoreMany(context.Background(), nil)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("got %#v, %v", got, err)
	}
}

func TestClient_GPUAvailableWithoutLoad(t *testing.T) {
	fs := &fakeServer{scores: constScores(0.5)}
	srv := httptest.NewServer(fs.handler(t))
	defer srv.Close()

	gpu, err := NewClient(Options{BaseURL: srv.URL}).GPUAvailable(context.Background())
	if err != nil || !gpu {
		t.Fatalf("gpu=%v err=%v", gpu, err)
	}
	if fs.loadCalls.Load() != 0 {
		t.Fatalf("device check triggered a load")
	}
}
