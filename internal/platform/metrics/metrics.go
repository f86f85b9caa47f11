// Package metrics holds the Prometheus registry and collectors for the API process
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aidetect"

// Metrics is one private registry plus the collectors the service writes to
// A nil *Metrics is valid and records nothing
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	scoreTotal    *prometheus.CounterVec
	scoreDuration *prometheus.HistogramVec
	scoreBatch    prometheus.Histogram
	verdictTotal  *prometheus.CounterVec
	modelReady    prometheus.Gauge
}

// New builds and registers every collector; withRuntime adds go and process collectors
func New(withRuntime bool) *Metrics {
	registry := prometheus.NewRegistry()
	if withRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "in_flight_requests",
				Help:      "Number of in-flight HTTP requests.",
			},
		),
		scoreTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "model",
				Name:      "score_calls_total",
				Help:      "Model scoring calls by operation and status.",
			},
			[]string{"op", "status"},
		),
		scoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "model",
				Name:      "score_duration_seconds",
				Help:      "Model scoring latency including queueing for the model.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"op"},
		),
		scoreBatch: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "model",
				Name:      "score_batch_texts",
				Help:      "Texts per scoring call.",
				Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
			},
		),
		verdictTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "verdicts_total",
				Help:      "Document verdicts by request kind, label and confidence tier.",
			},
			[]string{"kind", "label", "tier"},
		),
		modelReady: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "model",
				Name:      "ready",
				Help:      "1 once the model is loaded.",
			},
		),
	}

	registry.MustRegister(
		m.requestTotal, m.requestDuration, m.requestInFlight,
		m.scoreTotal, m.scoreDuration, m.scoreBatch,
		m.verdictTotal, m.modelReady,
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts, latency and in-flight requests
// route is the chi pattern so path parameters do not explode cardinality
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := routeOf(r)
		m.requestTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.statusCode)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// ObserveScore implements the scoring observer hook
func (m *Metrics) ObserveScore(op string, texts int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.scoreTotal.WithLabelValues(op, status).Inc()
	m.scoreDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	m.scoreBatch.Observe(float64(texts))
}

// ObserveVerdict counts one document verdict
func (m *Metrics) ObserveVerdict(kind, label, tier string) {
	if m == nil {
		return
	}
	m.verdictTotal.WithLabelValues(kind, label, tier).Inc()
}

// SetModelReady flips the readiness gauge
func (m *Metrics) SetModelReady(ready bool) {
	if m == nil {
		return
	}
	if ready {
		m.modelReady.Set(1)
		return
	}
	m.modelReady.Set(0)
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }
