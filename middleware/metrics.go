package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/innkeeper/core/apperr"
)

// unmatchedRoute labels requests that no route pattern matched. Raw paths
// are never used as label values.
const unmatchedRoute = "unmatched"

// Metrics holds the Prometheus collectors for HTTP traffic and presented errors.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inflight prometheus.Gauge
	size     *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "innkeeper",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "innkeeper",
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		inflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "innkeeper",
				Name:      "http_requests_inflight",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		size: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "innkeeper",
				Name:      "http_response_size_bytes",
				Help:      "Size of HTTP responses in bytes.",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
			},
			[]string{"method", "path"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "innkeeper",
				Name:      "app_errors_total",
				Help:      "Application errors presented to clients, by kind and status.",
			},
			[]string{"kind", "status"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.latency, m.inflight, m.size, m.errors)
	}
	return m
}

// Handler instruments requests. The path label is the chi route pattern.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inflight.Inc()
		defer m.inflight.Dec()

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		path := routePattern(r)
		m.requests.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		m.latency.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		m.size.WithLabelValues(r.Method, path).Observe(float64(rec.size))
	})
}

// ObserveError counts an error presented with the given status.
// Its signature matches response.Observer.
func (m *Metrics) ObserveError(kind apperr.Kind, status int) {
	m.errors.WithLabelValues(kind.String(), strconv.Itoa(status)).Inc()
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
