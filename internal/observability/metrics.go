// Package observability exposes the Prometheus metrics of the dashboard.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the application.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	chartCache      *prometheus.CounterVec
	datasetPoints   *prometheus.GaugeVec
	datasetInfo     *prometheus.GaugeVec
}

// NewMetrics initialises the registry and the base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "findash_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "findash_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	chartCache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "findash_chart_cache_total",
		Help: "Chart cache lookups by result.",
	}, []string{"result"})
	points := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "findash_dataset_points",
		Help: "Monthly points held per series.",
	}, []string{"series"})
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "findash_dataset_info",
		Help: "Identity of the dataset being served.",
	}, []string{"dataset_id"})
	registry.MustRegister(requests, duration, chartCache, points, info)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		chartCache:      chartCache,
		datasetPoints:   points,
		datasetInfo:     info,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ChartCacheResult counts one chart cache lookup.
func (m *Metrics) ChartCacheResult(result string) {
	if m == nil {
		return
	}
	m.chartCache.WithLabelValues(result).Inc()
}

// ObserveDataset publishes the size and identity of the served dataset.
func (m *Metrics) ObserveDataset(id string, pointsBySeries map[string]int) {
	if m == nil {
		return
	}
	m.datasetInfo.Reset()
	m.datasetInfo.WithLabelValues(id).Set(1)
	for series, n := range pointsBySeries {
		m.datasetPoints.WithLabelValues(series).Set(float64(n))
	}
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
