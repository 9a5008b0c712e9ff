// Package metrics provides Prometheus metrics for the tradelens service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tradelens"

// Cache lookup outcomes.
const (
	CacheFresh = "fresh"
	CacheStale = "stale"
	CacheMiss  = "miss"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	cacheLookups      *prometheus.CounterVec
	providerCalls     *prometheus.CounterVec
	providerLatency   prometheus.Histogram
	shipmentsIngested *prometheus.CounterVec
	refreshJobs       *prometheus.CounterVec
	refreshEnqueued   prometheus.Counter
}

// New registers every collector on a fresh registry, plus the Go and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		cacheLookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "enrichment",
			Name:      "cache_lookups_total",
			Help:      "Contact enrichment cache lookups by outcome.",
		}, []string{"outcome"}),
		providerCalls: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "enrichment",
			Name:      "provider_calls_total",
			Help:      "Enrichment provider calls by provider and result.",
		}, []string{"provider", "result"}),
		providerLatency: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "enrichment",
			Name:      "provider_latency_seconds",
			Help:      "Enrichment provider call latency including retries.",
			Buckets:   prometheus.DefBuckets,
		}),
		shipmentsIngested: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "shipments_total",
			Help:      "Shipments ingested by mode.",
		}, []string{"mode"}),
		refreshJobs: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "jobs_total",
			Help:      "Cache refresh jobs processed by result.",
		}, []string{"result"}),
		refreshEnqueued: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "enqueued_total",
			Help:      "Cache refresh jobs requested for stale entries.",
		}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency keyed by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) CacheLookup(outcome string) { m.cacheLookups.WithLabelValues(outcome).Inc() }

func (m *Metrics) ProviderCall(provider string, err error, took time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.providerCalls.WithLabelValues(provider, result).Inc()
	m.providerLatency.Observe(took.Seconds())
}

func (m *Metrics) ShipmentIngested(mode string) { m.shipmentsIngested.WithLabelValues(mode).Inc() }

func (m *Metrics) RefreshEnqueued() { m.refreshEnqueued.Inc() }

func (m *Metrics) RefreshJob(err error) {
	if err != nil {
		m.refreshJobs.WithLabelValues("failed").Inc()
		return
	}
	m.refreshJobs.WithLabelValues("completed").Inc()
}
