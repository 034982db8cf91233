// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aegis"

// Collector records scan, report and HTTP metrics on its own registry.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	scansTotal      *prometheus.CounterVec
	matchedEntities prometheus.Histogram
	flaggedAccounts prometheus.Histogram

	reportsTotal       *prometheus.CounterVec
	reportDuration     *prometheus.HistogramVec
	generatorFallbacks *prometheus.CounterVec

	eventsTotal *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewCollector builds a collector with Go runtime and process collectors registered.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		scansTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Scans run, by mode and source.",
		}, []string{"mode", "source"}),
		matchedEntities: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_matched_entities",
			Help:      "Entities matched per scan.",
			Buckets:   []float64{0, 5, 10, 15, 25, 50, 100, 250},
		}),
		flaggedAccounts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_flagged_accounts",
			Help:      "Accounts flagged per scan.",
			Buckets:   prometheus.LinearBuckets(0, 2, 8),
		}),
		reportsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Reports by kind and final status.",
		}, []string{"kind", "status"}),
		reportDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_generation_seconds",
			Help:      "Report generation time, by generator.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"generator"}),
		generatorFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_generator_fallbacks_total",
			Help:      "Times the primary report generator was replaced by the fallback.",
		}, []string{"primary", "reason"}),
		eventsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Kafka events published or consumed, by topic and outcome.",
		}, []string{"topic", "outcome"}),
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveScan(mode, source string, matched, flagged int) {
	if c == nil {
		return
	}
	c.scansTotal.WithLabelValues(mode, source).Inc()
	c.matchedEntities.Observe(float64(matched))
	c.flaggedAccounts.Observe(float64(flagged))
}

func (c *Collector) ObserveReport(kind, status, generator string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.reportsTotal.WithLabelValues(kind, status).Inc()
	if generator != "" {
		c.reportDuration.WithLabelValues(generator).Observe(elapsed.Seconds())
	}
}

func (c *Collector) ObserveFallback(primary, reason string) {
	if c == nil {
		return
	}
	c.generatorFallbacks.WithLabelValues(primary, reason).Inc()
}

func (c *Collector) ObserveEvent(topic, outcome string) {
	if c == nil {
		return
	}
	c.eventsTotal.WithLabelValues(topic, outcome).Inc()
}

func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
