package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus. The pipeline
// is a one-shot batch job, so the registry is private and its state is dumped
// into the run summary instead of being scraped.
type Recorder struct {
	registry      *prometheus.Registry
	requestsTotal *prometheus.CounterVec
	cacheFallback prometheus.Counter
	latency       *prometheus.HistogramVec
	historiesOK   prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptopulse_requests_total",
				Help: "Total number of upstream API requests",
			},
			[]string{"endpoint", "outcome"},
		),
		cacheFallback: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cryptopulse_cache_fallback_total",
				Help: "Total number of snapshot fetches served from the file cache",
			},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cryptopulse_request_duration_seconds",
				Help:    "Duration of upstream API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		historiesOK: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "cryptopulse_assets_with_history",
				Help: "Number of assets with a non-empty daily series this run",
			},
		),
	}
}

// RecordRequest records one upstream request with its outcome.
func (r *Recorder) RecordRequest(endpoint, outcome string) {
	r.requestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordCacheFallback records a snapshot served from the file cache.
func (r *Recorder) RecordCacheFallback() {
	r.cacheFallback.Inc()
}

// RecordLatency records request latency in seconds.
func (r *Recorder) RecordLatency(endpoint string, seconds float64) {
	r.latency.WithLabelValues(endpoint).Observe(seconds)
}

// SetAssetsWithHistory records how many assets produced a usable series.
func (r *Recorder) SetAssetsWithHistory(n int) {
	r.historiesOK.Set(float64(n))
}

// Summary gathers the registry into loggable "name{labels}" -> value pairs.
func (r *Recorder) Summary() map[string]float64 {
	out := make(map[string]float64)
	families, err := r.registry.Gather()
	if err != nil {
		return out
	}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			key := fam.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				parts := make([]string, 0, len(labels))
				for _, l := range labels {
					parts = append(parts, fmt.Sprintf("%s=%s", l.GetName(), l.GetValue()))
				}
				sort.Strings(parts)
				key = fmt.Sprintf("%s{%s}", key, strings.Join(parts, ","))
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[key] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return out
}
