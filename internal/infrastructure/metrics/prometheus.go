package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusExporter exports decision metrics in Prometheus format.
// It registers against the default registry; exposing /metrics over HTTP is
// left to the embedding product (this library opens no listeners).
type PrometheusExporter struct {
	collector *Collector

	checks             *prometheus.CounterVec
	ownerBypasses      prometheus.Counter
	legacyTranslations *prometheus.CounterVec
	activeSetRequests  prometheus.Counter
	cacheHitRate       prometheus.Gauge
	cacheKeys          prometheus.Gauge
	cacheEvictions     prometheus.Gauge
}

// NewPrometheusExporter creates a new Prometheus exporter.
func NewPrometheusExporter(collector *Collector) *PrometheusExporter {
	return &PrometheusExporter{
		collector: collector,
		checks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestabiz_authz_checks_total",
				Help: "Total number of permission check decisions",
			},
			[]string{"result"},
		),
		ownerBypasses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gestabiz_authz_owner_bypass_total",
			Help: "Total number of decisions resolved by the ownership bypass",
		}),
		legacyTranslations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestabiz_authz_legacy_translations_total",
				Help: "Total number of legacy permission identifier lookups",
			},
			[]string{"outcome"},
		),
		activeSetRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gestabiz_authz_active_set_requests_total",
			Help: "Total number of active permission set derivations",
		}),
		cacheHitRate: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gestabiz_authz_cache_hit_rate",
			Help: "Current decision cache hit rate (0.0 to 1.0)",
		}),
		cacheKeys: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gestabiz_authz_cache_keys_current",
			Help: "Current number of keys in the decision cache",
		}),
		cacheEvictions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gestabiz_authz_cache_evictions_total",
			Help: "Total number of decision cache evictions",
		}),
	}
}

// RecordCheck records a permission check decision in Prometheus.
func (e *PrometheusExporter) RecordCheck(allowed bool) {
	if allowed {
		e.checks.WithLabelValues("allowed").Inc()
	} else {
		e.checks.WithLabelValues("denied").Inc()
	}
}

// RecordOwnerBypass records an ownership bypass in Prometheus.
func (e *PrometheusExporter) RecordOwnerBypass() {
	e.ownerBypasses.Inc()
}

// RecordLegacyTranslation records a legacy identifier lookup in Prometheus.
func (e *PrometheusExporter) RecordLegacyTranslation(known bool) {
	if known {
		e.legacyTranslations.WithLabelValues("translated").Inc()
	} else {
		e.legacyTranslations.WithLabelValues("unknown").Inc()
	}
}

// RecordActiveSetRequest records an active-set derivation in Prometheus.
func (e *PrometheusExporter) RecordActiveSetRequest() {
	e.activeSetRequests.Inc()
}

// Update updates gauge metrics from the collector.
// Counters are updated at record time; only gauges are refreshed here.
// This should be called periodically (e.g., every 10 seconds).
func (e *PrometheusExporter) Update() {
	cacheMetrics := e.collector.GetCacheMetrics()
	e.cacheHitRate.Set(cacheMetrics.HitRate)
	e.cacheKeys.Set(float64(cacheMetrics.KeysCurrent))
	e.cacheEvictions.Set(float64(cacheMetrics.Evictions))
}
