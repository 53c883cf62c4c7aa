package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
	"yenboard/internal/structures"
)

const (
	FetchOutcomeSuccess        = "success"
	FetchOutcomeTransportError = "transport_error"
	FetchOutcomeApiError       = "api_error"
	FetchOutcomeParseError     = "parse_error"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncFetchTotal(outcome string)
	ObserveFetchDuration(duration time.Duration)
	SetSnapshotTimestamp(unix int64)
}

type MetricsProvider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	fetchTotal        *prometheus.CounterVec
	fetchDuration     prometheus.Histogram
	snapshotTimestamp prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncFetchTotal(outcome string) {
	m.fetchTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveFetchDuration(duration time.Duration) {
	m.fetchDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetSnapshotTimestamp(unix int64) {
	m.snapshotTimestamp.Set(float64(unix))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "yenboard_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "yenboard_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "yenboard_cache_hits_total",
			Help: "Total number of screen cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "yenboard_cache_misses_total",
			Help: "Total number of screen cache misses",
		}),

		fetchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "yenboard_rate_fetches_total",
			Help: "Total number of exchange rate fetches by outcome",
		}, []string{"outcome"}),

		fetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "yenboard_rate_fetch_duration_seconds",
			Help:    "Exchange rate fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		snapshotTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "yenboard_snapshot_last_update_unix",
			Help: "Provider update time of the currently held rate snapshot",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncFetchTotal(_ string)                           {}
func (n *noopMetrics) ObserveFetchDuration(_ time.Duration)             {}
func (n *noopMetrics) SetSnapshotTimestamp(_ int64)                     {}
