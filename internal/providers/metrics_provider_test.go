package providers

import (
	"testing"
	"time"
	"yenboard/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestRegistry(t *testing.T) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	prevRegisterer, prevGatherer := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prevRegisterer
		prometheus.DefaultGatherer = prevGatherer
	})
	return reg
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("/rates", 200)
	m.ObserveRequestDuration("/rates", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncFetchTotal(FetchOutcomeSuccess)
	m.ObserveFetchDuration(time.Millisecond)
	m.SetSnapshotTimestamp(1234567890)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	useTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_FetchOutcomes(t *testing.T) {
	useTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncFetchTotal(FetchOutcomeSuccess)
	m.IncFetchTotal(FetchOutcomeSuccess)
	m.IncFetchTotal(FetchOutcomeApiError)
	m.ObserveFetchDuration(120 * time.Millisecond)
	m.SetSnapshotTimestamp(1234567890)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.fetchTotal.WithLabelValues(FetchOutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fetchTotal.WithLabelValues(FetchOutcomeApiError)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.fetchTotal.WithLabelValues(FetchOutcomeParseError)))
	assert.Equal(t, float64(1234567890), testutil.ToFloat64(m.snapshotTimestamp))
}

func TestMetricsProvider_RequestCounters(t *testing.T) {
	reg := useTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncRequestsTotal("/rates", 200)
	m.IncRequestsTotal("/rates", 204)
	m.IncRequestsTotal("/amount", 400)
	m.ObserveRequestDuration("/rates", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/rates", "2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/amount", "4xx")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "yenboard_requests_total")
	assert.Contains(t, names, "yenboard_cache_hits_total")
	assert.Contains(t, names, "yenboard_request_duration_seconds")
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
