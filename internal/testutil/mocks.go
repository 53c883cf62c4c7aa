package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"yenboard/internal/models"
	"yenboard/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether any entry at level has a message containing substr.
func (m *MockLogger) Contains(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Message(), substr) {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                sync.Mutex
	FetchOutcomes     []string
	FetchDurations    int
	SnapshotTimestamp int64
	CacheHits         int
	CacheMisses       int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncFetchTotal(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchOutcomes = append(m.FetchOutcomes, outcome)
}
func (m *MockMetrics) ObserveFetchDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchDurations++
}
func (m *MockMetrics) SetSnapshotTimestamp(unix int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotTimestamp = unix
}

// MockRateClient implements clients.RateClientInterface with injectable behavior.
type MockRateClient struct {
	mu      sync.Mutex
	calls   int
	FetchFn func(ctx context.Context) (*models.RateSnapshot, error)
}

func (m *MockRateClient) FetchRates(ctx context.Context) (*models.RateSnapshot, error) {
	m.mu.Lock()
	m.calls++
	fn := m.FetchFn
	m.mu.Unlock()
	if fn == nil {
		return SampleSnapshot(time.Now().Unix()), nil
	}
	return fn(ctx)
}

func (m *MockRateClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Data)
}

// SampleRates is a full rate table for the eight target currencies.
func SampleRates() map[string]float64 {
	return map[string]float64{
		"USD": 0.0067,
		"EUR": 0.0062,
		"KRW": 9.12,
		"CNY": 0.049,
		"TWD": 0.22,
		"GBP": 0.0053,
		"AUD": 0.0105,
		"MYR": 0.030,
	}
}

// SampleSnapshot is a successful snapshot updated at lastUpdate.
func SampleSnapshot(lastUpdate int64) *models.RateSnapshot {
	return &models.RateSnapshot{
		Result:             models.ResultSuccess,
		Provider:           "https://www.exchangerate-api.com",
		TimeLastUpdateUnix: lastUpdate,
		TimeNextUpdateUnix: lastUpdate + 86400,
		BaseCode:           models.BaseCurrency,
		Rates:              SampleRates(),
	}
}
