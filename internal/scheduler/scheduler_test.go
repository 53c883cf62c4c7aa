package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"yenboard/internal/models"
	"yenboard/internal/services"
	"yenboard/internal/structures"
	"yenboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- local mock screen ---

type mockScreen struct {
	mu            sync.Mutex
	loadErr       error
	loads         []bool
	relativeCalls int
	clockCalls    int
	lastCtx       context.Context
}

func (m *mockScreen) Load(ctx context.Context, refresh bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, refresh)
	m.lastCtx = ctx
	return m.loadErr
}
func (m *mockScreen) UpdateRelativeTime() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.relativeCalls++
}
func (m *mockScreen) UpdateClock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clockCalls++
}
func (m *mockScreen) SetAmount(_ int64) error             { return nil }
func (m *mockScreen) ApplyKeys(_ []string) (int64, error) { return 0, nil }
func (m *mockScreen) Amount() int64                       { return 10000 }
func (m *mockScreen) Snapshot() *models.RateSnapshot      { return nil }
func (m *mockScreen) IsLoading() bool                     { return false }
func (m *mockScreen) IsRefreshing() bool                  { return false }
func (m *mockScreen) Presets(_ int64) []models.Preset     { return nil }
func (m *mockScreen) StateKey() string                    { return "" }
func (m *mockScreen) View(_ int64, _ *models.Layout) *models.ScreenView {
	return &models.ScreenView{}
}

func (m *mockScreen) counts() (int, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loads), m.relativeCalls, m.clockCalls
}

var _ services.ScreenServiceInterface = (*mockScreen)(nil)

func testConfig() *structures.Config {
	return &structures.Config{
		Rates: structures.RatesConfig{
			RefreshInterval: time.Second,
			DisplayInterval: time.Second,
		},
	}
}

func TestScheduler_Load_InitialFetch(t *testing.T) {
	screen := &mockScreen{}
	logger := &testutil.MockLogger{}
	s := NewScheduler(testConfig(), logger, screen)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, []bool{false}, screen.loads)
	assert.True(t, logger.Contains("info", "Exchange rates loaded"))
}

func TestScheduler_Load_Error(t *testing.T) {
	screen := &mockScreen{loadErr: errors.New("network down")}
	s := NewScheduler(testConfig(), &testutil.MockLogger{}, screen)

	assert.EqualError(t, s.Load(context.Background()), "network down")
}

func TestScheduler_RefreshRates_UsesRefreshFlag(t *testing.T) {
	screen := &mockScreen{}
	s := NewScheduler(testConfig(), &testutil.MockLogger{}, screen).(*Scheduler)

	s.RefreshRates()
	assert.Equal(t, []bool{true}, screen.loads)
}

func TestScheduler_RefreshRates_FailureLogged(t *testing.T) {
	screen := &mockScreen{loadErr: errors.New("boom")}
	logger := &testutil.MockLogger{}
	s := NewScheduler(testConfig(), logger, screen).(*Scheduler)

	s.RefreshRates()
	assert.True(t, logger.Contains("warn", "keeping previous rates"))
}

func TestScheduler_DisplayJobs(t *testing.T) {
	screen := &mockScreen{}
	s := NewScheduler(testConfig(), &testutil.MockLogger{}, screen).(*Scheduler)

	s.UpdateRelativeTime()
	s.UpdateClock()
	s.UpdateClock()

	loads, relative, clock := screen.counts()
	assert.Equal(t, 0, loads)
	assert.Equal(t, 1, relative)
	assert.Equal(t, 2, clock)
}

func TestScheduler_StopNilCron(t *testing.T) {
	s := NewScheduler(testConfig(), &testutil.MockLogger{}, &mockScreen{})
	// Should not panic with nil cron
	s.Stop()
}

func TestScheduler_InitAndStop(t *testing.T) {
	screen := &mockScreen{}
	s := NewScheduler(testConfig(), &testutil.MockLogger{}, screen).(*Scheduler)
	s.Init()

	assert.Eventually(t, func() bool {
		loads, relative, clock := screen.counts()
		return loads > 0 && relative > 0 && clock > 0
	}, 3*time.Second, 50*time.Millisecond)

	s.Stop()

	screen.mu.Lock()
	ctx := screen.lastCtx
	screen.mu.Unlock()
	require.NotNil(t, ctx)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	loads, _, _ := screen.counts()
	time.Sleep(1500 * time.Millisecond)
	after, _, _ := screen.counts()
	assert.Equal(t, loads, after)
}

func TestDurationOrDefault(t *testing.T) {
	assert.Equal(t, time.Minute, durationOrDefault(0, time.Minute))
	assert.Equal(t, time.Minute, durationOrDefault(-time.Second, time.Minute))
	assert.Equal(t, 5*time.Second, durationOrDefault(5*time.Second, time.Minute))
}

func TestFormatKeysAndValues(t *testing.T) {
	assert.Equal(t, " entry=1 now=x", formatKeysAndValues([]interface{}{"entry", 1, "now", "x"}))
	assert.Equal(t, "", formatKeysAndValues([]interface{}{"dangling"}))
}
