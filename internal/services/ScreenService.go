package services

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/atomic"
	"time"
	"yenboard/internal/clients"
	"yenboard/internal/formatters"
	"yenboard/internal/models"
	"yenboard/internal/providers"
	"yenboard/internal/structures"
)

const (
	DefaultAmount = 10000
	// MaxAmount is the largest amount the ten digit keypad can enter.
	MaxAmount = 9999999999
)

var ErrInvalidAmount = errors.New("amount must be between 1 and 9999999999")

type ScreenServiceInterface interface {
	Load(ctx context.Context, refresh bool) error
	UpdateRelativeTime()
	UpdateClock()
	SetAmount(amount int64) error
	ApplyKeys(keys []string) (int64, error)
	Amount() int64
	Snapshot() *models.RateSnapshot
	IsLoading() bool
	IsRefreshing() bool
	Presets(amount int64) []models.Preset
	View(amount int64, layout *models.Layout) *models.ScreenView
	StateKey() string
}

// ScreenService is the state behind the rates screen: the selected JPY
// amount, the single held snapshot and the strings derived from it.
// The snapshot is swapped as a whole, so readers never see a partial table.
type ScreenService struct {
	client   clients.RateClientInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	location *time.Location
	now      func() time.Time

	snapshot       atomic.Pointer[models.RateSnapshot]
	amount         atomic.Int64
	loading        atomic.Bool
	refreshing     atomic.Bool
	lastUpdateText atomic.String
	currentTime    atomic.Time
}

func NewScreenService(conf *structures.Config, logger providers.Logger, client clients.RateClientInterface, metrics providers.MetricsProviderInterface) ScreenServiceInterface {
	s := &ScreenService{
		client:   client,
		logger:   logger,
		metrics:  metrics,
		location: conf.DisplayLocation(),
		now:      time.Now,
	}

	amount := conf.Rates.DefaultAmount
	if amount <= 0 {
		amount = DefaultAmount
	}
	s.amount.Store(amount)
	s.UpdateClock()

	return s
}

// Load fetches a new snapshot. The first load of a screen passes
// refresh=false and is reported as loading; every later fetch is a
// background refresh. A failed fetch keeps whatever was displayed before.
func (s *ScreenService) Load(ctx context.Context, refresh bool) error {
	flag := &s.loading
	if refresh {
		flag = &s.refreshing
	}
	flag.Store(true)
	defer flag.Store(false)

	snapshot, err := s.client.FetchRates(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to load exchange rates: %s", err)
		return fmt.Errorf("load exchange rates: %w", err)
	}

	s.snapshot.Store(snapshot)
	s.metrics.SetSnapshotTimestamp(snapshot.TimeLastUpdateUnix)
	s.lastUpdateText.Store(formatters.FormatRelativeTimeAt(snapshot.TimeLastUpdateUnix, s.localNow()))

	return nil
}

// UpdateRelativeTime recomputes "N minutes ago" without fetching.
func (s *ScreenService) UpdateRelativeTime() {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return
	}
	s.lastUpdateText.Store(formatters.FormatRelativeTimeAt(snapshot.TimeLastUpdateUnix, s.localNow()))
}

func (s *ScreenService) UpdateClock() {
	s.currentTime.Store(s.localNow())
}

func (s *ScreenService) SetAmount(amount int64) error {
	if amount <= 0 || amount > MaxAmount {
		return ErrInvalidAmount
	}
	s.amount.Store(amount)
	return nil
}

// ApplyKeys replays number pad keys on an entry seeded with the current
// amount and confirms the result.
func (s *ScreenService) ApplyKeys(keys []string) (int64, error) {
	entry := models.NewAmountEntry(s.Amount())
	for _, key := range keys {
		if err := entry.Press(key); err != nil {
			return 0, fmt.Errorf("key %q: %w", key, err)
		}
	}

	amount, ok := entry.Confirm()
	if !ok {
		return 0, ErrInvalidAmount
	}
	s.amount.Store(amount)
	return amount, nil
}

func (s *ScreenService) Amount() int64 {
	return s.amount.Load()
}

func (s *ScreenService) Snapshot() *models.RateSnapshot {
	return s.snapshot.Load()
}

func (s *ScreenService) IsLoading() bool {
	return s.loading.Load()
}

func (s *ScreenService) IsRefreshing() bool {
	return s.refreshing.Load()
}

func (s *ScreenService) Presets(amount int64) []models.Preset {
	presets := make([]models.Preset, 0, len(models.QuickAmounts))
	for _, a := range models.QuickAmounts {
		presets = append(presets, models.Preset{
			Amount:   a,
			Label:    formatters.FormatYen(a),
			Selected: a == amount,
		})
	}
	return presets
}

// View renders the screen for amount, or for the held amount when amount
// is not positive. Conversions are derived from the held snapshot on
// every call.
func (s *ScreenService) View(amount int64, layout *models.Layout) *models.ScreenView {
	if amount <= 0 {
		amount = s.Amount()
	}

	view := &models.ScreenView{
		Status:      models.ScreenStatusLoading,
		Loading:     s.loading.Load(),
		Refreshing:  s.refreshing.Load(),
		Amount:      amount,
		AmountLabel: formatters.FormatYen(amount),
		HeaderDate:  formatters.FormatHeaderDate(s.currentTime.Load()),
		Conversions: []models.ConversionView{},
		Presets:     s.Presets(amount),
		Layout:      layout,
	}

	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return view
	}

	view.Status = models.ScreenStatusReady
	view.LastUpdateUnix = snapshot.TimeLastUpdateUnix
	view.LastUpdatedClock = formatters.FormatClockTime(snapshot.LastUpdate().In(s.location))
	view.LastUpdatedText = s.lastUpdateText.Load()
	for _, c := range models.Convert(float64(amount), snapshot.Rates) {
		formatted := formatters.FormatAmount(c.Amount, c.Code)
		view.Conversions = append(view.Conversions, models.ConversionView{
			ConversionResult: c,
			Formatted:        formatted,
			Display:          c.Symbol + formatted,
		})
	}

	return view
}

// StateKey identifies every input of View except the amount and layout.
func (s *ScreenService) StateKey() string {
	var ts int64
	if snapshot := s.snapshot.Load(); snapshot != nil {
		ts = snapshot.TimeLastUpdateUnix
	}
	return fmt.Sprintf("%d|%s|%d|%t|%t",
		ts, s.lastUpdateText.Load(), s.currentTime.Load().Unix()/60, s.loading.Load(), s.refreshing.Load())
}

func (s *ScreenService) localNow() time.Time {
	return s.now().In(s.location)
}
