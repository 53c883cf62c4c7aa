package scheduler

import (
	"context"
	"github.com/robfig/cron/v3"
	"time"
	"yenboard/internal/providers"
	"yenboard/internal/scheduler/interfaces"
	"yenboard/internal/services"
	"yenboard/internal/structures"
)

const (
	defaultRefreshInterval = 30 * time.Minute
	defaultDisplayInterval = time.Minute
)

// Scheduler drives the periodic screen work: refetching rates, redrawing
// the "last updated" text and ticking the header clock. All jobs stop with
// the scheduler and an in-flight fetch is cancelled.
type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	screen services.ScreenServiceInterface
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *Scheduler) Init() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	logger := cronLogger{logger: s.logger}
	s.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	refreshInterval := durationOrDefault(s.config.Rates.RefreshInterval, defaultRefreshInterval)
	displayInterval := durationOrDefault(s.config.Rates.DisplayInterval, defaultDisplayInterval)

	s.cron.Schedule(cron.Every(refreshInterval), cron.FuncJob(s.RefreshRates))
	s.cron.Schedule(cron.Every(displayInterval), cron.FuncJob(s.UpdateRelativeTime))
	s.cron.Schedule(cron.Every(displayInterval), cron.FuncJob(s.UpdateClock))

	s.logger.Infof(providers.TypeApp, "Scheduler started: refresh every %s, display every %s", refreshInterval, displayInterval)
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.logger.Infof(providers.TypeApp, "Scheduler stopped")
	}
}

// Load performs the initial fetch of the screen.
func (s *Scheduler) Load(ctx context.Context) error {
	s.logger.Infof(providers.TypeApp, "Loading exchange rates...")
	if err := s.screen.Load(ctx, false); err != nil {
		return err
	}
	s.logger.Infof(providers.TypeApp, "Exchange rates loaded")
	return nil
}

func (s *Scheduler) RefreshRates() {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.screen.Load(ctx, true); err != nil {
		s.logger.Warnf(providers.TypeApp, "Scheduled refresh failed, keeping previous rates")
		return
	}
	s.logger.Debugf(providers.TypeApp, "Exchange rates refreshed")
}

func (s *Scheduler) UpdateRelativeTime() {
	s.screen.UpdateRelativeTime()
}

func (s *Scheduler) UpdateClock() {
	s.screen.UpdateClock()
}

func durationOrDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

func NewScheduler(config *structures.Config, logger providers.Logger, screen services.ScreenServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		screen: screen,
	}
}
